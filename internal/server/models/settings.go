package models

// StoreSettings is the full set of configurable store attributes, stored as
// individual key-value rows and assembled on load.
type StoreSettings struct {
	StoreName       string `json:"store_name"`
	StoreAddress    string `json:"store_address"`
	StorePhone      string `json:"store_phone"`
	StoreEmail      string `json:"store_email"`
	ReceiptHeader   string `json:"receipt_header"`
	ReceiptFooter   string `json:"receipt_footer"`
	ShowLogo        bool   `json:"show_logo"`
	BackupFrequency string `json:"backup_frequency"`
	PrinterModel    string `json:"printer_model"`
}
