package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tillbox/internal/dbx"
	"github.com/dmitrijs2005/tillbox/internal/server/models"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tillbox/internal/shared"
)

// setting keys and their defaults for stores that have never saved them
const (
	keyStoreName       = "store_name"
	keyStoreAddress    = "store_address"
	keyStorePhone      = "store_phone"
	keyStoreEmail      = "store_email"
	keyReceiptHeader   = "receipt_header"
	keyReceiptFooter   = "receipt_footer"
	keyShowLogo        = "show_logo"
	keyBackupFrequency = "backup_frequency"
	keyPrinterModel    = "printer_model"
)

var settingDefaults = map[string]string{
	keyStoreName:       "Your Fabulous Store Name",
	keyStoreAddress:    "123 Slay Street, City, Country",
	keyStorePhone:      "+123 456 7890",
	keyStoreEmail:      "contact@yourstore.com",
	keyReceiptHeader:   "Thank you for your purchase!",
	keyReceiptFooter:   "Visit us again soon!",
	keyShowLogo:        "true",
	keyBackupFrequency: "daily",
	keyPrinterModel:    "Epson TM-T88VI",
}

// SettingsService assembles StoreSettings from the key-value table, applying
// defaults for keys that were never saved, and persists the full set on save.
type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager) *SettingsService {
	return &SettingsService{db: db, repomanager: m}
}

func (s *SettingsService) Load(ctx context.Context) (*models.StoreSettings, error) {
	repo := s.repomanager.Settings(s.db)

	get := func(key string) (string, error) {
		value, err := repo.Get(ctx, key)
		if err != nil {
			if errors.Is(err, shared.ErrorNotFound) {
				return settingDefaults[key], nil
			}
			return "", fmt.Errorf("error loading setting %s: %w", key, err)
		}
		return value, nil
	}

	settings := &models.StoreSettings{}

	fields := []struct {
		key  string
		dest *string
	}{
		{keyStoreName, &settings.StoreName},
		{keyStoreAddress, &settings.StoreAddress},
		{keyStorePhone, &settings.StorePhone},
		{keyStoreEmail, &settings.StoreEmail},
		{keyReceiptHeader, &settings.ReceiptHeader},
		{keyReceiptFooter, &settings.ReceiptFooter},
		{keyBackupFrequency, &settings.BackupFrequency},
		{keyPrinterModel, &settings.PrinterModel},
	}
	for _, f := range fields {
		value, err := get(f.key)
		if err != nil {
			return nil, err
		}
		*f.dest = value
	}

	showLogo, err := get(keyShowLogo)
	if err != nil {
		return nil, err
	}
	settings.ShowLogo = showLogo == "true"

	return settings, nil
}

// Save upserts every setting inside one transaction so a partially applied
// save can never be observed.
func (s *SettingsService) Save(ctx context.Context, settings *models.StoreSettings) error {
	values := map[string]string{
		keyStoreName:       settings.StoreName,
		keyStoreAddress:    settings.StoreAddress,
		keyStorePhone:      settings.StorePhone,
		keyStoreEmail:      settings.StoreEmail,
		keyReceiptHeader:   settings.ReceiptHeader,
		keyReceiptFooter:   settings.ReceiptFooter,
		keyShowLogo:        "false",
		keyBackupFrequency: settings.BackupFrequency,
		keyPrinterModel:    settings.PrinterModel,
	}
	if settings.ShowLogo {
		values[keyShowLogo] = "true"
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Settings(tx)
		for key, value := range values {
			if err := repo.Set(ctx, key, value); err != nil {
				return fmt.Errorf("error saving setting %s: %w", key, err)
			}
		}
		return nil
	})
}

// FindPrinters returns the receipt printer models the UI can offer.
// Real discovery is out of scope; the list mirrors the supported models.
func (s *SettingsService) FindPrinters(ctx context.Context) []string {
	return []string{
		"Epson TM-T88VI",
		"HP DeskJet 2700",
		"Canon Pixma G2010",
	}
}

// TestPrint is accepted and acknowledged; actual printing is handled by the
// front-end's printer integration.
func (s *SettingsService) TestPrint(ctx context.Context) error {
	return nil
}
