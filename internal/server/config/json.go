package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/tillbox/internal/flagx"
	"github.com/dmitrijs2005/tillbox/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "30m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DataFile                     string         `json:"data_file"`
	SecretKey                    string         `json:"secret_key"`
	SessionTokenValidityDuration timex.Duration `json:"session_token_validity_duration"`
	LowStockThreshold            int64          `json:"low_stock_threshold"`
	BackupDir                    string         `json:"backup_dir"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DataFile = c.DataFile
	config.SecretKey = c.SecretKey
	config.SessionTokenValidityDuration = time.Duration(c.SessionTokenValidityDuration.Duration)
	config.LowStockThreshold = c.LowStockThreshold
	config.BackupDir = c.BackupDir
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
