// Package config handles configuration for the server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the TillBox server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP command surface.
//   - DataFile: path to the SQLite data file.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use test defaults in prod.
//   - SessionTokenValidityDuration: session token lifetime.
//   - LowStockThreshold: stock level below which a product counts as low stock.
//   - BackupDir: directory receiving local backup copies of the data file.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings; an empty
//     bucket disables backup uploads.
type Config struct {
	EndpointAddrHTTP             string
	DataFile                     string
	SecretKey                    string
	SessionTokenValidityDuration time.Duration
	LowStockThreshold            int64
	BackupDir                    string
	S3RootUser                   string
	S3RootPassword               string
	S3Bucket                     string
	S3Region                     string
	S3BaseEndpoint               string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DataFile = "pos.db"
	c.SecretKey = "secretKey"
	c.SessionTokenValidityDuration = 12 * time.Hour
	c.LowStockThreshold = 5
	c.BackupDir = "backups"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
