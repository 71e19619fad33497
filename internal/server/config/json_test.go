package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http":              "localhost:9090",
		"data_file":                       "store.db",
		"secret_key":                      "my_secret_key",
		"session_token_validity_duration": "30m",
		"low_stock_threshold":             3,
		"backup_dir":                      "bk",
		"s3_root_user":                    "user",
		"s3_root_password":                "password",
		"s3_bucket":                       "bucket",
		"s3_region":                       "region",
		"s3_base_endpoint":                "base_endpoint",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "localhost:9090", cfg.EndpointAddrHTTP)
		assert.Equal(t, "store.db", cfg.DataFile)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 30*time.Minute, cfg.SessionTokenValidityDuration)
		assert.EqualValues(t, 3, cfg.LowStockThreshold)
		assert.Equal(t, "bk", cfg.BackupDir)
		assert.Equal(t, "user", cfg.S3RootUser)
		assert.Equal(t, "password", cfg.S3RootPassword)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "region", cfg.S3Region)
		assert.Equal(t, "base_endpoint", cfg.S3BaseEndpoint)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrHTTP: "defaults:1234", DataFile: "keep.db"}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrHTTP)
		assert.Equal(t, "keep.db", cfg.DataFile)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(t.TempDir(), "absent.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
