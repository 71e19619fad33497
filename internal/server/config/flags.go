package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tillbox/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   path to the SQLite data file
//	-s string   JWT HMAC secret key
//	-t int      session token validity, minutes
//	-l int      low stock threshold
//	-k string   backup directory
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name (empty disables uploads)
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l", "-k", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DataFile, "d", config.DataFile, "path to the SQLite data file")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionTokenValidityDuration := fs.Int("t", int(config.SessionTokenValidityDuration.Minutes()), "session_token_validity_duration (in minutes)")

	fs.Int64Var(&config.LowStockThreshold, "l", config.LowStockThreshold, "low stock threshold")
	fs.StringVar(&config.BackupDir, "k", config.BackupDir, "backup directory")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTokenValidityDuration = time.Duration(*sessionTokenValidityDuration) * time.Minute
}
