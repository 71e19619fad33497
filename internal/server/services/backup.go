package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/tillbox/internal/filex"
	"github.com/dmitrijs2005/tillbox/internal/logging"
	sc "github.com/dmitrijs2005/tillbox/internal/server/config"
	"github.com/dmitrijs2005/tillbox/internal/server/db"
	"github.com/dmitrijs2005/tillbox/internal/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BackupService snapshots the data file and stages restores. A backup is a
// consistent copy produced by VACUUM INTO on the live connection, optionally
// uploaded to an S3-compatible bucket. A restore never touches the open data
// file: the replacement is staged next to it and swapped in on next startup.
type BackupService struct {
	db     *sql.DB
	config *sc.Config
	logger logging.Logger
}

func NewBackupService(database *sql.DB, config *sc.Config, logger logging.Logger) *BackupService {
	return &BackupService{
		db:     database,
		config: config,
		logger: logger.With("module", "backup"),
	}
}

func (s *BackupService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// Backup writes a consistent snapshot into the backup directory and returns
// its path. When a bucket is configured the snapshot is also uploaded under
// the same name.
func (s *BackupService) Backup(ctx context.Context) (string, error) {
	dir, err := filex.EnsureDir(s.config.BackupDir)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("pos-%s.db", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	// VACUUM INTO produces a compacted, transactionally consistent copy
	// without blocking the connection for long.
	if _, err := s.db.ExecContext(ctx, `VACUUM INTO ?`, path); err != nil {
		return "", fmt.Errorf("error creating backup: %w", err)
	}

	s.logger.Info(ctx, "backup written", "path", path)

	if s.config.S3Bucket != "" {
		if err := s.upload(ctx, path, name); err != nil {
			return "", err
		}
	}

	return path, nil
}

func (s *BackupService) upload(ctx context.Context, path, key string) error {
	client, err := s.getS3Client(ctx)
	if err != nil {
		return fmt.Errorf("error creating s3 client: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening backup: %w", err)
	}
	defer f.Close()

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("error uploading backup: %w", err)
	}

	s.logger.Info(ctx, "backup uploaded", "bucket", s.config.S3Bucket, "key", key)
	return nil
}

// RequestRestore stages a backup for the next startup. Exactly one source
// must be given: a local file path, or an object key when a bucket is
// configured. The live data file is never replaced while open.
func (s *BackupService) RequestRestore(ctx context.Context, localPath, objectKey string) error {
	staged := db.RestorePath(s.config.DataFile)

	switch {
	case localPath != "" && objectKey != "":
		return fmt.Errorf("%w: specify either a path or an object key, not both", shared.ErrorValidation)

	case localPath != "":
		if err := filex.CopyFile(localPath, staged); err != nil {
			return fmt.Errorf("error staging restore: %w", err)
		}

	case objectKey != "":
		if s.config.S3Bucket == "" {
			return fmt.Errorf("%w: no bucket configured", shared.ErrorValidation)
		}
		if err := s.download(ctx, objectKey, staged); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: a path or an object key is required", shared.ErrorValidation)
	}

	s.logger.Warn(ctx, "restore staged; it will be applied on next startup", "staged", staged)
	return nil
}

func (s *BackupService) download(ctx context.Context, key, dst string) error {
	client, err := s.getS3Client(ctx)
	if err != nil {
		return fmt.Errorf("error creating s3 client: %w", err)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("error downloading backup: %w", err)
	}
	defer out.Body.Close()

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o660)
	if err != nil {
		return fmt.Errorf("error creating staged file: %w", err)
	}

	if _, err := io.Copy(f, out.Body); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing staged file: %w", err)
	}

	return f.Close()
}
