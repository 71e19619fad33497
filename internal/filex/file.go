// Package filex contains small filesystem helpers used by the backup flow.
package filex

import (
	"fmt"
	"io"
	"os"
)

// EnsureDir creates the directory (and parents) if it does not exist and
// returns its path.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// CopyFile copies src to dst, truncating dst if it already exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o660)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	return out.Close()
}
