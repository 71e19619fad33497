package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "backups", "daily")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")
}

func TestEnsureDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "backups")

	first, err := EnsureDir(dir)
	require.NoError(t, err)

	second, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "backups")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o660))

	_, err := EnsureDir(path)
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestCopyFile_CopiesContent(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.db")
	dst := filepath.Join(tmp, "dst.db")
	require.NoError(t, os.WriteFile(src, []byte("sqlite data"), 0o660))

	require.NoError(t, CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []byte("sqlite data"), got)
}

func TestCopyFile_TruncatesExistingDestination(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.db")
	dst := filepath.Join(tmp, "dst.db")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o660))
	require.NoError(t, os.WriteFile(dst, []byte("old and much longer"), 0o660))

	require.NoError(t, CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
}

func TestCopyFile_SourceMissing(t *testing.T) {
	tmp := t.TempDir()
	err := CopyFile(filepath.Join(tmp, "absent"), filepath.Join(tmp, "dst"))
	require.Error(t, err)
}
