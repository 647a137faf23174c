package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("export")
	require.NoError(t, err)

	want := filepath.Join(tmp, "export")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureDir_AbsolutePathKept(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "nested", "out")

	got, err := EnsureDir(abs)
	require.NoError(t, err)
	require.Equal(t, abs, got)

	fi, err := os.Stat(abs)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	first, err := EnsureDir("export")
	require.NoError(t, err)

	second, err := EnsureDir("export")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("export", []byte("x"), 0o660))

	_, err := EnsureDir("export")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestWriteInDir_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := WriteInDir(dir, "../escape.csv", []byte("hello"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "escape.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}
