// Package filex holds small filesystem helpers used by the export commands.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dirName (relative to the working directory unless it is
// absolute) and returns its absolute path.
func EnsureDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// WriteInDir writes data to dirName/fileName, creating the directory first.
// It returns the full path of the written file.
func WriteInDir(dirName, fileName string, data []byte) (string, error) {
	dir, err := EnsureDir(dirName)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(fileName))
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
