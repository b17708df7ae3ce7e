package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir makes sure the data directory exists, creating it (and any
// missing parents) on demand. A relative dirName is resolved against the
// current working directory. The resolved absolute path is returned.
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
