package utils

import (
	"os"
)

// EnsureDir creates dir and any missing parents. An existing directory is fine.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
