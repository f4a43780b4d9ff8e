package config

import (
	"errors"
	"os"
	"path/filepath"
)

// EnsureUserConfig seeds dataDir/config.yml from the shipped default on
// first run and leaves an existing file alone, so user edits survive
// upgrades. Returns the path of the user copy either way.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	b, err := os.ReadFile(defaultPath)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(userPath, b, 0o644); err != nil {
		return "", err
	}
	return userPath, nil
}
