//go:build darwin

package plottools

import (
	"os"
	"path/filepath"
)

// getDefaultConfigDir returns the default config directory for macOS.
// Returns ~/Library/Application Support/<appName>/
func getDefaultConfigDir(appName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Application Support", appName), nil
}
