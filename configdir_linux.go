//go:build linux

package plottools

import (
	"os"
	"path/filepath"
)

// getDefaultConfigDir returns the default config directory for Linux.
// Uses $XDG_CONFIG_HOME/<appName>/ if set, otherwise ~/.config/<appName>/
func getDefaultConfigDir(appName string) (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
