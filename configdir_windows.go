//go:build windows

package plottools

import (
	"os"
	"path/filepath"
)

// getDefaultConfigDir returns the default config directory for Windows.
// Returns %APPDATA%\<appName>\
func getDefaultConfigDir(appName string) (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		appData = filepath.Join(home, "AppData", "Roaming")
	}
	return filepath.Join(appData, appName), nil
}
