package constants

import (
	"os"
	"path/filepath"
)

const (
	// Overrides the directory searched for config.yaml
	DefaultHomeEnv = "PORTA_HOME"
	// Path of a config file to load instead of searching
	ConfigEnv = "PORTA_CONFIG"
)

// DefaultHome is $PORTA_HOME, else ~/.porta
var DefaultHome = defaultHome()

func defaultHome() string {
	if home := os.Getenv(DefaultHomeEnv); home != "" {
		return home
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return "/data"
	}
	return filepath.Join(userHomeDir, ".porta")
}
