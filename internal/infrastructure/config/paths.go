package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName = "panemux"

	dirPerm  = 0o755
	filePerm = 0o644

	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
	logFileName    = "panemux.log"
)

// XDGDirs holds the XDG base directories for panemux.
type XDGDirs struct {
	ConfigHome string
	StateHome  string
}

// GetXDGDirs resolves the XDG directories, falling back to the
// conventional locations under the home directory.
func GetXDGDirs() (*XDGDirs, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	stateHome := os.Getenv("XDG_STATE_HOME")
	if configHome == "" || stateHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		if configHome == "" {
			configHome = filepath.Join(homeDir, ".config")
		}
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
	}
	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		StateHome:  filepath.Join(stateHome, appName),
	}, nil
}

// GetConfigDir returns the XDG config directory for panemux.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetLogDir returns the directory holding the preview log file.
// Logs are stored in XDG_STATE_HOME.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}
