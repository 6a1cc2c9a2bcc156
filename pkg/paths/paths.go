package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvUniqrConfig points at an explicit user configuration file
	EnvUniqrConfig = "UNIQR_CONFIG"

	// EnvUniqrConfigDir overrides the XDG config directory for uniqr
	EnvUniqrConfigDir = "UNIQR_CONFIG_DIR"

	// EnvStateHome is the XDG state directory variable
	EnvStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for uniqr-specific files
	AppDirName = "uniqr"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "uniqr.log"
)

// ConfigDir returns the directory holding the user configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvUniqrConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of the user configuration file.
// UNIQR_CONFIG wins over the config directory.
func ConfigFile() string {
	if file := os.Getenv(EnvUniqrConfig); file != "" {
		return ExpandHome(file)
	}
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory holding uniqr's state files
func StateDir() string {
	// xdg caches the environment at init, so read XDG_STATE_HOME directly
	if stateHome := os.Getenv(EnvStateHome); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	if xdg.StateHome != "" {
		return filepath.Join(xdg.StateHome, AppDirName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home
		return "."
	}
	return filepath.Join(homeDir, ".local", "state", AppDirName)
}

// LogFile returns the path of the log file
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
