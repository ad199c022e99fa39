package paths

import (
	"envtidy/internal/constants"
	"envtidy/internal/version"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

var (
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
)

func appDirName() string {
	return strings.ToLower(version.ApplicationName)
}

// GetConfigDir returns the absolute path to the envtidy configuration directory
// (e.g., ~/.config/envtidy).
func GetConfigDir() string {
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, appDirName())
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appDirName())
	}
	return filepath.Join(xdg.ConfigHome, appDirName())
}

// GetConfigFilePath returns the absolute path to the envtidy.toml file.
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), constants.AppConfigFileName)
}

// GetStateDir returns the absolute path to the envtidy state directory.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return filepath.Join(StateHomeOverride, appDirName())
	}
	return filepath.Join(xdg.StateHome, appDirName())
}

// GetDefaultLogFilePath returns where the log file goes when log.file is "default".
func GetDefaultLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.AppLogFileName)
}
