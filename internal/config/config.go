package config

import (
	"bytes"
	"envtidy/internal/constants"
	"envtidy/internal/paths"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`

	// Helper fields for runtime use, not saved to TOML
	Path    string `toml:"-"`
	LogFile string `toml:"-"`
}

// OutputConfig holds settings for what gets printed to stdout.
type OutputConfig struct {
	Color      string `toml:"color" validate:"oneof=auto always never"`
	Style      string `toml:"style" validate:"oneof=text table yaml"`
	InlineDiff bool   `toml:"inline_diff"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"` // empty disables the log file; "default" uses the state dir
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field names as they appear in the TOML file
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		Output: OutputConfig{
			Color: constants.ColorAuto,
			Style: constants.StyleText,
		},
		Log: LogConfig{
			Level: constants.DefaultLogLevel,
		},
	}
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
// Any other variable is looked up in the process environment.
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return os.Getenv(varName)
	}
	return os.Expand(val, mapper)
}

// Validate checks enumerated settings and returns a readable error listing
// every invalid field.
func Validate(conf AppConfig) error {
	err := validate.Struct(conf)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var msgs []string
	for _, fe := range fieldErrs {
		field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "AppConfig."))
		msgs = append(msgs, fmt.Sprintf("%s: must be one of: %s (got %q)", field, fe.Param(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Load reads the configuration file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (AppConfig, error) {
	conf := Defaults()
	conf.Path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, nil
		}
		return conf, err
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&conf); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Defaults(), fmt.Errorf("parsing %s: unknown settings\n%s", path, strict.String())
		}
		return Defaults(), fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := Validate(conf); err != nil {
		return Defaults(), fmt.Errorf("invalid %s: %w", path, err)
	}

	conf.LogFile = resolveLogFile(conf.Log.File)
	return conf, nil
}

// LoadAppConfig reads envtidy.toml from the user config directory.
// On any error the defaults are returned together with the error so the
// caller can warn and carry on.
func LoadAppConfig() (AppConfig, error) {
	path := paths.GetConfigFilePath()
	conf, err := Load(path)
	conf.Path = path
	return conf, err
}

func resolveLogFile(setting string) string {
	switch setting {
	case "":
		return ""
	case "default":
		return paths.GetDefaultLogFilePath()
	}
	return ExpandVariables(setting)
}

// Marshal renders the configuration as TOML.
func Marshal(conf AppConfig) ([]byte, error) {
	return toml.Marshal(conf)
}
