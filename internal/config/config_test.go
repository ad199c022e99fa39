package config

import (
	"envtidy/internal/constants"
	"envtidy/internal/paths"
	"os"
	"path/filepath"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), constants.AppConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if conf.Output != Defaults().Output || conf.Log != Defaults().Log {
		t.Errorf("Load() = %+v, want defaults", conf)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("ENVTIDY_TEST_DIR", "/tmp/envtidy-logs")
	path := writeConfig(t, `
[output]
color = "never"
style = "yaml"
inline_diff = true

[log]
level = "debug"
file = "${ENVTIDY_TEST_DIR}/run.log"
`)

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if conf.Output.Color != "never" || conf.Output.Style != "yaml" || !conf.Output.InlineDiff {
		t.Errorf("Output = %+v", conf.Output)
	}
	if conf.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", conf.Log.Level)
	}
	if conf.LogFile != "/tmp/envtidy-logs/run.log" {
		t.Errorf("LogFile = %q", conf.LogFile)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	conf, err := Load(writeConfig(t, "[output]\ninline_diff = true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if conf.Output.Color != constants.ColorAuto || conf.Output.Style != constants.StyleText {
		t.Errorf("Output = %+v, want defaults for unset keys", conf.Output)
	}
	if conf.Log.Level != constants.DefaultLogLevel {
		t.Errorf("Log.Level = %q", conf.Log.Level)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad enum", "[output]\ncolor = \"sometimes\"\n", "output.color"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"unknown key", "[output]\ncolour = \"never\"\n", "unknown settings"},
		{"bad syntax", "[output\n", "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() expected an error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
			if conf.Output != Defaults().Output {
				t.Errorf("invalid config should fall back to defaults, got %+v", conf.Output)
			}
		})
	}
}

func TestLoadAppConfigUsesConfigHome(t *testing.T) {
	tempDir := t.TempDir()
	paths.ConfigHomeOverride = tempDir
	paths.StateHomeOverride = tempDir
	defer func() {
		paths.ConfigHomeOverride = ""
		paths.StateHomeOverride = ""
	}()

	conf := Defaults()
	conf.Output.Style = constants.StyleTable
	conf.Log.File = "default"
	data, err := toml.Marshal(conf)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(paths.GetConfigDir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.GetConfigFilePath(), data, 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if loaded.Output.Style != constants.StyleTable {
		t.Errorf("Expected Style 'table', got '%s'", loaded.Output.Style)
	}
	if loaded.Path != paths.GetConfigFilePath() {
		t.Errorf("Path = %q", loaded.Path)
	}
	if loaded.LogFile != paths.GetDefaultLogFilePath() {
		t.Errorf("LogFile = %q, want %q", loaded.LogFile, paths.GetDefaultLogFilePath())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	conf := Defaults()
	conf.Output.InlineDiff = true
	data, err := Marshal(conf)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Path") || strings.Contains(string(data), "LogFile") {
		t.Errorf("runtime fields leaked into TOML:\n%s", data)
	}
	if !strings.Contains(string(data), "inline_diff = true") {
		t.Errorf("marshalled config missing inline_diff:\n%s", data)
	}
}
