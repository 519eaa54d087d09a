package configs

import (
	"log"
	"os"
	"path/filepath"
)

// HomeEnv overrides both the config and data directories when set.
const HomeEnv = "KEEPSAKE_HOME"

type Settings struct {
	ConfigDir string
	DataDir   string
}

// ConfigPath is the location of config.toml.
func (s *Settings) ConfigPath() string {
	return filepath.Join(s.ConfigDir, "config.toml")
}

// PreferencesPath is the location of the persisted destination list.
func (s *Settings) PreferencesPath() string {
	return filepath.Join(s.DataDir, "preferences.toml")
}

// HistoryPath is the location of the history log.
func (s *Settings) HistoryPath() string {
	return filepath.Join(s.DataDir, "history.jsonl")
}

var KeepsakeSettings *Settings

func init() {
	settings, err := ResolveSettings()
	if err != nil {
		log.Fatalf("error resolving keepsake directories: %s", err)
	}
	KeepsakeSettings = settings
}

// ResolveSettings works out the config and data directories from the
// environment.
func ResolveSettings() (*Settings, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return &Settings{ConfigDir: home, DataDir: home}, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return &Settings{
		ConfigDir: filepath.Join(configDir, "keepsake"),
		DataDir:   filepath.Join(dataDir, "keepsake"),
	}, nil
}
