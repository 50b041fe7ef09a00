package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/plus3/tetra/game"
)

// settingsFile is the on-disk YAML layout, kept separate from the core's
// Settings type so the file format can evolve independently.
type settingsFile struct {
	Language string `yaml:"language"`
	Sound    bool   `yaml:"sound_enabled"`
	Music    bool   `yaml:"music_enabled"`
}

// SettingsFile loads and saves player settings as a YAML file,
// implementing game.SettingsStore. A missing file is not an error; it
// yields defaults until the first save.
type SettingsFile struct {
	path string
}

// NewSettingsFile returns a store backed by the file at path.
func NewSettingsFile(path string) *SettingsFile {
	return &SettingsFile{path: filepath.Clean(path)}
}

// LoadSettings reads the settings file, returning defaults when the file
// does not exist yet.
func (f *SettingsFile) LoadSettings() (game.Settings, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.DefaultSettings(), nil
	}
	if err != nil {
		return game.DefaultSettings(), fmt.Errorf("read settings: %w", err)
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return game.DefaultSettings(), fmt.Errorf("parse settings: %w", err)
	}
	settings := game.Settings{
		Language:     file.Language,
		SoundEnabled: file.Sound,
		MusicEnabled: file.Music,
	}
	if settings.Language == "" {
		settings.Language = game.DefaultSettings().Language
	}
	return settings, nil
}

// SaveSettings writes the settings file, creating parent directories as
// needed.
func (f *SettingsFile) SaveSettings(settings game.Settings) error {
	data, err := yaml.Marshal(settingsFile{
		Language: settings.Language,
		Sound:    settings.SoundEnabled,
		Music:    settings.MusicEnabled,
	})
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
