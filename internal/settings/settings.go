package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwidmann/ringlog/internal/lang"
	"github.com/fwidmann/ringlog/internal/logger"
	"github.com/fwidmann/ringlog/internal/models"
)

// DefaultPath is where the settings singleton lives, next to the
// database directory.
const DefaultPath = "./settings/settings.json"

type Store struct {
	path string
}

func NewStore() *Store {
	return &Store{path: DefaultPath}
}

// NewStoreAt is used by tests and by anyone keeping their data
// somewhere else.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted settings. A missing or corrupt file is
// replaced with defaults and never treated as fatal.
func (s *Store) Load() (models.Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn().Err(err).Str("path", s.path).Msg("settings unreadable, recreating defaults")
		}
		return s.reset()
	}

	var loaded models.Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		logger.Warn().Err(err).Str("path", s.path).Msg("settings corrupt, recreating defaults")
		return s.reset()
	}

	// Normalize field by field so one bad value does not wipe the rest.
	defaults := models.DefaultSettings()
	if _, err := lang.ParseLanguage(loaded.Language); err != nil {
		loaded.Language = defaults.Language
	}
	if loaded.Units != models.UnitsMetric && loaded.Units != models.UnitsImperial {
		loaded.Units = defaults.Units
	}

	return loaded, nil
}

// Save overwrites the settings singleton.
func (s *Store) Save(settings models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}

// Language is a convenience wrapper for commands that only need the
// display language.
func (s *Store) Language() lang.Language {
	loaded, err := s.Load()
	if err != nil {
		return lang.English
	}
	language, err := lang.ParseLanguage(loaded.Language)
	if err != nil {
		return lang.English
	}
	return language
}

func (s *Store) reset() (models.Settings, error) {
	defaults := models.DefaultSettings()
	if err := s.Save(defaults); err != nil {
		return defaults, err
	}
	return defaults, nil
}
