package storage

import (
	"database/sql"
	"fmt"

	"github.com/fwidmann/ringlog/internal/lang"
)

func (s *Storage) seedTranslations() error {
	translations, err := lang.AllTranslations()
	if err != nil {
		return err
	}

	for _, tr := range translations {
		_, err := s.DB.Exec(
			"INSERT OR IGNORE INTO translations (key, en, de) VALUES (?, ?, ?)",
			tr.Key, tr.EN, tr.DE,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetString looks a single translated string up by key.
func (s *Storage) GetString(language lang.Language, key string) (string, error) {
	column := "en"
	if language == lang.German {
		column = "de"
	}

	var value string
	err := s.DB.QueryRow(
		fmt.Sprintf("SELECT %s FROM translations WHERE key = ?", column), key,
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("no translation for key %q", key)
		}
		return "", err
	}
	return value, nil
}

// NewTranslator loads the whole translation table for a language once,
// so screens can render without going back to the database per label.
func (s *Storage) NewTranslator(language lang.Language) (lang.Translator, error) {
	column := "en"
	if language == lang.German {
		column = "de"
	}

	rows, err := s.DB.Query(fmt.Sprintf("SELECT key, %s FROM translations", column))
	if err != nil {
		return lang.Translator{}, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			continue
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return lang.Translator{}, err
	}

	return lang.NewTranslator(language, values), nil
}
