package lang

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// The two supported display languages.
type Language string

const (
	English Language = "English"
	German  Language = "German"
)

// translations.json maps every key to a [english, german] pair. It is
// bundled with the binary and also seeded into the database on first
// run, so screens can look strings up without re-reading the file.
//
//go:embed translations.json
var translationsJSON []byte

// Translation is one key with its value in every supported language.
type Translation struct {
	Key string
	EN  string
	DE  string
}

// String returns the language's own display name.
func (l Language) String() string {
	if l == German {
		return "Deutsch"
	}
	return "English"
}

// ParseLanguage accepts the english name, the language's own name and
// the two-letter code.
func ParseLanguage(s string) (Language, error) {
	switch s {
	case "English", "english", "en":
		return English, nil
	case "German", "Deutsch", "german", "deutsch", "de":
		return German, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// AllTranslations decodes the bundled translation table.
func AllTranslations() ([]Translation, error) {
	var raw map[string][2]string
	if err := json.Unmarshal(translationsJSON, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode bundled translations: %w", err)
	}

	translations := make([]Translation, 0, len(raw))
	for key, values := range raw {
		translations = append(translations, Translation{
			Key: key,
			EN:  values[0],
			DE:  values[1],
		})
	}
	return translations, nil
}

// Translator resolves display strings for one language. Lookups that
// miss fall back to the bundled english value, then to the key itself,
// so a stale database never breaks rendering.
type Translator struct {
	language Language
	values   map[string]string
	fallback map[string]string
}

func NewTranslator(language Language, values map[string]string) Translator {
	fallback := make(map[string]string)
	if all, err := AllTranslations(); err == nil {
		for _, tr := range all {
			fallback[tr.Key] = tr.EN
		}
	}

	return Translator{
		language: language,
		values:   values,
		fallback: fallback,
	}
}

func (t Translator) Language() Language {
	return t.language
}

func (t Translator) Get(key string) string {
	if v, ok := t.values[key]; ok {
		return v
	}
	if v, ok := t.fallback[key]; ok {
		return v
	}
	return key
}
