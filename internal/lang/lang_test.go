package lang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwidmann/ringlog/internal/lang"
	"github.com/fwidmann/ringlog/internal/models"
)

func TestLanguageStringConversion(t *testing.T) {
	assert.Equal(t, "Deutsch", lang.German.String())
	assert.Equal(t, "English", lang.English.String())

	for _, s := range []string{"German", "Deutsch", "de"} {
		parsed, err := lang.ParseLanguage(s)
		require.NoError(t, err)
		assert.Equal(t, lang.German, parsed)
	}
	for _, s := range []string{"English", "en"} {
		parsed, err := lang.ParseLanguage(s)
		require.NoError(t, err)
		assert.Equal(t, lang.English, parsed)
	}

	_, err := lang.ParseLanguage("Something else")
	assert.Error(t, err)
}

// Every skill and hashtag shipped with the app must resolve in both
// languages, otherwise a screen would render raw keys.
func TestBundledTableIsComplete(t *testing.T) {
	all, err := lang.AllTranslations()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	byKey := make(map[string]lang.Translation, len(all))
	for _, tr := range all {
		byKey[tr.Key] = tr
	}

	for _, skill := range models.DefaultSkills() {
		tr, ok := byKey[skill.TranslationKey()]
		require.True(t, ok, "missing translation for %q", skill.Name)
		assert.NotEmpty(t, tr.EN, skill.Name)
		assert.NotEmpty(t, tr.DE, skill.Name)
	}

	for _, tag := range models.AllHashtags() {
		_, ok := byKey[models.HashtagTranslationKey(tag)]
		assert.True(t, ok, "missing translation for hashtag %q", tag)
	}
}

func TestTranslatorFallback(t *testing.T) {
	tr := lang.NewTranslator(lang.German, map[string]string{
		"skill_squat": "Kniebeuge",
	})

	assert.Equal(t, lang.German, tr.Language())
	assert.Equal(t, "Kniebeuge", tr.Get("skill_squat"))

	// Missing in the given values: falls back to the bundled english.
	assert.Equal(t, "Back", tr.Get("back"))

	// Entirely unknown keys come back verbatim.
	assert.Equal(t, "no_such_key", tr.Get("no_such_key"))
}
