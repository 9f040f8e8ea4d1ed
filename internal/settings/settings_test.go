package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwidmann/ringlog/internal/lang"
	"github.com/fwidmann/ringlog/internal/models"
	"github.com/fwidmann/ringlog/internal/settings"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings", "settings.json")
	store := settings.NewStoreAt(path)

	saved := models.Settings{Language: "German", Units: models.UnitsImperial}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
	assert.Equal(t, lang.German, store.Language())
}

func TestMissingFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings", "settings.json")
	store := settings.NewStoreAt(path)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), loaded)

	// The singleton must exist on disk after the first load.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestCorruptFileRecreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := settings.NewStoreAt(path)
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), loaded)

	// And it stays readable on the next load.
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), loaded)
}

func TestInvalidValuesFallBackFieldByField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"language": "Klingon", "units": "imperial"}`), 0o644))

	store := settings.NewStoreAt(path)
	loaded, err := store.Load()
	require.NoError(t, err)

	// Bad language resets, valid units survive.
	assert.Equal(t, models.DefaultSettings().Language, loaded.Language)
	assert.Equal(t, models.UnitsImperial, loaded.Units)
}
