package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwidmann/ringlog/internal/utils"
)

func TestParseRepArgs(t *testing.T) {
	reps, err := utils.ParseRepArgs([]string{"Squat=30", "Front Press=25", "Plank=0"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Squat": 30, "Front Press": 25, "Plank": 0}, reps)
}

func TestParseRepArgsRejectsGarbage(t *testing.T) {
	for _, arg := range []string{"Squat", "=30", "Squat=lots", "Squat=-5"} {
		_, err := utils.ParseRepArgs([]string{arg})
		assert.Error(t, err, arg)
	}
}

func TestParseWorkoutFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workout.toml")
	content := `
duration_min = 40
distance_km = 2.5
notes = "morning run"

[[entry]]
skill = "Squat"
reps = 30

[[entry]]
skill = "Chair Pose"
reps = 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	workout, err := utils.ParseWorkoutFromTOML(path)
	require.NoError(t, err)

	assert.Equal(t, 40, workout.Duration)
	assert.InDelta(t, 2.5, workout.Distance, 0.0001)
	assert.Equal(t, "morning run", workout.Notes)
	require.Len(t, workout.Entries, 2)
	assert.Equal(t, "Squat", workout.Entries[0].Skill)
	assert.Equal(t, 30, workout.Entries[0].Reps)
}

func TestParseWorkoutFromTOMLMissingFile(t *testing.T) {
	_, err := utils.ParseWorkoutFromTOML(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestKmToMiles(t *testing.T) {
	assert.InDelta(t, 0.621371, utils.KmToMiles(1), 0.0001)
	assert.Zero(t, utils.KmToMiles(0))
}
