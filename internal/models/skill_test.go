package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwidmann/ringlog/internal/models"
)

func TestSkillRepMath(t *testing.T) {
	testCases := []struct {
		name         string
		completed    int
		goal         int
		wantUntil    int
		wantPercent  float64
		wantUncapped float64
	}{
		{
			name:         "fresh skill",
			completed:    0,
			goal:         3000,
			wantUntil:    3000,
			wantPercent:  0,
			wantUncapped: 0,
		},
		{
			name:         "halfway",
			completed:    1500,
			goal:         3000,
			wantUntil:    1500,
			wantPercent:  50,
			wantUncapped: 50,
		},
		{
			name:         "exactly at goal",
			completed:    2000,
			goal:         2000,
			wantUntil:    0,
			wantPercent:  100,
			wantUncapped: 100,
		},
		{
			name:         "over the goal",
			completed:    6000,
			goal:         3000,
			wantUntil:    0,
			wantPercent:  100,
			wantUncapped: 200,
		},
		{
			name:         "zero goal never divides by zero",
			completed:    10,
			goal:         0,
			wantUntil:    0,
			wantPercent:  100,
			wantUncapped: 100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			skill := models.Skill{CompletedReps: tc.completed, GoalReps: tc.goal}
			assert.Equal(t, tc.wantUntil, skill.RepsUntilGoal())
			assert.InDelta(t, tc.wantPercent, skill.RepPercent(), 0.0001)
			assert.InDelta(t, tc.wantUncapped, skill.RepPercentUncapped(), 0.0001)
		})
	}
}

func TestParseSkillTypeAndHits(t *testing.T) {
	for _, valid := range []string{models.SkillTypeArms, models.SkillTypeCore, models.SkillTypeLegs, models.SkillTypeYoga} {
		parsed, err := models.ParseSkillType(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, parsed)
	}
	_, err := models.ParseSkillType("Cardio")
	assert.Error(t, err)

	for _, valid := range []string{models.SkillHitsOne, models.SkillHitsThree, models.SkillHitsFive, models.SkillHitsHeal} {
		parsed, err := models.ParseSkillHits(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, parsed)
	}
	_, err = models.ParseSkillHits("Seven")
	assert.Error(t, err)
}

func TestSkillTranslationKey(t *testing.T) {
	testCases := []struct {
		skillName string
		want      string
	}{
		{"Squat", "skill_squat"},
		{"Front Press", "skill_front_press"},
		{"Open & Close Leg Raise", "skill_open_and_close_leg_raise"},
		{"Knee-to-Chest", "skill_knee-to-chest"},
		{"Warrior III Pose", "skill_warrior_iii_pose"},
	}

	for _, tc := range testCases {
		skill := models.Skill{Name: tc.skillName}
		assert.Equal(t, tc.want, skill.TranslationKey())
	}
}

func TestParseHashtag(t *testing.T) {
	parsed, err := models.ParseHashtag("#Upper Arms")
	require.NoError(t, err)
	assert.Equal(t, models.HashtagUpperArms, parsed)

	parsed, err = models.ParseHashtag("Chest")
	require.NoError(t, err)
	assert.Equal(t, models.HashtagChest, parsed)

	parsed, err = models.ParseHashtag("")
	require.NoError(t, err)
	assert.Equal(t, models.HashtagEmpty, parsed)

	_, err = models.ParseHashtag("#Biceps")
	assert.Error(t, err)
}

func TestHashtagDisplay(t *testing.T) {
	assert.Equal(t, "#Lower Body", models.HashtagDisplay(models.HashtagLowerBody))
	assert.Equal(t, "", models.HashtagDisplay(models.HashtagEmpty))
	assert.Equal(t, "hashtag_upper_arms", models.HashtagTranslationKey(models.HashtagUpperArms))
}

func TestDefaultSkillsTable(t *testing.T) {
	skills := models.DefaultSkills()
	require.Len(t, skills, 43)

	seen := make(map[string]bool)
	for _, skill := range skills {
		assert.False(t, seen[skill.Name], "duplicate skill %q", skill.Name)
		seen[skill.Name] = true

		_, err := models.ParseSkillType(skill.Type)
		assert.NoError(t, err, skill.Name)
		_, err = models.ParseSkillHits(skill.Hits)
		assert.NoError(t, err, skill.Name)
		for _, tag := range skill.Hashtags {
			_, err := models.ParseHashtag(tag)
			assert.NoError(t, err, skill.Name)
		}

		assert.Greater(t, skill.GoalReps, 0, skill.Name)
		assert.Zero(t, skill.CompletedReps, skill.Name)
	}
}

func TestBuildEntriesDropsZeroReps(t *testing.T) {
	skills := []models.Skill{
		{Name: "Squat"},
		{Name: "Plank"},
		{Name: "Chair Pose"},
	}
	reps := map[string]int{
		"Squat":      30,
		"Plank":      0,
		"Chair Pose": 12,
	}

	entries := models.BuildEntries(skills, reps)
	require.Len(t, entries, 2)
	assert.Equal(t, models.WorkoutEntry{SkillName: "Squat", Reps: 30}, entries[0])
	assert.Equal(t, models.WorkoutEntry{SkillName: "Chair Pose", Reps: 12}, entries[1])

	workout := models.Workout{Entries: entries}
	assert.Equal(t, 42, workout.TotalReps())
}
