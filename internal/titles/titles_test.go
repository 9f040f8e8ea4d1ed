package titles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwidmann/ringlog/internal/models"
	"github.com/fwidmann/ringlog/internal/titles"
)

func TestTitleEarned(t *testing.T) {
	testCases := []struct {
		name       string
		completed  int
		goal       int
		wantEarned bool
	}{
		{"not started", 0, 3000, false},
		{"one rep short", 2999, 3000, false},
		{"exactly at goal", 3000, 3000, true},
		{"past the goal", 4500, 3000, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			title := titles.ForSkill(models.Skill{
				Name:          "Squat",
				GoalReps:      tc.goal,
				CompletedReps: tc.completed,
			})
			assert.Equal(t, tc.wantEarned, title.Earned())
			assert.Equal(t, "Squat", title.SkillName)
		})
	}
}

func TestComputeOverall(t *testing.T) {
	skills := []models.Skill{
		{Name: "Squat", GoalReps: 1000, CompletedReps: 1000},    // done, 100%
		{Name: "Plank", GoalReps: 1000, CompletedReps: 250},     // 25%
		{Name: "Chair Pose", GoalReps: 2000, CompletedReps: 0},  // 0%
		{Name: "Bow Pull", GoalReps: 1000, CompletedReps: 3000}, // capped at 100%
	}

	overall := titles.Compute(skills)

	assert.Equal(t, 4250, overall.CompletedReps)
	assert.Equal(t, 750+2000, overall.PendingReps)
	assert.Equal(t, 5000, overall.GoalReps)
	assert.Equal(t, 2, overall.EarnedTitles)
	assert.Equal(t, 4, overall.TotalTitles)

	// 1 - 2750/5000 = 45%.
	assert.InDelta(t, 45.0, overall.TotalPercent, 0.0001)
	// Mean of 100, 25, 0, 100.
	assert.InDelta(t, 56.25, overall.RelativePercent, 0.0001)
}

func TestComputeEmptyTable(t *testing.T) {
	overall := titles.Compute(nil)
	assert.Zero(t, overall.TotalTitles)
	assert.Zero(t, overall.TotalPercent)
	assert.Zero(t, overall.RelativePercent)
}

func TestComputeAgainstDefaultTable(t *testing.T) {
	skills := models.DefaultSkills()
	overall := titles.Compute(skills)

	assert.Equal(t, len(skills), overall.TotalTitles)
	assert.Zero(t, overall.EarnedTitles)
	assert.InDelta(t, 0.0, overall.TotalPercent, 0.0001)
	assert.Equal(t, overall.GoalReps, overall.PendingReps)
}
