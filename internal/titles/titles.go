package titles

import "github.com/fwidmann/ringlog/internal/models"

// Title is the in-game completion goal attached to a skill: keep the
// lifetime rep count at or above the goal and the title is earned.
type Title struct {
	SkillName     string
	GoalReps      int
	CompletedReps int
}

func ForSkill(s models.Skill) Title {
	return Title{
		SkillName:     s.Name,
		GoalReps:      s.GoalReps,
		CompletedReps: s.CompletedReps,
	}
}

func (t Title) Earned() bool {
	return t.CompletedReps >= t.GoalReps
}

// Overall aggregates title progress across the whole skill table.
type Overall struct {
	CompletedReps int
	PendingReps   int
	GoalReps      int
	EarnedTitles  int
	TotalTitles   int

	// TotalPercent weighs every rep equally: 1 - pending/goal-sum.
	TotalPercent float64
	// RelativePercent is the mean of the per-skill capped percentages,
	// so small-goal skills count as much as large-goal ones.
	RelativePercent float64
}

func Compute(skills []models.Skill) Overall {
	var overall Overall
	if len(skills) == 0 {
		return overall
	}

	var percentSum float64
	for _, s := range skills {
		overall.CompletedReps += s.CompletedReps
		overall.PendingReps += s.RepsUntilGoal()
		overall.GoalReps += s.GoalReps
		overall.TotalTitles++
		if ForSkill(s).Earned() {
			overall.EarnedTitles++
		}
		percentSum += s.RepPercent()
	}

	if overall.GoalReps > 0 {
		overall.TotalPercent = (1 - float64(overall.PendingReps)/float64(overall.GoalReps)) * 100
	} else {
		overall.TotalPercent = 100
	}
	overall.RelativePercent = percentSum / float64(len(skills))

	return overall
}
