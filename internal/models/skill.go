package models

import (
	"fmt"
	"strings"
)

// The four skill categories in game.
const (
	SkillTypeArms = "Arms"
	SkillTypeCore = "Core"
	SkillTypeLegs = "Legs"
	SkillTypeYoga = "Yoga"
)

// How a skill affects the battle: it hits 1, 3 or 5 enemies, or heals.
const (
	SkillHitsOne   = "One"
	SkillHitsThree = "Three"
	SkillHitsFive  = "Five"
	SkillHitsHeal  = "Heal"
)

var skillTypes = []string{SkillTypeArms, SkillTypeCore, SkillTypeLegs, SkillTypeYoga}
var skillHits = []string{SkillHitsOne, SkillHitsThree, SkillHitsFive, SkillHitsHeal}

// Skill is one in-game exercise move. The reference fields (everything
// except CompletedReps) are static and shipped with the app.
type Skill struct {
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Hits          string    `json:"hits"`
	Damage        [4]int    `json:"damage"`        // Damage per skill level.
	Unlocks       [4]int    `json:"unlocks"`       // Player level that unlocks each skill level.
	Hashtags      [3]string `json:"hashtags"`      // Muscle group hashtags, unused slots are empty.
	Recharge      [4]int    `json:"recharge"`      // Recharge turns per skill level.
	GoalReps      int       `json:"goal_reps"`     // Lifetime reps needed for the mastery title.
	CompletedReps int       `json:"completed_reps"`
}

func ParseSkillType(s string) (string, error) {
	for _, t := range skillTypes {
		if s == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown skill type %q", s)
}

func ParseSkillHits(s string) (string, error) {
	for _, h := range skillHits {
		if s == h {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown skill hits %q", s)
}

// RepsUntilGoal returns the reps left until the mastery title, or 0 if
// the goal is already reached.
func (s Skill) RepsUntilGoal() int {
	if left := s.GoalReps - s.CompletedReps; left > 0 {
		return left
	}
	return 0
}

// RepPercent returns the completion percentage, capped at 100.
func (s Skill) RepPercent() float64 {
	p := s.RepPercentUncapped()
	if p > 100 {
		return 100
	}
	return p
}

// RepPercentUncapped keeps going past 100 so over-achievement can be
// shown on its own color scale.
func (s Skill) RepPercentUncapped() float64 {
	if s.GoalReps == 0 {
		return 100
	}
	return float64(s.CompletedReps) / float64(s.GoalReps) * 100
}

// TranslationKey builds the lookup key for the skill's display name,
// e.g. "Open & Close Leg Raise" -> "skill_open_and_close_leg_raise".
// Hyphens stay as they are ("Knee-to-Chest" -> "skill_knee-to-chest").
func (s Skill) TranslationKey() string {
	key := strings.ToLower(s.Name)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "&", "and")
	return "skill_" + key
}
