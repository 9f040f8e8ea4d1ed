package models

import "time"

// Workout is one logged exercise session. Records are immutable once
// logged, the only later mutation is an explicit delete.
type Workout struct {
	ID       string         `json:"id"`
	LoggedAt time.Time      `json:"logged_at"`
	Duration time.Duration  `json:"duration,omitempty"`
	Distance float64        `json:"distance_km,omitempty"` // Jogging distance, always stored in km.
	Notes    string         `json:"notes,omitempty"`
	Entries  []WorkoutEntry `json:"entries"`
}

type WorkoutEntry struct {
	SkillName string `json:"skill_name"`
	Reps      int    `json:"reps"`
}

// BuildEntries pairs the given skills with their rep inputs and drops
// everything with zero reps, the same way the original confirm dialog
// only lists skills that actually got trained.
func BuildEntries(skills []Skill, reps map[string]int) []WorkoutEntry {
	var entries []WorkoutEntry
	for _, skill := range skills {
		if r := reps[skill.Name]; r > 0 {
			entries = append(entries, WorkoutEntry{SkillName: skill.Name, Reps: r})
		}
	}
	return entries
}

// TotalReps sums the reps over all entries of the workout.
func (w Workout) TotalReps() int {
	total := 0
	for _, e := range w.Entries {
		total += e.Reps
	}
	return total
}

//
// For TOML parsing only
//

type WorkoutEntryTOML struct {
	Skill string `toml:"skill"`
	Reps  int    `toml:"reps"`
}

type WorkoutImport struct {
	Duration int                `toml:"duration_min"`
	Distance float64            `toml:"distance_km"`
	Notes    string             `toml:"notes"`
	Entries  []WorkoutEntryTOML `toml:"entry"`
}
