package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwidmann/ringlog/internal/models"
)

// ParseWorkoutFromTOML reads a workout import file of the form
//
//	duration_min = 40
//	distance_km = 2.5
//
//	[[entry]]
//	skill = "Squat"
//	reps = 30
func ParseWorkoutFromTOML(path string) (*models.WorkoutImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var workout models.WorkoutImport
	if err := toml.Unmarshal(data, &workout); err != nil {
		return nil, err
	}

	return &workout, nil
}

// ParseRepArgs turns command arguments of the form "Skill Name=reps"
// into a rep count per skill name. Zero reps are allowed here and get
// dropped when the workout is built; malformed arguments are an error.
func ParseRepArgs(args []string) (map[string]int, error) {
	reps := make(map[string]int, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid entry %q, expected SKILL=REPS", arg)
		}

		count, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("invalid rep count in %q", arg)
		}
		reps[name] = count
	}
	return reps, nil
}

// KmToMiles converts the stored metric distance for imperial display.
func KmToMiles(km float64) float64 {
	return km * 0.621371
}
