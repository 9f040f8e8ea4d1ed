package models

// Units for displaying the jogging distance of a workout.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// Settings is the persisted user settings singleton. It is created with
// defaults on first run and only ever overwritten, never deleted.
type Settings struct {
	Language string `json:"language"`
	Units    string `json:"units"`
}

func DefaultSettings() Settings {
	return Settings{
		Language: "English",
		Units:    UnitsMetric,
	}
}
