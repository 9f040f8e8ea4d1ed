package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/models"
	"github.com/fwidmann/ringlog/internal/settings"
	"github.com/fwidmann/ringlog/internal/storage"
	"github.com/fwidmann/ringlog/internal/utils"
)

var (
	workoutsLimit int
	workoutsDay   string
)

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "Display previous workouts, newest first, optionally filtered by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		workouts, err := st.ListWorkouts(workoutsLimit)
		if err != nil {
			return fmt.Errorf("Failed to retrieve workouts: %w", err)
		}

		if workoutsDay != "" {
			day, err := parseDay(workoutsDay)
			if err != nil {
				return err
			}
			var filtered []models.Workout
			for _, w := range workouts {
				if w.LoggedAt.Local().Format("2006-01-02") == day.Format("2006-01-02") {
					filtered = append(filtered, w)
				}
			}
			workouts = filtered
		}

		store := settings.NewStore()
		userSettings, err := store.Load()
		if err != nil {
			return err
		}
		tr, err := st.NewTranslator(store.Language())
		if err != nil {
			return err
		}

		if len(workouts) == 0 {
			fmt.Println(color.New(color.FgMagenta).Sprint("No workouts found."))
			return nil
		}

		skills, err := st.GetAllSkills()
		if err != nil {
			return err
		}
		byName := make(map[string]models.Skill, len(skills))
		for _, s := range skills {
			byName[s.Name] = s
		}

		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		for _, w := range workouts {
			fmt.Printf("%s %s  (%s)\n", boldCyan(tr.Get("time")+":"), utils.FormatLocal(w.LoggedAt), w.ID)
			if w.Duration > 0 {
				fmt.Printf("  %s: %s\n", tr.Get("duration"), w.Duration)
			}
			if w.Distance > 0 {
				if userSettings.Units == models.UnitsImperial {
					fmt.Printf("  %s: %.2f mi\n", tr.Get("distance"), utils.KmToMiles(w.Distance))
				} else {
					fmt.Printf("  %s: %.2f km\n", tr.Get("distance"), w.Distance)
				}
			}
			if w.Notes != "" {
				fmt.Printf("  %s: %s\n", tr.Get("notes"), w.Notes)
			}
			for _, entry := range w.Entries {
				skill := byName[entry.SkillName]
				colored := skillTypeColor(skill.Type)
				fmt.Printf("  %s: %d\n", colored(tr.Get(skill.TranslationKey())), entry.Reps)
			}
			fmt.Println()
		}

		return nil
	},
}

// parseDay accepts 2006-01-02 and 02/01/06 forms.
func parseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		day, err = time.ParseInLocation("02/01/06", s, time.Local)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse day %q: %w", s, err)
	}
	return day, nil
}

func init() {
	rootCmd.AddCommand(workoutsCmd)
	workoutsCmd.Flags().IntVarP(&workoutsLimit, "limit", "l", 0, "Number of workouts to display (0 = all)")
	workoutsCmd.Flags().StringVarP(&workoutsDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
}
