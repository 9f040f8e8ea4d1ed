package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/models"
	"github.com/fwidmann/ringlog/internal/settings"
	"github.com/fwidmann/ringlog/internal/storage"
	"github.com/fwidmann/ringlog/internal/utils"
)

var (
	logDuration int
	logDistance float64
	logNote     string
	logFile     string
)

var logCmd = &cobra.Command{
	Use:   "log [SKILL=REPS]...",
	Short: "Log today's workout, either from arguments or from a TOML file",
	Long: `Log a workout as SKILL=REPS pairs, for example:

  ringlog log Squat=30 "Front Press"=25 --duration 40

or import it from a TOML file with --file. Entries with zero reps are
dropped. The reps also count towards each skill's title goal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && logFile == "" {
			return fmt.Errorf("nothing to log, pass SKILL=REPS pairs or --file")
		}

		st := storage.NewStorage()

		reps, err := utils.ParseRepArgs(args)
		if err != nil {
			return err
		}

		duration := time.Duration(logDuration) * time.Minute
		distance := logDistance
		notes := logNote

		if logFile != "" {
			imported, err := utils.ParseWorkoutFromTOML(logFile)
			if err != nil {
				return fmt.Errorf("Failed to read workout file: %w", err)
			}
			for _, entry := range imported.Entries {
				reps[entry.Skill] += entry.Reps
			}
			if imported.Duration > 0 {
				duration = time.Duration(imported.Duration) * time.Minute
			}
			if imported.Distance > 0 {
				distance = imported.Distance
			}
			if notes == "" {
				notes = imported.Notes
			}
		}

		// Reject unknown skills before anything gets written.
		for name := range reps {
			exists, err := st.SkillExists(name)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("unknown skill %q, see 'ringlog skills'", name)
			}
		}

		skills, err := st.GetAllSkills()
		if err != nil {
			return fmt.Errorf("Failed to read skill table: %w", err)
		}

		workout := models.Workout{
			ID:       uuid.New().String(),
			LoggedAt: time.Now().UTC(),
			Duration: duration,
			Distance: distance,
			Notes:    notes,
			Entries:  models.BuildEntries(skills, reps),
		}
		if len(workout.Entries) == 0 {
			return fmt.Errorf("nothing to log, every entry has zero reps")
		}

		if err := st.LogWorkout(workout); err != nil {
			return fmt.Errorf("Failed to log workout: %w", err)
		}

		tr, err := st.NewTranslator(settings.NewStore().Language())
		if err != nil {
			return err
		}

		fmt.Printf("✅ %s (%s)\n", tr.Get("todays_workout"), workout.ID)
		byName := make(map[string]models.Skill, len(skills))
		for _, s := range skills {
			byName[s.Name] = s
		}
		for _, entry := range workout.Entries {
			skill := byName[entry.SkillName]
			colored := skillTypeColor(skill.Type)
			fmt.Printf("  %s: %d\n", colored(tr.Get(skill.TranslationKey())), entry.Reps)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().IntVarP(&logDuration, "duration", "d", 0, "Workout duration in minutes")
	logCmd.Flags().Float64Var(&logDistance, "distance", 0, "Jogging distance in km")
	logCmd.Flags().StringVarP(&logNote, "note", "n", "", "Note to attach to the workout")
	logCmd.Flags().StringVarP(&logFile, "file", "f", "", "Import the workout from a TOML file")
}
