package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/storage"
)

// Manual correction of a skill's lifetime rep count, for reps done
// before the app existed or typos in old logs.
var setRepsCmd = &cobra.Command{
	Use:   "set-reps [skill-name] [total-reps]",
	Short: "Overwrite a skill's total completed reps",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reps, err := strconv.Atoi(args[1])
		if err != nil || reps < 0 {
			return fmt.Errorf("invalid rep count %q", args[1])
		}

		st := storage.NewStorage()
		skill, err := st.GetSkillByName(args[0])
		if err != nil {
			return err
		}

		if err := st.SetReps(skill.Name, reps); err != nil {
			return fmt.Errorf("Failed to set reps: %w", err)
		}

		fmt.Printf("✅ %s: %d ➡ %d reps\n", skill.Name, skill.CompletedReps, reps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setRepsCmd)
}
