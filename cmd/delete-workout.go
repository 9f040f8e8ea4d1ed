package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/storage"
)

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [workout-id]",
	Short: "Delete a logged workout and roll its reps back out of the title progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		if err := st.DeleteWorkout(args[0]); err != nil {
			return fmt.Errorf("Failed to delete workout: %w", err)
		}

		fmt.Printf("✅ Deleted workout %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteWorkoutCmd)
}
