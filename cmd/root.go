package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ringlog",
	Short: "Workout and title progress tracker for Ring Fit Adventure",
}

func Execute() error {
	return rootCmd.Execute()
}
