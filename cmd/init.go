package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/settings"
	"github.com/fwidmann/ringlog/internal/storage"
)

// First-time setup. Every command recreates missing files on its own,
// this just does it explicitly and reports what exists afterwards.
var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the settings file and the database with default contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := settings.NewStore().Load(); err != nil {
			return fmt.Errorf("Failed to set up settings: %w", err)
		}

		st := storage.NewStorage()
		skills, err := st.GetAllSkills()
		if err != nil {
			return fmt.Errorf("Failed to read skill table: %w", err)
		}

		fmt.Printf("✅ Database initialized with %d skills\n", len(skills))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
