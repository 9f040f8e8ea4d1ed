package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/lang"
	"github.com/fwidmann/ringlog/internal/settings"
)

// This command stays english on purpose, so you can always switch back
// after misclicking into a language you do not speak.
var langCmd = &cobra.Command{
	Use:   "lang [language]",
	Short: "Show or change the display language (English, Deutsch)",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := settings.NewStore()

		if len(args) == 0 {
			fmt.Printf("Current language: %s\n", store.Language())
			return nil
		}

		language, err := lang.ParseLanguage(args[0])
		if err != nil {
			return err
		}

		userSettings, err := store.Load()
		if err != nil {
			return err
		}
		userSettings.Language = string(language)
		if err := store.Save(userSettings); err != nil {
			return fmt.Errorf("Failed to save settings: %w", err)
		}

		fmt.Printf("✅ Language set to %s\n", language)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(langCmd)
}
