package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/lang"
	"github.com/fwidmann/ringlog/internal/models"
	"github.com/fwidmann/ringlog/internal/settings"
)

var (
	settingsLanguage string
	settingsUnits    string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the current settings, or change them via flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := settings.NewStore()
		userSettings, err := store.Load()
		if err != nil {
			return err
		}

		changed := false
		if settingsLanguage != "" {
			language, err := lang.ParseLanguage(settingsLanguage)
			if err != nil {
				return err
			}
			userSettings.Language = string(language)
			changed = true
		}
		if settingsUnits != "" {
			if settingsUnits != models.UnitsMetric && settingsUnits != models.UnitsImperial {
				return fmt.Errorf("invalid units %q, expected %s or %s",
					settingsUnits, models.UnitsMetric, models.UnitsImperial)
			}
			userSettings.Units = settingsUnits
			changed = true
		}

		if changed {
			if err := store.Save(userSettings); err != nil {
				return fmt.Errorf("Failed to save settings: %w", err)
			}
			fmt.Println("✅ Settings saved")
		}

		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		language, _ := lang.ParseLanguage(userSettings.Language)
		fmt.Printf("  %s: %s\n", boldCyan("Language"), language)
		fmt.Printf("  %s: %s\n", boldCyan("Units"), userSettings.Units)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().StringVarP(&settingsLanguage, "language", "l", "", "Display language (English, Deutsch)")
	settingsCmd.Flags().StringVarP(&settingsUnits, "units", "u", "", "Distance units (metric, imperial)")
}
