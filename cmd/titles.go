package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/settings"
	"github.com/fwidmann/ringlog/internal/storage"
	"github.com/fwidmann/ringlog/internal/titles"
)

var titlesPendingOnly bool

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Show which skill mastery titles are earned and which are still pending",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		skills, err := st.GetAllSkills()
		if err != nil {
			return fmt.Errorf("Failed to read skill table: %w", err)
		}

		tr, err := st.NewTranslator(settings.NewStore().Language())
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		for _, skill := range skills {
			title := titles.ForSkill(skill)
			if title.Earned() {
				if !titlesPendingOnly {
					fmt.Printf("  %s %s (%d/%d)\n",
						green("★"), tr.Get(skill.TranslationKey()), title.CompletedReps, title.GoalReps)
				}
				continue
			}
			fmt.Printf("  ☆ %s (%d/%d)\n",
				tr.Get(skill.TranslationKey()), title.CompletedReps, title.GoalReps)
		}

		overall := titles.Compute(skills)
		fmt.Printf("\n%s %d/%d\n",
			color.New(color.FgGreen, color.Bold).Sprint(tr.Get("earned")+":"),
			overall.EarnedTitles, overall.TotalTitles)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(titlesCmd)
	titlesCmd.Flags().BoolVarP(&titlesPendingOnly, "pending", "p", false, "Only list titles not yet earned")
}
