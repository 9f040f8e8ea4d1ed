package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/settings"
	"github.com/fwidmann/ringlog/internal/storage"
	"github.com/fwidmann/ringlog/internal/titles"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Display title progress for every skill, with overall totals",
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

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		bold := color.New(color.Bold).SprintFunc()

		fmt.Printf("%-32s | %-8s | %-8s | %s\n",
			tr.Get("skill"), tr.Get("reps"), tr.Get("pending"), tr.Get("progress_percent"))
		fmt.Println(strings.Repeat("─", 70))

		for _, skill := range skills {
			colored := progressColor(skill.RepPercentUncapped())
			fmt.Printf("%-32s | %s | %s | %s\n",
				tr.Get(skill.TranslationKey()),
				colored(fmt.Sprintf("%-8d", skill.CompletedReps)),
				colored(fmt.Sprintf("%-8d", skill.RepsUntilGoal())),
				colored(fmt.Sprintf("%6.2f%%", skill.RepPercent())),
			)
		}

		overall := titles.Compute(skills)
		fmt.Println(strings.Repeat("─", 70))
		fmt.Printf("%-32s | %s | %s | %s\n",
			bold(tr.Get("total")),
			bold(fmt.Sprintf("%-8d", overall.CompletedReps)),
			bold(fmt.Sprintf("%-8d", overall.PendingReps)),
			bold(fmt.Sprintf("%6.2f%%", overall.TotalPercent)),
		)
		fmt.Println()
		fmt.Printf("%s %.2f%%\n", boldGreen("Overall progress:"), overall.TotalPercent)
		fmt.Printf("%s %.2f%%\n", boldGreen("Mean skill progress:"), overall.RelativePercent)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
