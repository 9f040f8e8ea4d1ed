package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/storage"
	"github.com/fwidmann/ringlog/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show meta data: total reps, workout count, time trained, week streak, and reps per skill type (current week)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		workouts, err := st.ListWorkouts(0)
		if err != nil {
			return fmt.Errorf("Failed to retrieve workouts: %w", err)
		}

		skills, err := st.GetAllSkills()
		if err != nil {
			return fmt.Errorf("Failed to read skill table: %w", err)
		}
		typeByName := make(map[string]string, len(skills))
		for _, s := range skills {
			typeByName[s.Name] = s.Type
		}

		var totalReps int
		var totalDuration time.Duration
		var workoutTimes []time.Time
		typeRepsThisWeek := make(map[string]int)
		now := time.Now()
		currentYear, currentWeek := now.ISOWeek()

		for _, w := range workouts {
			totalReps += w.TotalReps()
			totalDuration += w.Duration
			workoutTimes = append(workoutTimes, w.LoggedAt)

			year, week := w.LoggedAt.Local().ISOWeek()
			if year == currentYear && week == currentWeek {
				for _, entry := range w.Entries {
					typeRepsThisWeek[typeByName[entry.SkillName]] += entry.Reps
				}
			}
		}

		printBoxedHeader("STATUS")

		printMetric("Total reps", totalReps)
		printMetric("Total workouts", len(workouts))
		printMetric("Total time trained", totalDuration.Round(time.Minute))
		printMetric("Week streak", fmt.Sprintf("%d weeks", utils.WeekStreak(workoutTimes, now)))
		fmt.Println()

		header := color.New(color.FgGreen, color.Bold).Sprintf("Reps per skill type (current week):")
		fmt.Println(header)
		var types []string
		for t := range typeRepsThisWeek {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			colored := skillTypeColor(t)
			fmt.Printf("  • %s: %d reps\n", colored(t), typeRepsThisWeek[t])
		}
		fmt.Println()

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
