package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/models"
	"github.com/fwidmann/ringlog/internal/storage"
	"github.com/fwidmann/ringlog/internal/utils"
)

// details is a flag to enable verbose workout details below the grid.
var details bool

// calendarCmd prints a calendar grid of the month. Days with logged
// workouts are colored by the skill type that got the most reps that
// day, with a legend below the calendar.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of workout days colored by the dominant skill type",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		nextMonth := firstOfMonth.AddDate(0, 1, 0)
		lastOfMonth := nextMonth.AddDate(0, 0, -1)

		st := storage.NewStorage()
		workouts, err := st.GetWorkoutsBetween(firstOfMonth, nextMonth)
		if err != nil {
			return fmt.Errorf("failed to get workouts: %w", err)
		}

		skills, err := st.GetAllSkills()
		if err != nil {
			return err
		}
		typeByName := make(map[string]string, len(skills))
		for _, s := range skills {
			typeByName[s.Name] = s.Type
		}

		// Group workouts by day and find the dominant skill type.
		workoutsByDay := make(map[int][]models.Workout)
		dominantType := make(map[int]string)
		for _, w := range workouts {
			day := w.LoggedAt.Local().Day()
			workoutsByDay[day] = append(workoutsByDay[day], w)
		}
		for day, dayWorkouts := range workoutsByDay {
			repsByType := make(map[string]int)
			for _, w := range dayWorkouts {
				for _, entry := range w.Entries {
					repsByType[typeByName[entry.SkillName]] += entry.Reps
				}
			}
			best := ""
			for t, reps := range repsByType {
				if best == "" || reps > repsByType[best] {
					best = t
				}
			}
			dominantType[day] = best
		}

		// Print the calendar header.
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if skillType, trained := dominantType[day]; trained {
				dayStr = skillTypeColor(skillType)(dayStr + "*")
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		// Print a legend mapping colors to skill types.
		fmt.Println("Legend:")
		for _, t := range []string{models.SkillTypeArms, models.SkillTypeCore, models.SkillTypeLegs, models.SkillTypeYoga} {
			fmt.Printf("  %s: %s\n", skillTypeColor(t)("██"), t)
		}

		if details {
			fmt.Println("\nWorkout details:")
			var days []int
			for d := range workoutsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, w := range workoutsByDay[day] {
					fmt.Printf("  Workout %s at %s, %d reps",
						w.ID, utils.FormatLocal(w.LoggedAt), w.TotalReps())
					if w.Duration > 0 {
						fmt.Printf(" in %s", w.Duration)
					}
					fmt.Println()
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional workout details")
}
