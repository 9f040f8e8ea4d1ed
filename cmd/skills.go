package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fwidmann/ringlog/internal/models"
	"github.com/fwidmann/ringlog/internal/settings"
	"github.com/fwidmann/ringlog/internal/storage"
)

var skillsType string

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Display the skill reference table: hits, damage, unlocks, cooldown and hashtags",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		skills, err := st.GetAllSkills()
		if err != nil {
			return fmt.Errorf("Failed to read skill table: %w", err)
		}

		if skillsType != "" {
			skillType, err := models.ParseSkillType(skillsType)
			if err != nil {
				return err
			}
			var filtered []models.Skill
			for _, s := range skills {
				if s.Type == skillType {
					filtered = append(filtered, s)
				}
			}
			skills = filtered
		}

		tr, err := st.NewTranslator(settings.NewStore().Language())
		if err != nil {
			return err
		}

		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		for i, skill := range skills {
			colored := skillTypeColor(skill.Type)
			fmt.Printf("%d) %s  %s\n", i+1, colored(tr.Get(skill.TranslationKey())), hitsIcon(skill.Hits))

			var tags []string
			for _, tag := range skill.Hashtags {
				if tag == models.HashtagEmpty {
					continue
				}
				tags = append(tags, tr.Get(models.HashtagTranslationKey(tag)))
			}
			if len(tags) > 0 {
				fmt.Printf("   %s\n", strings.Join(tags, " "))
			}

			fmt.Printf("   %-6s | %-7s | %-8s | %s\n",
				tr.Get("level"), tr.Get("damage"), tr.Get("unlocks"), tr.Get("cooldown"))
			fmt.Println("   " + strings.Repeat("─", 36))
			for level := 0; level < 4; level++ {
				fmt.Printf("   %-6d | %-7d | %-8d | %d\n",
					level+1, skill.Damage[level], skill.Unlocks[level], skill.Recharge[level])
			}
			fmt.Printf("   %s: %d %s\n\n", boldCyan(tr.Get("goal")), skill.GoalReps, tr.Get("reps"))
		}

		return nil
	},
}

// hitsIcon mirrors the original's target column: one, three or five
// targets, or a heart for healing skills.
func hitsIcon(hits string) string {
	switch hits {
	case models.SkillHitsOne:
		return "🎯"
	case models.SkillHitsThree:
		return "🎯🎯🎯"
	case models.SkillHitsFive:
		return "🎯🎯🎯🎯🎯"
	case models.SkillHitsHeal:
		return "❤"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(skillsCmd)
	skillsCmd.Flags().StringVarP(&skillsType, "type", "t", "", "Filter by skill type (Arms, Core, Legs, Yoga)")
}
