package cmd

import (
	"github.com/fatih/color"

	"github.com/fwidmann/ringlog/internal/models"
)

// Skill type colors, mirroring the original app's palette: Arms red,
// Core yellow, Legs magenta, Yoga green.
func skillTypeColor(skillType string) func(a ...interface{}) string {
	switch skillType {
	case models.SkillTypeArms:
		return color.New(color.FgRed).SprintFunc()
	case models.SkillTypeCore:
		return color.New(color.FgYellow).SprintFunc()
	case models.SkillTypeLegs:
		return color.New(color.FgMagenta).SprintFunc()
	case models.SkillTypeYoga:
		return color.New(color.FgGreen).SprintFunc()
	}
	return color.New(color.FgWhite).SprintFunc()
}

// progressColor grades an uncapped completion percentage from deep red
// (barely started) to deep green (double the goal), the same buckets
// the original progress screen used.
func progressColor(percent float64) func(a ...interface{}) string {
	switch {
	case percent >= 200:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	case percent >= 100:
		return color.New(color.FgGreen).SprintFunc()
	case percent >= 75:
		return color.New(color.FgYellow).SprintFunc()
	case percent >= 50:
		return color.New(color.FgYellow, color.Faint).SprintFunc()
	case percent >= 25:
		return color.New(color.FgRed).SprintFunc()
	}
	return color.New(color.FgRed, color.Faint).SprintFunc()
}
