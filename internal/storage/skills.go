package storage

import (
	"database/sql"
	"fmt"

	"github.com/fwidmann/ringlog/internal/logger"
	"github.com/fwidmann/ringlog/internal/models"
)

func (s *Storage) seedSkills() error {
	for _, skill := range models.DefaultSkills() {
		_, err := s.DB.Exec(
			`INSERT OR IGNORE INTO skills
				(name, type, hits, damage, unlocks, hashtags, recharge, goal_reps, completed_reps)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			skill.Name,
			skill.Type,
			skill.Hits,
			joinInts(skill.Damage),
			joinInts(skill.Unlocks),
			joinHashtags(skill.Hashtags),
			joinInts(skill.Recharge),
			skill.GoalReps,
			skill.CompletedReps,
		)
		if err != nil {
			return err
		}
	}
	logger.Debug().Int("skills", len(models.DefaultSkills())).Msg("skill table seeded")
	return nil
}

// GetAllSkills returns the whole skill table in its seeded order.
func (s *Storage) GetAllSkills() ([]models.Skill, error) {
	rows, err := s.DB.Query(
		`SELECT name, type, hits, damage, unlocks, hashtags, recharge, goal_reps, completed_reps
		FROM skills ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		skill, err := scanSkill(rows.Scan)
		if err != nil {
			continue
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func (s *Storage) GetSkillByName(name string) (*models.Skill, error) {
	row := s.DB.QueryRow(
		`SELECT name, type, hits, damage, unlocks, hashtags, recharge, goal_reps, completed_reps
		FROM skills WHERE name = ?`, name)

	skill, err := scanSkill(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("unknown skill %q", name)
		}
		return nil, err
	}
	return &skill, nil
}

// AddReps increases a skill's lifetime rep count.
func (s *Storage) AddReps(name string, reps int) error {
	_, err := s.DB.Exec(
		"UPDATE skills SET completed_reps = completed_reps + ? WHERE name = ?",
		reps, name,
	)
	return err
}

// SetReps overwrites a skill's lifetime rep count.
func (s *Storage) SetReps(name string, reps int) error {
	_, err := s.DB.Exec(
		"UPDATE skills SET completed_reps = ? WHERE name = ?",
		reps, name,
	)
	return err
}

func scanSkill(scan func(...any) error) (models.Skill, error) {
	var skill models.Skill
	var damage, unlocks, hashtags, recharge string

	err := scan(
		&skill.Name,
		&skill.Type,
		&skill.Hits,
		&damage,
		&unlocks,
		&hashtags,
		&recharge,
		&skill.GoalReps,
		&skill.CompletedReps,
	)
	if err != nil {
		return models.Skill{}, err
	}

	skill.Damage = splitInts(damage)
	skill.Unlocks = splitInts(unlocks)
	skill.Hashtags = splitHashtags(hashtags)
	skill.Recharge = splitInts(recharge)
	return skill, nil
}
