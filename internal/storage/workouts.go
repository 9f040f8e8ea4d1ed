package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fwidmann/ringlog/internal/logger"
	"github.com/fwidmann/ringlog/internal/models"
)

// LogWorkout appends the workout and adds its reps to the lifetime
// counts of the trained skills, all in one transaction.
func (s *Storage) LogWorkout(workout models.Workout) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO workouts (id, logged_at, duration_min, distance_km, notes)
		VALUES (?, ?, ?, ?, ?)`,
		workout.ID,
		workout.LoggedAt.UTC().Format(time.RFC3339),
		int(workout.Duration.Minutes()),
		workout.Distance,
		workout.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save workout: %w", err)
	}

	for _, entry := range workout.Entries {
		_, err = tx.Exec(
			`INSERT INTO workout_entries (id, workout_id, skill_name, reps)
			VALUES (?, ?, ?, ?)`,
			uuid.New().String(), workout.ID, entry.SkillName, entry.Reps,
		)
		if err != nil {
			return fmt.Errorf("failed to save workout entry: %w", err)
		}

		_, err = tx.Exec(
			"UPDATE skills SET completed_reps = completed_reps + ? WHERE name = ?",
			entry.Reps, entry.SkillName,
		)
		if err != nil {
			return fmt.Errorf("failed to update skill reps: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit workout: %w", err)
	}

	logger.Info().Str("id", workout.ID).Int("entries", len(workout.Entries)).Msg("workout logged")
	return nil
}

// DeleteWorkout removes a record and subtracts its reps from the skill
// lifetime counts again, clamped at zero.
func (s *Storage) DeleteWorkout(id string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(
		"SELECT skill_name, reps FROM workout_entries WHERE workout_id = ?", id)
	if err != nil {
		return err
	}

	var entries []models.WorkoutEntry
	for rows.Next() {
		var entry models.WorkoutEntry
		if err := rows.Scan(&entry.SkillName, &entry.Reps); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	rows.Close()

	for _, entry := range entries {
		_, err = tx.Exec(
			"UPDATE skills SET completed_reps = MAX(completed_reps - ?, 0) WHERE name = ?",
			entry.Reps, entry.SkillName,
		)
		if err != nil {
			return fmt.Errorf("failed to roll back skill reps: %w", err)
		}
	}

	if _, err := tx.Exec("DELETE FROM workout_entries WHERE workout_id = ?", id); err != nil {
		return err
	}

	res, err := tx.Exec("DELETE FROM workouts WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no workout with id %s", id)
	}

	return tx.Commit()
}

// ListWorkouts returns the newest workouts first. A limit of 0 returns
// everything.
func (s *Storage) ListWorkouts(limit int) ([]models.Workout, error) {
	query := `SELECT id, logged_at, duration_min, distance_km, notes
		FROM workouts ORDER BY logged_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.collectWorkouts(rows)
}

// GetWorkoutsBetween returns the workouts of a time range, oldest
// first, for the calendar view.
func (s *Storage) GetWorkoutsBetween(start, end time.Time) ([]models.Workout, error) {
	rows, err := s.DB.Query(
		`SELECT id, logged_at, duration_min, distance_km, notes
		FROM workouts WHERE logged_at >= ? AND logged_at < ?
		ORDER BY logged_at ASC`,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.collectWorkouts(rows)
}

func (s *Storage) collectWorkouts(rows *sql.Rows) ([]models.Workout, error) {
	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		var loggedAt string
		var durationMin int
		if err := rows.Scan(&w.ID, &loggedAt, &durationMin, &w.Distance, &w.Notes); err != nil {
			continue
		}
		w.LoggedAt, _ = time.Parse(time.RFC3339, loggedAt)
		w.Duration = time.Duration(durationMin) * time.Minute
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workouts {
		entries, err := s.getEntries(workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Entries = entries
	}
	return workouts, nil
}

func (s *Storage) getEntries(workoutID string) ([]models.WorkoutEntry, error) {
	rows, err := s.DB.Query(
		"SELECT skill_name, reps FROM workout_entries WHERE workout_id = ? ORDER BY rowid",
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.WorkoutEntry
	for rows.Next() {
		var entry models.WorkoutEntry
		if err := rows.Scan(&entry.SkillName, &entry.Reps); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
