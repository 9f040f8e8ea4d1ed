package storage

import (
	"database/sql"
	"fmt"
)

func (s *Storage) SkillExists(name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM skills WHERE name = ?)",
		name,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check skill existence: %w", err)
	}

	return exists, nil
}
