package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/fwidmann/ringlog/internal/config"
	"github.com/fwidmann/ringlog/internal/logger"
)

type Storage struct {
	DB *sql.DB
}

// NewStorage opens the database from the configured connection string
// and makes sure schema and seed data exist, so a missing database is
// recreated instead of failing any command.
func NewStorage() *Storage {
	// A .env file is optional, it only carries DEV_MODE overrides.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.Log.Level)

	url := cfg.DB.ConnectionString
	ensureDBDir(url)

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s\n", url, err)
		os.Exit(1)
	}

	if err := InitializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	st := &Storage{DB: db}
	if err := st.seed(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed database: %v\n", err)
		os.Exit(1)
	}

	return st
}

// ensureDBDir creates the directory of a file-backed connection string,
// e.g. ./db for file:./db/ringlog.db?cache=shared.
func ensureDBDir(url string) {
	if !strings.HasPrefix(url, "file:") {
		return
	}
	path := strings.TrimPrefix(url, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			logger.Debug().Str("dir", dir).Msg("database directory ensured")
		}
	}
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS translations (
            key TEXT PRIMARY KEY,
            en TEXT NOT NULL,
            de TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS skills (
            name TEXT PRIMARY KEY,
            type TEXT NOT NULL,
            hits TEXT NOT NULL,
            damage TEXT NOT NULL,
            unlocks TEXT NOT NULL,
            hashtags TEXT NOT NULL,
            recharge TEXT NOT NULL,
            goal_reps INTEGER NOT NULL,
            completed_reps INTEGER NOT NULL DEFAULT 0
        );

        CREATE TABLE IF NOT EXISTS workouts (
            id TEXT PRIMARY KEY,
            logged_at TEXT NOT NULL,
            duration_min INTEGER NOT NULL DEFAULT 0,
            distance_km REAL NOT NULL DEFAULT 0,
            notes TEXT NOT NULL DEFAULT ''
        );

        CREATE INDEX IF NOT EXISTS idx_workouts_logged_at ON workouts(logged_at);

        CREATE TABLE IF NOT EXISTS workout_entries (
            id TEXT PRIMARY KEY,
            workout_id TEXT NOT NULL,
            skill_name TEXT NOT NULL,
            reps INTEGER NOT NULL,
            FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
            FOREIGN KEY (skill_name) REFERENCES skills(name)
        );
    `)
	return err
}

// seed fills the static tables. INSERT OR IGNORE keeps user progress
// (completed_reps) untouched on every later start.
func (s *Storage) seed() error {
	if err := s.seedSkills(); err != nil {
		return fmt.Errorf("failed to seed skills: %w", err)
	}
	if err := s.seedTranslations(); err != nil {
		return fmt.Errorf("failed to seed translations: %w", err)
	}
	return nil
}
