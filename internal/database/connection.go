package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect opens the database. With DATABASE_URL set it connects to
// Postgres; otherwise it opens (creating if necessary) a SQLite file
// under dataDir.
func Connect(dataDir string) error {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		DB = db
		return initializeSchema()
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "ineqquest.db")
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	DB = db
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DB.DriverName() == "postgres" {
		serial = "BIGSERIAL PRIMARY KEY"
	}

	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0,
			streak INTEGER NOT NULL DEFAULT 0,
			best_streak INTEGER NOT NULL DEFAULT 0,
			started_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}

	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS attempts (
			id %s,
			session_id TEXT NOT NULL,
			exercise_id TEXT NOT NULL,
			topic TEXT NOT NULL,
			prompt TEXT NOT NULL,
			answer TEXT NOT NULL,
			solution TEXT NOT NULL,
			correct BOOLEAN NOT NULL DEFAULT false,
			submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES sessions(id)
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create attempts table: %w", err)
	}

	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS topic_stats (
			id %s,
			topic TEXT NOT NULL UNIQUE,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			correct_attempts INTEGER NOT NULL DEFAULT 0
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create topic_stats table: %w", err)
	}

	return nil
}
