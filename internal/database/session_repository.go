package database

import (
	"fmt"
	"time"

	"github.com/example/ineqquest/pkg/models"
)

// SessionRepository handles database operations for session snapshots
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// GetByID returns a session snapshot by ID
func (r *SessionRepository) GetByID(id string) (*models.Session, error) {
	var s models.Session
	query := DB.Rebind("SELECT * FROM sessions WHERE id = ?")
	if err := DB.Get(&s, query, id); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// Upsert inserts or refreshes a session snapshot
func (r *SessionRepository) Upsert(s *models.Session) error {
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now()
	}
	s.UpdatedAt = time.Now()
	query := DB.Rebind(`
		INSERT INTO sessions (id, score, streak, best_streak, started_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			score = excluded.score,
			streak = excluded.streak,
			best_streak = excluded.best_streak,
			updated_at = excluded.updated_at
	`)
	_, err := DB.Exec(query, s.ID, s.Score, s.Streak, s.BestStreak, s.StartedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}
	return nil
}

// ListRecent returns the most recently updated sessions
func (r *SessionRepository) ListRecent(limit int) ([]models.Session, error) {
	var sessions []models.Session
	query := DB.Rebind("SELECT * FROM sessions ORDER BY updated_at DESC LIMIT ?")
	if err := DB.Select(&sessions, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes a session and its attempts
func (r *SessionRepository) Delete(id string) error {
	if _, err := DB.Exec(DB.Rebind("DELETE FROM attempts WHERE session_id = ?"), id); err != nil {
		return fmt.Errorf("failed to delete session attempts: %w", err)
	}
	if _, err := DB.Exec(DB.Rebind("DELETE FROM sessions WHERE id = ?"), id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
