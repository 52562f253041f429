package database

import (
	"fmt"
	"time"

	"github.com/example/ineqquest/pkg/models"
)

// AttemptRepository handles database operations for submitted answers
type AttemptRepository struct{}

// NewAttemptRepository creates a new repository instance
func NewAttemptRepository() *AttemptRepository {
	return &AttemptRepository{}
}

// Create inserts a new attempt
func (r *AttemptRepository) Create(a *models.Attempt) error {
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now()
	}
	query := DB.Rebind(`
		INSERT INTO attempts (
			session_id, exercise_id, topic, prompt, answer, solution,
			correct, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	res, err := DB.Exec(query,
		a.SessionID,
		a.ExerciseID,
		a.Topic,
		a.Prompt,
		a.Answer,
		a.Solution,
		a.Correct,
		a.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		a.ID = id
	}
	return nil
}

// GetBySession returns all attempts of a session, oldest first
func (r *AttemptRepository) GetBySession(sessionID string) ([]models.Attempt, error) {
	var attempts []models.Attempt
	query := DB.Rebind("SELECT * FROM attempts WHERE session_id = ? ORDER BY submitted_at, id")
	if err := DB.Select(&attempts, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}
	return attempts, nil
}

// CountBySession returns total and correct attempt counts for a session
func (r *AttemptRepository) CountBySession(sessionID string) (total, correct int, err error) {
	query := DB.Rebind("SELECT COUNT(*) FROM attempts WHERE session_id = ?")
	if err = DB.Get(&total, query, sessionID); err != nil {
		return 0, 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	query = DB.Rebind("SELECT COUNT(*) FROM attempts WHERE session_id = ? AND correct")
	if err = DB.Get(&correct, query, sessionID); err != nil {
		return 0, 0, fmt.Errorf("failed to count correct attempts: %w", err)
	}
	return total, correct, nil
}
