package models

import "time"

// Session is the persisted snapshot of a quiz session.
type Session struct {
	ID         string    `json:"id" db:"id"`
	Score      int       `json:"score" db:"score"`
	Streak     int       `json:"streak" db:"streak"`
	BestStreak int       `json:"best_streak" db:"best_streak"`
	StartedAt  time.Time `json:"started_at" db:"started_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
