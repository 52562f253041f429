package models

import "time"

// Attempt records one submitted answer.
type Attempt struct {
	ID          int64     `json:"id" db:"id"`
	SessionID   string    `json:"session_id" db:"session_id"`
	ExerciseID  string    `json:"exercise_id" db:"exercise_id"` // worksheet code, e.g. "A1"
	Topic       string    `json:"topic" db:"topic"`
	Prompt      string    `json:"prompt" db:"prompt"`
	Answer      string    `json:"answer" db:"answer"`
	Solution    string    `json:"solution" db:"solution"` // canonical set in student notation
	Correct     bool      `json:"correct" db:"correct"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}
