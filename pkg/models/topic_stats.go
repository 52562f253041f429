package models

// TopicStats aggregates answer counts per exercise topic.
type TopicStats struct {
	ID              int64  `json:"id" db:"id"`
	Topic           string `json:"topic" db:"topic"`
	TotalAttempts   int    `json:"total_attempts" db:"total_attempts"`
	CorrectAttempts int    `json:"correct_attempts" db:"correct_attempts"`
}
