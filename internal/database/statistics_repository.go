package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/ineqquest/pkg/models"
)

// StatisticsRepository handles database operations for per-topic answer
// statistics
type StatisticsRepository struct{}

// NewStatisticsRepository creates a new repository instance
func NewStatisticsRepository() *StatisticsRepository {
	return &StatisticsRepository{}
}

// GetByTopic returns the statistics row for a topic, creating it on
// first use
func (r *StatisticsRepository) GetByTopic(topic string) (*models.TopicStats, error) {
	var stats models.TopicStats
	query := DB.Rebind("SELECT * FROM topic_stats WHERE topic = ?")
	err := DB.Get(&stats, query, topic)
	if errors.Is(err, sql.ErrNoRows) {
		stats = models.TopicStats{Topic: topic}
		if err := r.create(&stats); err != nil {
			return nil, fmt.Errorf("failed to create statistics: %w", err)
		}
		return &stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}
	return &stats, nil
}

// All returns statistics for every topic seen so far
func (r *StatisticsRepository) All() ([]models.TopicStats, error) {
	var stats []models.TopicStats
	err := DB.Select(&stats, "SELECT * FROM topic_stats ORDER BY topic")
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}
	return stats, nil
}

// Increment bumps the attempt counters for a topic
func (r *StatisticsRepository) Increment(topic string, correct bool) error {
	if _, err := r.GetByTopic(topic); err != nil {
		return err
	}
	add := 0
	if correct {
		add = 1
	}
	query := DB.Rebind(`
		UPDATE topic_stats SET
			total_attempts = total_attempts + 1,
			correct_attempts = correct_attempts + ?
		WHERE topic = ?
	`)
	if _, err := DB.Exec(query, add, topic); err != nil {
		return fmt.Errorf("failed to update statistics: %w", err)
	}
	return nil
}

func (r *StatisticsRepository) create(stats *models.TopicStats) error {
	query := DB.Rebind(`
		INSERT INTO topic_stats (topic, total_attempts, correct_attempts)
		VALUES (?, ?, ?)
	`)
	res, err := DB.Exec(query, stats.Topic, stats.TotalAttempts, stats.CorrectAttempts)
	if err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		stats.ID = id
	}
	return nil
}
