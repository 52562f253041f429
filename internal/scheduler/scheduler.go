package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Pruner interface for expiring idle sessions
type Pruner interface {
	Prune(now time.Time) int
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	pruner    Pruner
	every     time.Duration
	log       *zap.SugaredLogger
}

// New creates a new scheduler instance
func New(pruner Pruner, every time.Duration, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		pruner:    pruner,
		every:     every,
		log:       log,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	s.scheduler.Every(s.every).Do(s.pruneIdleSessions)

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// pruneIdleSessions drops sessions that have been idle past their ttl
func (s *Scheduler) pruneIdleSessions() {
	removed := s.pruner.Prune(time.Now())
	if removed > 0 {
		s.log.Infow("pruned idle sessions", "count", removed)
	}
}
