// Package session holds per-student quiz state: the active exercise,
// score, and streak. State lives only for the lifetime of the session.
package session

import (
	"time"

	"github.com/example/ineqquest/internal/generator"
	"github.com/example/ineqquest/internal/interval"
)

// Outcome is the result of one answer submission.
type Outcome struct {
	// Parsed is false when the answer text was not valid interval
	// notation. An unparseable answer counts as incorrect.
	Parsed    bool
	Correct   bool
	Submitted interval.Set
	Solution  interval.Set
}

// Tracker is the state of one student session.
type Tracker struct {
	ID         string
	Score      int
	Streak     int
	BestStreak int
	Topic      generator.Topic
	Current    generator.Exercise
	LastAnswer string
	Attempts   int
	StartedAt  time.Time
	LastSeen   time.Time
}

// NewTracker starts a session with a fresh exercise drawn from the whole
// bank.
func NewTracker(id string, gen *generator.Generator) *Tracker {
	now := time.Now()
	return &Tracker{
		ID:        id,
		Topic:     generator.TopicAny,
		Current:   gen.Generate(generator.TopicAny),
		StartedAt: now,
		LastSeen:  now,
	}
}

// Submit evaluates an answer against the canonical solution of the
// current exercise. A structural match (bounds within tolerance, exact
// open/closed flags) increments score and streak; anything else,
// including malformed input, resets the streak.
func (t *Tracker) Submit(answer string) Outcome {
	t.Attempts++
	t.LastAnswer = answer

	out := Outcome{Solution: t.Current.Solution}
	submitted, err := interval.Parse(answer)
	if err == nil {
		out.Parsed = true
		out.Submitted = submitted
		out.Correct = submitted.Equal(t.Current.Solution)
	}

	if out.Correct {
		t.Score++
		t.Streak++
		if t.Streak > t.BestStreak {
			t.BestStreak = t.Streak
		}
	} else {
		t.Streak = 0
	}
	return out
}

// Next replaces the current exercise with a fresh one for the topic and
// remembers the filter for the session.
func (t *Tracker) Next(gen *generator.Generator, topic generator.Topic) {
	t.Topic = topic
	t.Current = gen.Generate(topic)
	t.LastAnswer = ""
}
