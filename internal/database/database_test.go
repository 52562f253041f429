package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ineqquest/pkg/models"
)

// setupDB opens a fresh SQLite database in a temp directory.
func setupDB(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, Connect(t.TempDir()))
	t.Cleanup(func() { Close() })
}

func TestSessionUpsertAndGet(t *testing.T) {
	setupDB(t)
	repo := NewSessionRepository()

	s := &models.Session{ID: "abc", Score: 2, Streak: 1, BestStreak: 3}
	require.NoError(t, repo.Upsert(s))
	assert.False(t, s.StartedAt.IsZero())

	got, err := repo.GetByID("abc")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Score)
	assert.Equal(t, 3, got.BestStreak)

	// Upsert again refreshes the counters, not the identity.
	s.Score = 5
	s.Streak = 0
	require.NoError(t, repo.Upsert(s))

	got, err = repo.GetByID("abc")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Score)
	assert.Equal(t, 0, got.Streak)

	_, err = repo.GetByID("missing")
	assert.Error(t, err)
}

func TestSessionListRecent(t *testing.T) {
	setupDB(t)
	repo := NewSessionRepository()

	old := &models.Session{ID: "old", StartedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, repo.Upsert(old))
	old.UpdatedAt = time.Now().Add(-time.Hour)
	query := DB.Rebind("UPDATE sessions SET updated_at = ? WHERE id = ?")
	_, err := DB.Exec(query, old.UpdatedAt, old.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(&models.Session{ID: "new"}))

	sessions, err := repo.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "new", sessions[0].ID)

	sessions, err = repo.ListRecent(1)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestSessionDeleteCascadesAttempts(t *testing.T) {
	setupDB(t)
	sessions := NewSessionRepository()
	attempts := NewAttemptRepository()

	require.NoError(t, sessions.Upsert(&models.Session{ID: "s1"}))
	require.NoError(t, attempts.Create(&models.Attempt{
		SessionID:  "s1",
		ExerciseID: "A1",
		Topic:      "linear",
		Prompt:     "Solve the inequality:  2x - 3 > 5",
		Answer:     "(4, ∞)",
		Solution:   "(4, ∞)",
		Correct:    true,
	}))

	require.NoError(t, sessions.Delete("s1"))

	rows, err := attempts.GetBySession("s1")
	require.NoError(t, err)
	assert.Empty(t, rows)
	_, err = sessions.GetByID("s1")
	assert.Error(t, err)
}

func TestAttemptCreateAndGetBySession(t *testing.T) {
	setupDB(t)
	sessions := NewSessionRepository()
	attempts := NewAttemptRepository()
	require.NoError(t, sessions.Upsert(&models.Session{ID: "s1"}))

	base := time.Now().Add(-time.Minute)
	for i, correct := range []bool{true, false, true} {
		a := &models.Attempt{
			SessionID:   "s1",
			ExerciseID:  "B1",
			Topic:       "quadratic",
			Prompt:      "Solve the inequality:  x² - 5x + 6 ≥ 0",
			Answer:      "(-∞, 2] U [3, ∞)",
			Solution:    "(-∞, 2] U [3, ∞)",
			Correct:     correct,
			SubmittedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, attempts.Create(a))
		assert.NotZero(t, a.ID)
	}

	rows, err := attempts.GetBySession("s1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].SubmittedAt.Before(rows[2].SubmittedAt), "oldest first")

	total, correct, err := attempts.CountBySession("s1")
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, correct)

	total, correct, err = attempts.CountBySession("other")
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, correct)
}

func TestStatisticsCreateOnFirstUse(t *testing.T) {
	setupDB(t)
	repo := NewStatisticsRepository()

	stats, err := repo.GetByTopic("linear")
	require.NoError(t, err)
	assert.Equal(t, "linear", stats.Topic)
	assert.Zero(t, stats.TotalAttempts)
}

func TestStatisticsIncrement(t *testing.T) {
	setupDB(t)
	repo := NewStatisticsRepository()

	require.NoError(t, repo.Increment("rational", true))
	require.NoError(t, repo.Increment("rational", false))
	require.NoError(t, repo.Increment("rational", true))
	require.NoError(t, repo.Increment("absolute", false))

	stats, err := repo.GetByTopic("rational")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalAttempts)
	assert.Equal(t, 2, stats.CorrectAttempts)

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by topic name.
	assert.Equal(t, "absolute", all[0].Topic)
	assert.Equal(t, "rational", all[1].Topic)
}
