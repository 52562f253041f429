package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ineqquest/internal/generator"
	"github.com/example/ineqquest/internal/solve"
)

func testTracker() *Tracker {
	gen := generator.NewWithRand(rand.New(rand.NewSource(7)))
	return NewTracker("test-session", gen)
}

func TestSubmitCorrectAnswer(t *testing.T) {
	tr := testTracker()

	out := tr.Submit(tr.Current.Solution.String())

	assert.True(t, out.Parsed)
	assert.True(t, out.Correct)
	assert.Equal(t, 1, tr.Score)
	assert.Equal(t, 1, tr.Streak)
	assert.Equal(t, 1, tr.BestStreak)
}

func TestSubmitCanonicalSolutionAlwaysCorrect(t *testing.T) {
	gen := generator.NewWithRand(rand.New(rand.NewSource(11)))
	tr := NewTracker("s", gen)
	for i := 0; i < 100; i++ {
		before := tr.Score
		out := tr.Submit(tr.Current.Solution.String())
		require.True(t, out.Correct, "canonical answer rejected for %q", tr.Current.Prompt)
		require.Equal(t, before+1, tr.Score)
		tr.Next(gen, generator.TopicAny)
	}
}

func TestSubmitIncorrectResetsStreak(t *testing.T) {
	tr := testTracker()

	tr.Submit(tr.Current.Solution.String())
	require.Equal(t, 1, tr.Streak)

	// A wrong but well-formed answer.
	out := tr.Submit("(123456, 654321)")
	assert.True(t, out.Parsed)
	assert.False(t, out.Correct)
	assert.Equal(t, 0, tr.Streak)
	assert.Equal(t, 1, tr.Score, "score is not decremented")

	// A second consecutive miss keeps the streak at zero.
	out = tr.Submit("(123456, 654321)")
	assert.False(t, out.Correct)
	assert.Equal(t, 0, tr.Streak)
	assert.Equal(t, 1, tr.BestStreak)
}

func TestSubmitMalformedCountsAsIncorrect(t *testing.T) {
	tr := testTracker()
	tr.Submit(tr.Current.Solution.String())
	require.Equal(t, 1, tr.Streak)

	out := tr.Submit("not intervals at all")

	assert.False(t, out.Parsed)
	assert.False(t, out.Correct)
	assert.Equal(t, 0, tr.Streak)
	assert.Equal(t, 1, tr.Score)
}

func TestSubmitEndpointFlagMismatch(t *testing.T) {
	tr := testTracker()
	// Pin a known exercise: 2x - 3 > 5 solves to (4, ∞).
	in := solve.Inequality{Form: solve.Linear, Rel: solve.Greater, A: 2, B: -3, C: 5}
	tr.Current = generator.Exercise{
		ID:         "A1",
		Topic:      generator.TopicLinear,
		Prompt:     "Solve the inequality:  " + in.Display(),
		Inequality: in,
		Solution:   in.Solve(),
	}

	out := tr.Submit("[4, ∞)")
	assert.True(t, out.Parsed)
	assert.False(t, out.Correct, "closed endpoint must not match an open one")

	out = tr.Submit("(4, ∞)")
	assert.True(t, out.Correct)
}

func TestNextReplacesExercise(t *testing.T) {
	gen := generator.NewWithRand(rand.New(rand.NewSource(5)))
	tr := NewTracker("s", gen)
	tr.LastAnswer = "something"

	tr.Next(gen, generator.TopicRational)

	assert.Equal(t, generator.TopicRational, tr.Topic)
	assert.Equal(t, generator.TopicRational, tr.Current.Topic)
	assert.Empty(t, tr.LastAnswer)
}

func TestStoreLifecycle(t *testing.T) {
	gen := generator.NewWithRand(rand.New(rand.NewSource(9)))
	store := NewStore(gen, time.Minute)

	tr := store.Create()
	require.NotEmpty(t, tr.ID)
	assert.Equal(t, 1, store.Len())

	got, ok := store.Get(tr.ID)
	require.True(t, ok)
	assert.Same(t, tr, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStorePrune(t *testing.T) {
	gen := generator.NewWithRand(rand.New(rand.NewSource(9)))
	store := NewStore(gen, time.Minute)

	stale := store.Create()
	stale.LastSeen = time.Now().Add(-2 * time.Minute)
	fresh := store.Create()

	removed := store.Prune(time.Now())

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
	_, ok := store.Get(fresh.ID)
	assert.True(t, ok)
	_, ok = store.Get(stale.ID)
	assert.False(t, ok)
}
