package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ineqquest/internal/interval"
	"github.com/example/ineqquest/internal/plot"
)

func TestBuildProducesPDF(t *testing.T) {
	set := interval.NewSet(interval.Above(4, false))
	png, err := plot.NumberLine(set, "Solution")
	require.NoError(t, err)

	out, err := Build(Report{
		ExerciseID:    "A1",
		Topic:         "linear",
		Prompt:        "Solve the inequality:  2x - 3 > 5",
		Inequality:    "2x - 3 > 5",
		Answer:        "(4, ∞)",
		Solution:      set.String(),
		EndpointNotes: set.Describe(),
		PlotPNG:       png,
		Score:         3,
		Streak:        2,
		GeneratedAt:   time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"), "output is not a PDF")
}

func TestBuildWithoutPlotOrAnswer(t *testing.T) {
	out, err := Build(Report{
		ExerciseID: "B1",
		Topic:      "quadratic",
		Prompt:     "Solve the inequality:  x² - 5x + 6 ≥ 0",
		Inequality: "x^2 - 5x + 6 >= 0",
		Solution:   "(-∞, 2] U [3, ∞)",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestAsciiReplacesMathSymbols(t *testing.T) {
	assert.Equal(t, "(-inf, 2] U (5, inf)", ascii("(-∞, 2] ∪ (5, ∞)"))
	assert.Equal(t, "x^2 - 5x + 6 >= 0", ascii("x² - 5x + 6 ≥ 0"))
	assert.Equal(t, "empty set", ascii("∅"))
}
