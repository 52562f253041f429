package plot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ineqquest/internal/interval"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestNumberLineProducesPNG(t *testing.T) {
	sets := []interval.Set{
		interval.NewSet(interval.Below(2, true), interval.Above(5, false)),
		interval.NewSet(interval.Between(-2, 8, true, true)),
		interval.NewSet(interval.Point(1)),
		interval.Empty(),
		interval.Reals(),
	}
	for _, set := range sets {
		png, err := NumberLine(set, "Solution: "+set.String())
		require.NoError(t, err, "set %s", set)
		assert.True(t, bytes.HasPrefix(png, pngMagic), "not a PNG for set %s", set)
	}
}

func TestWindowWidensForFarEndpoints(t *testing.T) {
	xmin, xmax := window(interval.NewSet(interval.Between(-30, 45, false, false)))
	assert.LessOrEqual(t, xmin, -32.0)
	assert.GreaterOrEqual(t, xmax, 47.0)

	// The default window stays put for sets inside it.
	xmin, xmax = window(interval.NewSet(interval.Between(-1, 1, true, true)))
	assert.Equal(t, -10.0, xmin)
	assert.Equal(t, 10.0, xmax)
}
