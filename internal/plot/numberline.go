// Package plot renders a solution set on a number line as a PNG image.
package plot

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/example/ineqquest/internal/interval"
)

const (
	defaultMin = -10
	defaultMax = 10
	padding    = 2
)

var (
	axisColor    = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	segmentColor = color.NRGBA{R: 67, G: 56, B: 202, A: 170}
	markerColor  = color.NRGBA{R: 67, G: 56, B: 202, A: 255}
)

// NumberLine draws the set on a horizontal axis: a thick shaded segment
// per interval, a filled disc for each closed finite endpoint and a ring
// for each open one. The window defaults to [-10, 10] and widens to keep
// every finite endpoint visible. The result is PNG-encoded.
func NumberLine(set interval.Set, title string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = vg.Points(6)
	p.Y.Min, p.Y.Max = -1, 1
	p.Y.Tick.Marker = plot.ConstantTicks(nil)
	p.Y.Label.Text = ""

	xmin, xmax := window(set)
	p.X.Min, p.X.Max = xmin, xmax

	axis, err := horizontalLine(xmin, xmax, vg.Points(1.5), axisColor)
	if err != nil {
		return nil, err
	}
	p.Add(axis)

	var open, closed plotter.XYs
	for _, iv := range set.Intervals {
		lo, hi := xmin, xmax
		if !iv.LowerUnbounded {
			lo = clamp(iv.Lower, xmin, xmax)
		}
		if !iv.UpperUnbounded {
			hi = clamp(iv.Upper, xmin, xmax)
		}
		seg, err := horizontalLine(lo, hi, vg.Points(6), segmentColor)
		if err != nil {
			return nil, err
		}
		p.Add(seg)

		if !iv.LowerUnbounded {
			if iv.LowerClosed {
				closed = append(closed, plotter.XY{X: iv.Lower})
			} else {
				open = append(open, plotter.XY{X: iv.Lower})
			}
		}
		if !iv.UpperUnbounded {
			if iv.UpperClosed {
				closed = append(closed, plotter.XY{X: iv.Upper})
			} else {
				open = append(open, plotter.XY{X: iv.Upper})
			}
		}
	}

	if len(closed) > 0 {
		s, err := endpointMarkers(closed, draw.CircleGlyph{})
		if err != nil {
			return nil, err
		}
		p.Add(s)
	}
	if len(open) > 0 {
		s, err := endpointMarkers(open, draw.RingGlyph{})
		if err != nil {
			return nil, err
		}
		p.Add(s)
	}

	wt, err := p.WriterTo(vg.Points(560), vg.Points(130), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render number line: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode number line: %w", err)
	}
	return buf.Bytes(), nil
}

func horizontalLine(from, to float64, width vg.Length, c color.Color) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: from, Y: 0}, {X: to, Y: 0}})
	if err != nil {
		return nil, fmt.Errorf("failed to build line: %w", err)
	}
	l.LineStyle.Width = width
	l.LineStyle.Color = c
	return l, nil
}

func endpointMarkers(pts plotter.XYs, shape draw.GlyphDrawer) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build endpoint markers: %w", err)
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  markerColor,
		Radius: vg.Points(4.5),
		Shape:  shape,
	}
	return s, nil
}

// window returns the plot range: [-10, 10] widened so that every finite
// endpoint fits with some margin.
func window(set interval.Set) (float64, float64) {
	xmin, xmax := float64(defaultMin), float64(defaultMax)
	for _, iv := range set.Intervals {
		if !iv.LowerUnbounded {
			xmin = math.Min(xmin, math.Floor(iv.Lower)-padding)
			xmax = math.Max(xmax, math.Ceil(iv.Lower)+padding)
		}
		if !iv.UpperUnbounded {
			xmin = math.Min(xmin, math.Floor(iv.Upper)-padding)
			xmax = math.Max(xmax, math.Ceil(iv.Upper)+padding)
		}
	}
	return xmin, xmax
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
