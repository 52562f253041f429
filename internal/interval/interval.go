package interval

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Tolerance is the allowed numeric difference when comparing finite bounds.
const Tolerance = 1e-9

// Interval is a contiguous range of real numbers. Either end may be
// unbounded; finite ends carry an open/closed flag.
type Interval struct {
	Lower          float64
	Upper          float64
	LowerUnbounded bool
	UpperUnbounded bool
	LowerClosed    bool
	UpperClosed    bool
}

// Unbounded returns the interval covering all real numbers.
func Unbounded() Interval {
	return Interval{LowerUnbounded: true, UpperUnbounded: true}
}

// Below returns the interval (-inf, upper) or (-inf, upper].
func Below(upper float64, closed bool) Interval {
	return Interval{LowerUnbounded: true, Upper: upper, UpperClosed: closed}
}

// Above returns the interval (lower, +inf) or [lower, +inf).
func Above(lower float64, closed bool) Interval {
	return Interval{Lower: lower, LowerClosed: closed, UpperUnbounded: true}
}

// Between returns a bounded interval with the given endpoint flags.
func Between(lower, upper float64, lowerClosed, upperClosed bool) Interval {
	return Interval{
		Lower:       lower,
		Upper:       upper,
		LowerClosed: lowerClosed,
		UpperClosed: upperClosed,
	}
}

// Point returns the degenerate interval [x, x].
func Point(x float64) Interval {
	return Between(x, x, true, true)
}

// IsEmpty reports whether the interval contains no points.
func (iv Interval) IsEmpty() bool {
	if iv.LowerUnbounded || iv.UpperUnbounded {
		return false
	}
	if iv.Lower > iv.Upper+Tolerance {
		return true
	}
	if math.Abs(iv.Lower-iv.Upper) <= Tolerance {
		return !(iv.LowerClosed && iv.UpperClosed)
	}
	return false
}

// Contains reports whether x lies inside the interval.
func (iv Interval) Contains(x float64) bool {
	if !iv.LowerUnbounded {
		if x < iv.Lower-Tolerance {
			return false
		}
		if math.Abs(x-iv.Lower) <= Tolerance && !iv.LowerClosed {
			return false
		}
	}
	if !iv.UpperUnbounded {
		if x > iv.Upper+Tolerance {
			return false
		}
		if math.Abs(x-iv.Upper) <= Tolerance && !iv.UpperClosed {
			return false
		}
	}
	return true
}

// Equal reports structural equality: finite bounds within Tolerance,
// exact match on boundedness and open/closed flags.
func (iv Interval) Equal(other Interval) bool {
	if iv.LowerUnbounded != other.LowerUnbounded || iv.UpperUnbounded != other.UpperUnbounded {
		return false
	}
	if !iv.LowerUnbounded {
		if math.Abs(iv.Lower-other.Lower) > Tolerance || iv.LowerClosed != other.LowerClosed {
			return false
		}
	}
	if !iv.UpperUnbounded {
		if math.Abs(iv.Upper-other.Upper) > Tolerance || iv.UpperClosed != other.UpperClosed {
			return false
		}
	}
	return true
}

// String renders the interval in bracket notation, e.g. "(-∞, 2]".
func (iv Interval) String() string {
	lb := "("
	if iv.LowerClosed && !iv.LowerUnbounded {
		lb = "["
	}
	rb := ")"
	if iv.UpperClosed && !iv.UpperUnbounded {
		rb = "]"
	}
	lo := "-∞"
	if !iv.LowerUnbounded {
		lo = FormatNumber(iv.Lower)
	}
	hi := "∞"
	if !iv.UpperUnbounded {
		hi = FormatNumber(iv.Upper)
	}
	return fmt.Sprintf("%s%s, %s%s", lb, lo, hi, rb)
}

// Describe returns a one-line open/closed summary of the interval for
// report output, e.g. "(4, ∞) (lower: open, upper: unbounded)".
func (iv Interval) Describe() string {
	side := func(unbounded, closed bool) string {
		if unbounded {
			return "unbounded"
		}
		if closed {
			return "closed"
		}
		return "open"
	}
	return fmt.Sprintf("%s (lower: %s, upper: %s)",
		iv.String(),
		side(iv.LowerUnbounded, iv.LowerClosed),
		side(iv.UpperUnbounded, iv.UpperClosed),
	)
}

// Set is an ordered collection of non-overlapping intervals sorted
// ascending. Construct through NewSet so the invariant holds.
type Set struct {
	Intervals []Interval
}

// NewSet builds a normalized set: empty intervals dropped, the rest
// sorted and merged where they overlap or touch with a closed endpoint.
func NewSet(intervals ...Interval) Set {
	kept := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.LowerUnbounded {
			iv.LowerClosed = false
		}
		if iv.UpperUnbounded {
			iv.UpperClosed = false
		}
		if !iv.IsEmpty() {
			kept = append(kept, iv)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.LowerUnbounded != b.LowerUnbounded {
			return a.LowerUnbounded
		}
		if a.LowerUnbounded {
			return upperKey(a) < upperKey(b)
		}
		if math.Abs(a.Lower-b.Lower) > Tolerance {
			return a.Lower < b.Lower
		}
		return a.LowerClosed && !b.LowerClosed
	})

	merged := make([]Interval, 0, len(kept))
	for _, iv := range kept {
		if len(merged) == 0 {
			merged = append(merged, iv)
			continue
		}
		last := &merged[len(merged)-1]
		if touches(*last, iv) {
			*last = join(*last, iv)
		} else {
			merged = append(merged, iv)
		}
	}
	return Set{Intervals: merged}
}

// Empty returns the empty solution set.
func Empty() Set {
	return Set{}
}

// Reals returns the set of all real numbers.
func Reals() Set {
	return NewSet(Unbounded())
}

// IsEmpty reports whether the set contains no intervals.
func (s Set) IsEmpty() bool {
	return len(s.Intervals) == 0
}

// IsReals reports whether the set is the whole real line.
func (s Set) IsReals() bool {
	return len(s.Intervals) == 1 &&
		s.Intervals[0].LowerUnbounded && s.Intervals[0].UpperUnbounded
}

// Contains reports whether x lies in any interval of the set.
func (s Set) Contains(x float64) bool {
	for _, iv := range s.Intervals {
		if iv.Contains(x) {
			return true
		}
	}
	return false
}

// Equal reports structural equality of two normalized sets.
func (s Set) Equal(other Set) bool {
	if len(s.Intervals) != len(other.Intervals) {
		return false
	}
	for i := range s.Intervals {
		if !s.Intervals[i].Equal(other.Intervals[i]) {
			return false
		}
	}
	return true
}

// String renders the set in student notation: "∅", "R" or a union such
// as "(-∞, 2] U (5, ∞)".
func (s Set) String() string {
	if s.IsEmpty() {
		return "∅"
	}
	if s.IsReals() {
		return "R"
	}
	parts := make([]string, len(s.Intervals))
	for i, iv := range s.Intervals {
		parts[i] = iv.String()
	}
	return strings.Join(parts, " U ")
}

// Describe returns one explanation line per interval.
func (s Set) Describe() []string {
	if s.IsEmpty() {
		return nil
	}
	lines := make([]string, len(s.Intervals))
	for i, iv := range s.Intervals {
		lines[i] = iv.Describe()
	}
	return lines
}

// Intersect returns the normalized intersection of two sets.
func Intersect(a, b Set) Set {
	var out []Interval
	for _, x := range a.Intervals {
		for _, y := range b.Intervals {
			iv, ok := intersectIntervals(x, y)
			if ok {
				out = append(out, iv)
			}
		}
	}
	return NewSet(out...)
}

// FormatNumber renders a bound compactly: integers without a decimal
// point, everything else via %g.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func upperKey(iv Interval) float64 {
	if iv.UpperUnbounded {
		return math.Inf(1)
	}
	return iv.Upper
}

func lowerKey(iv Interval) float64 {
	if iv.LowerUnbounded {
		return math.Inf(-1)
	}
	return iv.Lower
}

// touches reports whether b overlaps a or abuts it at a shared endpoint
// where at least one side is closed. Assumes a sorts before b.
func touches(a, b Interval) bool {
	au, bl := upperKey(a), lowerKey(b)
	if bl < au-Tolerance {
		return true
	}
	if math.Abs(bl-au) <= Tolerance {
		return a.UpperClosed || b.LowerClosed || a.UpperUnbounded || b.LowerUnbounded
	}
	return false
}

func join(a, b Interval) Interval {
	out := a
	bu, au := upperKey(b), upperKey(a)
	if b.UpperUnbounded {
		out.UpperUnbounded = true
		out.UpperClosed = false
	} else if !a.UpperUnbounded {
		if bu > au+Tolerance {
			out.Upper = b.Upper
			out.UpperClosed = b.UpperClosed
		} else if math.Abs(bu-au) <= Tolerance {
			out.UpperClosed = a.UpperClosed || b.UpperClosed
		}
	}
	return out
}

func intersectIntervals(a, b Interval) (Interval, bool) {
	var out Interval

	switch {
	case a.LowerUnbounded && b.LowerUnbounded:
		out.LowerUnbounded = true
	case a.LowerUnbounded:
		out.Lower, out.LowerClosed = b.Lower, b.LowerClosed
	case b.LowerUnbounded:
		out.Lower, out.LowerClosed = a.Lower, a.LowerClosed
	default:
		if math.Abs(a.Lower-b.Lower) <= Tolerance {
			out.Lower = a.Lower
			out.LowerClosed = a.LowerClosed && b.LowerClosed
		} else if a.Lower > b.Lower {
			out.Lower, out.LowerClosed = a.Lower, a.LowerClosed
		} else {
			out.Lower, out.LowerClosed = b.Lower, b.LowerClosed
		}
	}

	switch {
	case a.UpperUnbounded && b.UpperUnbounded:
		out.UpperUnbounded = true
	case a.UpperUnbounded:
		out.Upper, out.UpperClosed = b.Upper, b.UpperClosed
	case b.UpperUnbounded:
		out.Upper, out.UpperClosed = a.Upper, a.UpperClosed
	default:
		if math.Abs(a.Upper-b.Upper) <= Tolerance {
			out.Upper = a.Upper
			out.UpperClosed = a.UpperClosed && b.UpperClosed
		} else if a.Upper < b.Upper {
			out.Upper, out.UpperClosed = a.Upper, a.UpperClosed
		} else {
			out.Upper, out.UpperClosed = b.Upper, b.UpperClosed
		}
	}

	if out.IsEmpty() {
		return Interval{}, false
	}
	return out, true
}
