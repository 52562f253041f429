package interval

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var partPattern = regexp.MustCompile(`^([\(\[])([^,]+),([^\)\]]+)([\)\]])$`)

// Parse reads a solution set in student notation: a union of bracketed
// intervals such as "(-∞,2] U (5,∞)", or "∅" for the empty set, or "R"
// for all reals. Unicode and ASCII spellings of infinity and union are
// both accepted. Whitespace is ignored.
func Parse(input string) (Set, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Set{}, fmt.Errorf("empty answer")
	}

	replacer := strings.NewReplacer(
		"∪", "U", "u", "U",
		"∞", "inf", "oo", "inf",
		" ", "", "\t", "",
	)
	s = replacer.Replace(s)

	switch s {
	case "∅", "{}", "EmptySet":
		return Empty(), nil
	case "R", "Reals", "ℝ", "(-inf,inf)":
		return Reals(), nil
	}

	parts := strings.Split(s, "U")
	intervals := make([]Interval, 0, len(parts))
	for _, part := range parts {
		iv, err := parseInterval(part)
		if err != nil {
			return Set{}, err
		}
		intervals = append(intervals, iv)
	}
	return NewSet(intervals...), nil
}

func parseInterval(part string) (Interval, error) {
	m := partPattern.FindStringSubmatch(part)
	if m == nil {
		return Interval{}, fmt.Errorf("malformed interval %q", part)
	}
	var iv Interval

	lo := m[2]
	if lo == "-inf" {
		iv.LowerUnbounded = true
	} else {
		v, err := parseBound(lo)
		if err != nil {
			return Interval{}, fmt.Errorf("bad lower bound %q", lo)
		}
		iv.Lower = v
		iv.LowerClosed = m[1] == "["
	}

	hi := m[3]
	if hi == "inf" || hi == "+inf" {
		iv.UpperUnbounded = true
	} else {
		v, err := parseBound(hi)
		if err != nil {
			return Interval{}, fmt.Errorf("bad upper bound %q", hi)
		}
		iv.Upper = v
		iv.UpperClosed = m[4] == "]"
	}

	if !iv.LowerUnbounded && !iv.UpperUnbounded && iv.IsEmpty() {
		return Interval{}, fmt.Errorf("interval %q is empty", part)
	}
	return iv, nil
}

// parseBound accepts plain numbers and simple fractions such as "3/2".
func parseBound(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, fmt.Errorf("division by zero in %q", s)
		}
		return n / d, nil
	}
	return strconv.ParseFloat(s, 64)
}
