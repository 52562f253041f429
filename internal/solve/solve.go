// Package solve represents single-variable inequalities in the four
// shapes the activity uses (linear, quadratic, rational, absolute value)
// and produces exact interval-set solutions for them.
package solve

import (
	"fmt"
	"math"
	"strings"

	"github.com/example/ineqquest/internal/interval"
)

// Relation is a comparison operator.
type Relation string

const (
	Less      Relation = "<"
	LessEq    Relation = "<="
	Greater   Relation = ">"
	GreaterEq Relation = ">="
)

// Holds reports whether "lhs rel rhs" is true.
func (r Relation) Holds(lhs, rhs float64) bool {
	switch r {
	case Less:
		return lhs < rhs
	case LessEq:
		return lhs <= rhs
	case Greater:
		return lhs > rhs
	case GreaterEq:
		return lhs >= rhs
	}
	return false
}

// Closed reports whether the relation includes equality.
func (r Relation) Closed() bool {
	return r == LessEq || r == GreaterEq
}

// IsLess reports whether the relation points downward.
func (r Relation) IsLess() bool {
	return r == Less || r == LessEq
}

// Flip reverses the direction, as when dividing by a negative number.
func (r Relation) Flip() Relation {
	switch r {
	case Less:
		return Greater
	case LessEq:
		return GreaterEq
	case Greater:
		return Less
	case GreaterEq:
		return LessEq
	}
	return r
}

// Display renders the relation with the unicode operators used in
// prompts.
func (r Relation) Display() string {
	switch r {
	case LessEq:
		return "≤"
	case GreaterEq:
		return "≥"
	}
	return string(r)
}

// Form identifies the shape of an inequality's left-hand side.
type Form int

const (
	// Linear is a·x + b rel c.
	Linear Form = iota
	// Quadratic is x² + b·x + c rel 0.
	Quadratic
	// Rational is (x − p)/(x − q) rel 0.
	Rational
	// Absolute is |a·x + b| rel c.
	Absolute
)

// Inequality is one inequality in a supported form. The coefficient
// fields used depend on Form: A, B, C for linear and absolute value,
// B and C for quadratic, P and Q for rational.
type Inequality struct {
	Form Form
	Rel  Relation

	A, B, C float64
	P, Q    float64
}

// EvalAt reports whether x satisfies the inequality. The pole of a
// rational form never satisfies it.
func (in Inequality) EvalAt(x float64) bool {
	switch in.Form {
	case Linear:
		return in.Rel.Holds(in.A*x+in.B, in.C)
	case Quadratic:
		return in.Rel.Holds(x*x+in.B*x+in.C, 0)
	case Rational:
		if math.Abs(x-in.Q) <= interval.Tolerance {
			return false
		}
		return in.Rel.Holds((x-in.P)/(x-in.Q), 0)
	case Absolute:
		return in.Rel.Holds(math.Abs(in.A*x+in.B), in.C)
	}
	return false
}

// Solve returns the canonical solution set. The set is derived from the
// same coefficients the inequality displays, so it is exact for every
// supported form, including the degenerate ones the parser can produce.
func (in Inequality) Solve() interval.Set {
	switch in.Form {
	case Linear:
		return in.solveLinear()
	case Quadratic:
		return in.solveQuadratic()
	case Rational:
		return in.solveRational()
	case Absolute:
		return in.solveAbsolute()
	}
	return interval.Empty()
}

func (in Inequality) solveLinear() interval.Set {
	if in.A == 0 {
		if in.Rel.Holds(in.B, in.C) {
			return interval.Reals()
		}
		return interval.Empty()
	}
	bound := (in.C - in.B) / in.A
	rel := in.Rel
	if in.A < 0 {
		rel = rel.Flip()
	}
	if rel.IsLess() {
		return interval.NewSet(interval.Below(bound, rel.Closed()))
	}
	return interval.NewSet(interval.Above(bound, rel.Closed()))
}

func (in Inequality) solveQuadratic() interval.Set {
	disc := in.B*in.B - 4*in.C
	if disc < 0 {
		// Always positive.
		if in.Rel.IsLess() {
			return interval.Empty()
		}
		return interval.Reals()
	}
	if disc == 0 {
		m := -in.B / 2
		switch in.Rel {
		case Greater:
			return punctured(m)
		case GreaterEq:
			return interval.Reals()
		case Less:
			return interval.Empty()
		case LessEq:
			return interval.NewSet(interval.Point(m))
		}
	}
	root := math.Sqrt(disc)
	r := (-in.B - root) / 2
	s := (-in.B + root) / 2
	// Positive outside (r, s), negative inside.
	if in.Rel.IsLess() {
		return interval.NewSet(interval.Between(r, s, in.Rel.Closed(), in.Rel.Closed()))
	}
	return interval.NewSet(
		interval.Below(r, in.Rel.Closed()),
		interval.Above(s, in.Rel.Closed()),
	)
}

func (in Inequality) solveRational() interval.Set {
	if in.P == in.Q {
		// (x−p)/(x−p) is 1 away from the pole.
		if in.Rel.Holds(1, 0) {
			return punctured(in.Q)
		}
		return interval.Empty()
	}
	lo := math.Min(in.P, in.Q)
	hi := math.Max(in.P, in.Q)
	// The root P is included only for a closed relation; the pole Q never.
	closedAt := func(v float64) bool {
		return v == in.P && in.Rel.Closed()
	}
	// Positive outside [lo, hi], negative between.
	if in.Rel.IsLess() {
		return interval.NewSet(interval.Between(lo, hi, closedAt(lo), closedAt(hi)))
	}
	return interval.NewSet(
		interval.Below(lo, closedAt(lo)),
		interval.Above(hi, closedAt(hi)),
	)
}

func (in Inequality) solveAbsolute() interval.Set {
	if in.A == 0 {
		if in.Rel.Holds(math.Abs(in.B), in.C) {
			return interval.Reals()
		}
		return interval.Empty()
	}
	if in.C < 0 {
		if in.Rel.IsLess() {
			return interval.Empty()
		}
		return interval.Reals()
	}
	if in.C == 0 {
		zero := -in.B / in.A
		switch in.Rel {
		case Less:
			return interval.Empty()
		case LessEq:
			return interval.NewSet(interval.Point(zero))
		case Greater:
			return punctured(zero)
		case GreaterEq:
			return interval.Reals()
		}
	}
	x1 := (-in.C - in.B) / in.A
	x2 := (in.C - in.B) / in.A
	lo := math.Min(x1, x2)
	hi := math.Max(x1, x2)
	if in.Rel.IsLess() {
		return interval.NewSet(interval.Between(lo, hi, in.Rel.Closed(), in.Rel.Closed()))
	}
	return interval.NewSet(
		interval.Below(lo, in.Rel.Closed()),
		interval.Above(hi, in.Rel.Closed()),
	)
}

// punctured is the real line with a single point removed.
func punctured(x float64) interval.Set {
	return interval.NewSet(interval.Below(x, false), interval.Above(x, false))
}

// String renders the inequality in machine-readable ASCII, the same
// notation Parse accepts.
func (in Inequality) String() string {
	switch in.Form {
	case Linear:
		return fmt.Sprintf("%s %s %s", linearText(in.A, in.B), in.Rel, interval.FormatNumber(in.C))
	case Quadratic:
		return fmt.Sprintf("x^2%s %s 0", tailText(in.B, in.C), in.Rel)
	case Rational:
		return fmt.Sprintf("(%s)/(%s) %s 0", linearText(1, -in.P), linearText(1, -in.Q), in.Rel)
	case Absolute:
		return fmt.Sprintf("|%s| %s %s", linearText(in.A, in.B), in.Rel, interval.FormatNumber(in.C))
	}
	return ""
}

// Display renders the inequality for prompts: unicode comparison
// operators and a superscript square.
func (in Inequality) Display() string {
	s := in.String()
	s = strings.Replace(s, string(in.Rel), in.Rel.Display(), 1)
	s = strings.ReplaceAll(s, "x^2", "x²")
	return s
}

// linearText renders "a·x + b" as e.g. "2x - 3", "x", "-x + 6".
func linearText(a, b float64) string {
	var sb strings.Builder
	switch a {
	case 1:
		sb.WriteString("x")
	case -1:
		sb.WriteString("-x")
	case 0:
		return interval.FormatNumber(b)
	default:
		sb.WriteString(interval.FormatNumber(a))
		sb.WriteString("x")
	}
	sb.WriteString(tailText(0, b))
	return sb.String()
}

// tailText renders the "+ bx + c" portion after a leading term.
func tailText(b, c float64) string {
	var sb strings.Builder
	if b != 0 {
		if b > 0 {
			sb.WriteString(" + ")
		} else {
			sb.WriteString(" - ")
		}
		if math.Abs(b) == 1 {
			sb.WriteString("x")
		} else {
			sb.WriteString(interval.FormatNumber(math.Abs(b)))
			sb.WriteString("x")
		}
	}
	if c != 0 {
		if c > 0 {
			sb.WriteString(" + ")
		} else {
			sb.WriteString(" - ")
		}
		sb.WriteString(interval.FormatNumber(math.Abs(c)))
	}
	return sb.String()
}
