package solve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	absPattern      = regexp.MustCompile(`^(?:\|(.+)\||abs\((.+)\))$`)
	rationalPattern = regexp.MustCompile(`^\((.+)\)/\((.+)\)$`)
	termPattern     = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)?(x(?:\^2)?)?`)
)

// Parse reads one inequality from free text. Accepted shapes mirror the
// exercise bank: "2x - 3 <= 5", "x^2 - 5x + 6 >= 0", "(x-1)/(x+2) >= 0",
// "|2x+1| > 3". "**" is accepted for "^", "abs(...)" for "|...|", and
// the unicode comparison operators for their ASCII forms.
func Parse(line string) (Inequality, error) {
	s := normalize(line)

	rel, lhs, rhs, err := splitRelation(s)
	if err != nil {
		return Inequality{}, err
	}

	if m := absPattern.FindStringSubmatch(lhs); m != nil {
		inner := m[1]
		if inner == "" {
			inner = m[2]
		}
		a, b, err := parseLinearExpr(inner)
		if err != nil {
			return Inequality{}, fmt.Errorf("bad absolute value argument: %w", err)
		}
		c, err := parseConstant(rhs)
		if err != nil {
			return Inequality{}, fmt.Errorf("right side of an absolute value inequality must be a number: %w", err)
		}
		return Inequality{Form: Absolute, Rel: rel, A: a, B: b, C: c}, nil
	}

	if m := rationalPattern.FindStringSubmatch(lhs); m != nil {
		an, bn, err := parseLinearExpr(m[1])
		if err != nil {
			return Inequality{}, fmt.Errorf("bad numerator: %w", err)
		}
		ad, bd, err := parseLinearExpr(m[2])
		if err != nil {
			return Inequality{}, fmt.Errorf("bad denominator: %w", err)
		}
		if an != 1 || ad != 1 {
			return Inequality{}, fmt.Errorf("rational inequalities must use monic factors like (x-1)/(x+2)")
		}
		if c, err := parseConstant(rhs); err != nil || c != 0 {
			return Inequality{}, fmt.Errorf("rational inequalities must compare against 0")
		}
		return Inequality{Form: Rational, Rel: rel, P: -bn, Q: -bd}, nil
	}

	if strings.Contains(lhs, "x^2") || strings.Contains(rhs, "x^2") {
		a2, b, c, err := parseQuadraticExpr(lhs)
		if err != nil {
			return Inequality{}, err
		}
		if a2 != 1 {
			return Inequality{}, fmt.Errorf("only monic quadratics (leading coefficient 1) are supported")
		}
		rc, err := parseConstant(rhs)
		if err != nil {
			return Inequality{}, fmt.Errorf("right side of a quadratic inequality must be a number: %w", err)
		}
		return Inequality{Form: Quadratic, Rel: rel, B: b, C: c - rc}, nil
	}

	la, lb, err := parseLinearExpr(lhs)
	if err != nil {
		return Inequality{}, err
	}
	ra, rb, err := parseLinearExpr(rhs)
	if err != nil {
		return Inequality{}, err
	}
	// Fold the right side's x term to the left.
	return Inequality{Form: Linear, Rel: rel, A: la - ra, B: lb, C: rb}, nil
}

func normalize(line string) string {
	r := strings.NewReplacer(
		"**", "^",
		"≤", "<=", "≥", ">=",
		"Abs(", "abs(", "ABS(", "abs(",
		" ", "", "\t", "",
		"·", "", "*", "",
	)
	return r.Replace(strings.TrimSpace(line))
}

func splitRelation(s string) (Relation, string, string, error) {
	for _, rel := range []Relation{LessEq, GreaterEq, Less, Greater} {
		if lhs, rhs, ok := strings.Cut(s, string(rel)); ok {
			if lhs == "" || rhs == "" {
				return "", "", "", fmt.Errorf("inequality %q has an empty side", s)
			}
			return rel, lhs, rhs, nil
		}
	}
	return "", "", "", fmt.Errorf("no comparison operator (<, <=, >, >=) found")
}

// parseLinearExpr reads "a·x + b" from forms like "2x-3", "-x+6", "x",
// "7".
func parseLinearExpr(s string) (a, b float64, err error) {
	a2, a1, a0, err := parsePolyExpr(s)
	if err != nil {
		return 0, 0, err
	}
	if a2 != 0 {
		return 0, 0, fmt.Errorf("unexpected x^2 term in %q", s)
	}
	return a1, a0, nil
}

// parseQuadraticExpr reads "a·x² + b·x + c".
func parseQuadraticExpr(s string) (a2, b, c float64, err error) {
	return parsePolyExpr(s)
}

func parseConstant(s string) (float64, error) {
	a2, a1, a0, err := parsePolyExpr(s)
	if err != nil {
		return 0, err
	}
	if a2 != 0 || a1 != 0 {
		return 0, fmt.Errorf("%q is not a constant", s)
	}
	return a0, nil
}

// parsePolyExpr accumulates terms of a polynomial of degree at most two.
func parsePolyExpr(s string) (a2, a1, a0 float64, err error) {
	if s == "" {
		return 0, 0, 0, fmt.Errorf("empty expression")
	}
	rest := s
	for rest != "" {
		m := termPattern.FindStringSubmatch(rest)
		if m == nil || m[0] == "" || (m[2] == "" && m[3] == "") {
			return 0, 0, 0, fmt.Errorf("cannot parse expression %q near %q", s, rest)
		}
		coeff := 1.0
		if m[2] != "" {
			coeff, err = strconv.ParseFloat(m[2], 64)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("bad number in %q: %w", s, err)
			}
		}
		if m[1] == "-" {
			coeff = -coeff
		}
		switch m[3] {
		case "x^2":
			a2 += coeff
		case "x":
			a1 += coeff
		default:
			if m[2] == "" {
				return 0, 0, 0, fmt.Errorf("cannot parse expression %q near %q", s, rest)
			}
			a0 += coeff
		}
		rest = rest[len(m[0]):]
	}
	return a2, a1, a0, nil
}
