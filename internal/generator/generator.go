// Package generator produces random inequality exercises from a
// topic-filtered template pool. The canonical solution of every exercise
// is derived from the same randomly chosen coefficients that appear in
// the prompt, never sampled independently.
package generator

import (
	"math/rand"
	"time"

	"github.com/example/ineqquest/internal/interval"
	"github.com/example/ineqquest/internal/solve"
)

// Topic tags an exercise template family.
type Topic string

const (
	TopicAny       Topic = "any"
	TopicLinear    Topic = "linear"
	TopicQuadratic Topic = "quadratic"
	TopicRational  Topic = "rational"
	TopicAbsolute  Topic = "absolute"
)

// Topics lists the concrete topics, in display order.
func Topics() []Topic {
	return []Topic{TopicLinear, TopicQuadratic, TopicRational, TopicAbsolute}
}

// ParseTopic maps a filter value to a Topic. Anything outside the enum
// falls back silently to TopicAny.
func ParseTopic(s string) Topic {
	switch Topic(s) {
	case TopicLinear, TopicQuadratic, TopicRational, TopicAbsolute, TopicAny:
		return Topic(s)
	}
	if s == "absolute-value" {
		return TopicAbsolute
	}
	return TopicAny
}

// Exercise is one generated problem together with its canonical
// solution.
type Exercise struct {
	ID         string
	Topic      Topic
	Prompt     string
	Hint       string
	Inequality solve.Inequality
	Solution   interval.Set
}

// template is one entry of the exercise bank: a builder that samples
// fresh coefficients for its inequality shape.
type template struct {
	id    string
	topic Topic
	hint  string
	build func(r *rand.Rand) solve.Inequality
}

// Generator samples exercises from the template bank.
type Generator struct {
	rnd       *rand.Rand
	templates []template
}

// New creates a generator seeded from the clock.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a generator with the given source, for
// reproducible sampling.
func NewWithRand(r *rand.Rand) *Generator {
	return &Generator{rnd: r, templates: bank()}
}

// Generate returns a fresh exercise for the topic. TopicAny (or any
// unknown value) draws from the whole bank.
func (g *Generator) Generate(topic Topic) Exercise {
	pool := g.templates
	if topic != TopicAny {
		filtered := make([]template, 0, len(pool))
		for _, t := range pool {
			if t.topic == topic {
				filtered = append(filtered, t)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}
	t := pool[g.rnd.Intn(len(pool))]
	ineq := t.build(g.rnd)
	return Exercise{
		ID:         t.id,
		Topic:      t.topic,
		Prompt:     "Solve the inequality:  " + ineq.Display(),
		Hint:       t.hint,
		Inequality: ineq,
		Solution:   ineq.Solve(),
	}
}

// bank returns the exercise templates. IDs follow the worksheet codes
// the activity has always used (A = linear, B = quadratic, C = rational,
// D = absolute value).
func bank() []template {
	return []template{
		{
			id:    "A1",
			topic: TopicLinear,
			hint:  "Move the constant terms across, then divide by the coefficient of x.",
			build: func(r *rand.Rand) solve.Inequality {
				return solve.Inequality{
					Form: solve.Linear,
					Rel:  randomRelation(r),
					A:    float64(2 + r.Intn(8)),
					B:    float64(r.Intn(19) - 9),
					C:    float64(r.Intn(19) - 9),
				}
			},
		},
		{
			id:    "A2",
			topic: TopicLinear,
			hint:  "Dividing both sides by a negative number flips the inequality.",
			build: func(r *rand.Rand) solve.Inequality {
				return solve.Inequality{
					Form: solve.Linear,
					Rel:  randomRelation(r),
					A:    -float64(1 + r.Intn(8)),
					B:    float64(r.Intn(19) - 9),
					C:    float64(r.Intn(19) - 9),
				}
			},
		},
		{
			id:    "B1",
			topic: TopicQuadratic,
			hint:  "Find the roots, then read the sign table outside them.",
			build: func(r *rand.Rand) solve.Inequality {
				p, q := distinctPair(r)
				return solve.Inequality{
					Form: solve.Quadratic,
					Rel:  pick(r, solve.Greater, solve.GreaterEq),
					B:    -float64(p + q),
					C:    float64(p * q),
				}
			},
		},
		{
			id:    "B2",
			topic: TopicQuadratic,
			hint:  "Factor into (x - r)(x - s); the product is negative between the roots.",
			build: func(r *rand.Rand) solve.Inequality {
				p, q := distinctPair(r)
				return solve.Inequality{
					Form: solve.Quadratic,
					Rel:  pick(r, solve.Less, solve.LessEq),
					B:    -float64(p + q),
					C:    float64(p * q),
				}
			},
		},
		{
			id:    "C1",
			topic: TopicRational,
			hint:  "Critical points: the root of the numerator and the excluded pole of the denominator.",
			build: func(r *rand.Rand) solve.Inequality {
				p, q := distinctPair(r)
				return solve.Inequality{
					Form: solve.Rational,
					Rel:  randomRelation(r),
					P:    float64(p),
					Q:    float64(q),
				}
			},
		},
		{
			id:    "D1",
			topic: TopicAbsolute,
			hint:  "|A| ≤ k  ⇔  -k ≤ A ≤ k  (for k ≥ 0).",
			build: func(r *rand.Rand) solve.Inequality {
				return solve.Inequality{
					Form: solve.Absolute,
					Rel:  pick(r, solve.Less, solve.LessEq),
					A:    float64(1 + r.Intn(5)),
					B:    float64(r.Intn(19) - 9),
					C:    float64(1 + r.Intn(9)),
				}
			},
		},
		{
			id:    "D2",
			topic: TopicAbsolute,
			hint:  "|A| > k  ⇔  A > k or A < -k  (for k ≥ 0).",
			build: func(r *rand.Rand) solve.Inequality {
				return solve.Inequality{
					Form: solve.Absolute,
					Rel:  pick(r, solve.Greater, solve.GreaterEq),
					A:    float64(1 + r.Intn(5)),
					B:    float64(r.Intn(19) - 9),
					C:    float64(1 + r.Intn(9)),
				}
			},
		},
	}
}

func randomRelation(r *rand.Rand) solve.Relation {
	return pick(r, solve.Less, solve.LessEq, solve.Greater, solve.GreaterEq)
}

func pick(r *rand.Rand, rels ...solve.Relation) solve.Relation {
	return rels[r.Intn(len(rels))]
}

// distinctPair returns two distinct integers in [-6, 6], smaller first.
func distinctPair(r *rand.Rand) (int, int) {
	p := r.Intn(13) - 6
	q := r.Intn(13) - 6
	for q == p {
		q = r.Intn(13) - 6
	}
	if q < p {
		p, q = q, p
	}
	return p, q
}
