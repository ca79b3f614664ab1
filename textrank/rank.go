package textrank

import (
	"cmp"
	"slices"
)

// Default ranking parameters.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-4
	DefaultMaxIterations = 100
	DefaultTopK          = 10
)

// Options configures ranking. Zero fields take their defaults.
type Options struct {
	// Damping is the probability of following an edge, in (0, 1).
	Damping float64

	// Tolerance is the largest per-node score change that counts as converged.
	Tolerance float64

	// MaxIterations bounds the propagation regardless of convergence.
	MaxIterations int

	// TopK is the number of units returned by Top when k <= 0.
	TopK int

	// Window is the co-occurrence window for word-level ranking.
	Window int
}

// DefaultOptions returns the default ranking options.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		TopK:          DefaultTopK,
		Window:        DefaultWindow,
	}
}

func (o Options) withDefaults() Options {
	if o.Damping <= 0 || o.Damping >= 1 {
		o.Damping = DefaultDamping
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	if o.Window < 2 {
		o.Window = DefaultWindow
	}
	return o
}

// Ranked is a unit with its salience score.
type Ranked struct {
	// Index is the position of the unit in the input.
	Index  int
	Tokens []string
	Score  float64
}

// Rank scores units over a sentence similarity graph and returns all of
// them ordered by score, highest first. Ties keep input order.
func Rank(units [][]string, opts Options) []Ranked {
	if len(units) == 0 {
		return []Ranked{}
	}

	scores := NewSentenceGraph(units).Scores(opts)
	ranked := make([]Ranked, len(units))
	for i, unit := range units {
		ranked[i] = Ranked{Index: i, Tokens: unit, Score: scores[i]}
	}

	slices.SortStableFunc(ranked, byScore)
	return ranked
}

// Top returns the k highest-ranked units. When k <= 0, opts.TopK is used.
// Fewer than k units are all returned.
func Top(units [][]string, k int, opts Options) []Ranked {
	if k <= 0 {
		k = opts.withDefaults().TopK
	}
	ranked := Rank(units, opts)
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

func byScore(a, b Ranked) int {
	return cmp.Compare(b.Score, a.Score)
}
