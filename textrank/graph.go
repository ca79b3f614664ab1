// Package textrank implements graph-based salience ranking of text units.
//
// Units (sentences, or words for word-level ranking) become nodes of an
// undirected weighted graph. Scores are propagated over the graph until they
// converge, in the manner of link-analysis ranking. Graphs are built per
// call and never shared.
package textrank

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// DefaultWindow is the co-occurrence window used by NewWordGraph.
const DefaultWindow = 3

// edge is a neighbor index and weight pair. Adjacency lists are kept sorted
// by neighbor index so that score propagation is deterministic.
type edge struct {
	to     int
	weight float64
}

// Graph is an undirected weighted graph without self loops.
type Graph struct {
	edges [][]edge
}

func newGraph(n int) *Graph {
	return &Graph{edges: make([][]edge, n)}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.edges)
}

// Weight returns the weight of the edge between i and j, or 0 if there is none.
func (g *Graph) Weight(i, j int) float64 {
	for _, e := range g.edges[i] {
		if e.to == j {
			return e.weight
		}
	}
	return 0
}

// Degree returns the number of neighbors of node i.
func (g *Graph) Degree(i int) int {
	return len(g.edges[i])
}

// NewSentenceGraph builds a similarity graph over units. The weight between
// two units is the number of distinct tokens they share divided by the sum
// of the logarithms of their distinct token counts. Pairs sharing nothing
// are not connected.
func NewSentenceGraph(units [][]string) *Graph {
	sets := make([][]string, len(units))
	for i, unit := range units {
		sets[i] = tokenSet(unit)
	}

	g := newGraph(len(units))
	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			w := similarity(sets[i], sets[j])
			if w <= 0 {
				continue
			}
			// Appending in (i, j) order keeps every adjacency list sorted.
			g.edges[i] = append(g.edges[i], edge{to: j, weight: w})
			g.edges[j] = append(g.edges[j], edge{to: i, weight: w})
		}
	}
	return g
}

// NewWordGraph builds a co-occurrence graph over words. Nodes are the
// distinct words in order of first appearance, returned as labels. Each
// co-occurrence of two different words within window adds 1 to their edge.
func NewWordGraph(words []string, window int) (*Graph, []string) {
	if window < 2 {
		window = DefaultWindow
	}

	index := make(map[string]int)
	var labels []string
	for _, w := range words {
		if _, ok := index[w]; !ok {
			index[w] = len(labels)
			labels = append(labels, w)
		}
	}

	weights := make([]map[int]float64, len(labels))
	for i := range weights {
		weights[i] = make(map[int]float64)
	}
	for i, w := range words {
		wi := index[w]
		end := min(i+window, len(words))
		for j := i + 1; j < end; j++ {
			wj := index[words[j]]
			if wi == wj {
				continue
			}
			weights[wi][wj]++
			weights[wj][wi]++
		}
	}

	g := newGraph(len(labels))
	for i, m := range weights {
		g.edges[i] = make([]edge, 0, len(m))
		for to, w := range m {
			g.edges[i] = append(g.edges[i], edge{to: to, weight: w})
		}
		slices.SortFunc(g.edges[i], func(a, b edge) int {
			return a.to - b.to
		})
	}
	return g, labels
}

// Scores computes the salience score of every node. Each node starts at
// 1-d and is updated as (1-d) + d * Σ w(i,j) * s(j) / W(j), where W(j) is
// the total edge weight of j, until no score moves by Tolerance or more or
// MaxIterations is reached. Isolated nodes keep their initial score.
func (g *Graph) Scores(opts Options) []float64 {
	opts = opts.withDefaults()
	n := g.Len()
	if n == 0 {
		return []float64{}
	}

	d := opts.Damping
	total := make([]float64, n)
	for i, neighbors := range g.edges {
		for _, e := range neighbors {
			total[i] += e.weight
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 - d
	}

	for range opts.MaxIterations {
		next := make([]float64, n)
		maxDelta := 0.0

		for i := range n {
			sum := 0.0
			for _, e := range g.edges[i] {
				sum += e.weight * scores[e.to] / total[e.to]
			}
			next[i] = (1 - d) + d*sum
			maxDelta = max(maxDelta, math.Abs(next[i]-scores[i]))
		}

		scores = next
		if maxDelta < opts.Tolerance {
			break
		}
	}

	return scores
}

// tokenSet returns the distinct normalized tokens of unit, sorted.
func tokenSet(unit []string) []string {
	set := make([]string, 0, len(unit))
	for _, tok := range unit {
		if t := normalizeToken(tok); t != "" {
			set = append(set, t)
		}
	}
	slices.Sort(set)
	return slices.Compact(set)
}

// similarity returns the normalized overlap of two sorted token sets.
func similarity(a, b []string) float64 {
	common := 0
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch c := strings.Compare(a[i], b[j]); {
		case c == 0:
			common++
			i++
			j++
		case c < 0:
			i++
		default:
			j++
		}
	}
	if common == 0 {
		return 0
	}

	norm := math.Log(float64(len(a))) + math.Log(float64(len(b)))
	if norm <= 0 {
		return float64(common)
	}
	return float64(common) / norm
}

// trimToken strips leading and trailing punctuation.
func trimToken(tok string) string {
	return strings.TrimFunc(tok, unicode.IsPunct)
}

// normalizeToken is the form tokens are compared in.
func normalizeToken(tok string) string {
	return strings.ToLower(trimToken(tok))
}
