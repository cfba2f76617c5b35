package nfa

import "golang.org/x/exp/slices"

// Concat returns a·b. b is renamed above a and every accepting state of a
// gets an epsilon edge to b's start.
func Concat(a, b *NFA) *NFA {
	left := a.Rename(0)
	right := b.Rename(StateID(len(left.edges)))

	edges := append(left.edges, right.edges...)
	for _, f := range left.accept {
		edges[f] = append(edges[f], Edge{Symbol: Epsilon, To: right.start})
	}
	return &NFA{
		alphabet: mergeAlphabets(left.alphabet, right.alphabet),
		edges:    edges,
		start:    left.start,
		accept:   right.accept,
	}
}

// Union returns a|b with a fresh start q0 and a fresh sole accepting q1.
func Union(a, b *NFA) *NFA {
	left := a.Rename(2)
	right := b.Rename(StateID(2 + len(left.edges)))

	edges := make([][]Edge, 2, 2+len(left.edges)+len(right.edges))
	edges[0] = []Edge{
		{Symbol: Epsilon, To: left.start},
		{Symbol: Epsilon, To: right.start},
	}
	edges = append(edges, left.edges...)
	edges = append(edges, right.edges...)
	for _, f := range left.accept {
		edges[f] = append(edges[f], Edge{Symbol: Epsilon, To: 1})
	}
	for _, f := range right.accept {
		edges[f] = append(edges[f], Edge{Symbol: Epsilon, To: 1})
	}
	return &NFA{
		alphabet: mergeAlphabets(left.alphabet, right.alphabet),
		edges:    edges,
		start:    0,
		accept:   []StateID{1},
	}
}

// Star returns a* with a fresh start q0 and a fresh sole accepting q1.
// q0 reaches q1 directly for zero iterations; each accepting state of a
// loops back to a's start and exits to q1.
func Star(a *NFA) *NFA {
	inner := a.Rename(2)

	edges := make([][]Edge, 2, 2+len(inner.edges))
	edges[0] = []Edge{
		{Symbol: Epsilon, To: inner.start},
		{Symbol: Epsilon, To: 1},
	}
	edges = append(edges, inner.edges...)
	for _, f := range inner.accept {
		edges[f] = append(edges[f],
			Edge{Symbol: Epsilon, To: inner.start},
			Edge{Symbol: Epsilon, To: 1},
		)
	}
	return &NFA{
		alphabet: slices.Clone(inner.alphabet),
		edges:    edges,
		start:    0,
		accept:   []StateID{1},
	}
}

// Plus returns a+ as a·a*, starring a clone so the operands stay disjoint.
func Plus(a *NFA) *NFA { return Concat(a, Star(a.Clone())) }

// Optional returns a? as a|ε.
func Optional(a *NFA) *NFA { return Union(a, Empty()) }

func mergeAlphabets(a, b []rune) []rune {
	out := make([]rune, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}
