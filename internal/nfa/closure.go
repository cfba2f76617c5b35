package nfa

import (
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// EpsilonClosure returns set together with every state reachable from it
// through epsilon edges alone, sorted and without duplicates. Ids that do
// not belong to n are dropped.
func (n *NFA) EpsilonClosure(set []StateID) []StateID {
	seen := make([]bool, len(n.edges))
	stack := make([]StateID, 0, len(set))
	out := make([]StateID, 0, len(set))
	for _, s := range set {
		if !n.Has(s) || seen[s-n.base] {
			continue
		}
		seen[s-n.base] = true
		stack = append(stack, s)
		out = append(out, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.edges[s-n.base] {
			if e.Symbol != Epsilon || seen[e.To-n.base] {
				continue
			}
			seen[e.To-n.base] = true
			stack = append(stack, e.To)
			out = append(out, e.To)
		}
	}
	slices.Sort(out)
	return out
}

// Move returns the states reached from set by one edge labelled sym,
// sorted and without duplicates.
func (n *NFA) Move(set []StateID, sym rune) []StateID {
	var out []StateID
	for _, s := range set {
		for _, e := range n.Edges(s) {
			if e.Symbol == sym {
				out = append(out, e.To)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// AnyAccepting reports whether set contains an accepting state.
func (n *NFA) AnyAccepting(set []StateID) bool {
	for _, s := range set {
		if n.IsAccepting(s) {
			return true
		}
	}
	return false
}

// Accepts simulates n on word by tracking the epsilon-closed set of
// current states. Invalid UTF-8 rejects the word.
func (n *NFA) Accepts(word string) bool {
	cur := n.EpsilonClosure([]StateID{n.start})
	for i := 0; i < len(word); {
		r, size := utf8.DecodeRuneInString(word[i:])
		if len(cur) == 0 || r == utf8.RuneError && size == 1 {
			return false
		}
		i += size
		cur = n.EpsilonClosure(n.Move(cur, r))
	}
	return n.AnyAccepting(cur)
}
