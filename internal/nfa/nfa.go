// Package nfa implements Thompson NFAs: the automaton value, the
// structural combinators used to assemble it, and a postfix evaluator
// that builds one from a token stream.
//
// States live in a dense arena and are addressed by StateID. A fragment
// whose first state has id base stores state base+i at index i, so renaming
// for disjointness is an offset on every id.
package nfa

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// StateID identifies an NFA state.
type StateID int

// Epsilon is the edge symbol consumed without reading input. It lies
// outside the valid rune range so it can never collide with a literal.
const Epsilon rune = -1

// Edge is a single labelled transition.
type Edge struct {
	Symbol rune
	To     StateID
}

// NFA is an automaton fragment with a single start state. Values are
// never mutated after construction; every combinator returns a new NFA.
type NFA struct {
	alphabet []rune // sorted, without Epsilon
	base     StateID
	edges    [][]Edge
	start    StateID
	accept   []StateID // sorted
}

// Literal returns the two-state fragment q0 -c-> q1 with q1 accepting.
func Literal(c rune) *NFA {
	return &NFA{
		alphabet: []rune{c},
		edges:    [][]Edge{{{Symbol: c, To: 1}}, nil},
		start:    0,
		accept:   []StateID{1},
	}
}

// Empty returns the one-state fragment accepting only the empty word.
func Empty() *NFA {
	return &NFA{
		edges:  [][]Edge{nil},
		start:  0,
		accept: []StateID{0},
	}
}

// Alphabet returns the symbols used on non-epsilon edges, sorted.
func (n *NFA) Alphabet() []rune { return slices.Clone(n.alphabet) }

// NumStates returns the number of states.
func (n *NFA) NumStates() int { return len(n.edges) }

// States returns every state id in order.
func (n *NFA) States() []StateID {
	out := make([]StateID, len(n.edges))
	for i := range out {
		out[i] = n.base + StateID(i)
	}
	return out
}

func (n *NFA) Start() StateID { return n.start }

// Accepting returns the accepting states, sorted.
func (n *NFA) Accepting() []StateID { return slices.Clone(n.accept) }

func (n *NFA) IsAccepting(id StateID) bool {
	_, found := slices.BinarySearch(n.accept, id)
	return found
}

// Has reports whether id names a state of n.
func (n *NFA) Has(id StateID) bool {
	return id >= n.base && int(id-n.base) < len(n.edges)
}

// Edges returns the outgoing edges of id. The slice must not be modified.
func (n *NFA) Edges(id StateID) []Edge {
	if !n.Has(id) {
		return nil
	}
	return n.edges[id-n.base]
}

// Name is the canonical label of a state.
func Name(id StateID) string { return fmt.Sprintf("q%d", id) }

// Rename relabels the states of n to base, base+1, ... in arena order,
// rewriting the start state, the accepting set and every edge endpoint.
// The result shares no memory with n.
func (n *NFA) Rename(base StateID) *NFA {
	shift := base - n.base
	edges := make([][]Edge, len(n.edges))
	for i, out := range n.edges {
		if len(out) == 0 {
			continue
		}
		moved := make([]Edge, len(out))
		for j, e := range out {
			moved[j] = Edge{Symbol: e.Symbol, To: e.To + shift}
		}
		edges[i] = moved
	}
	accept := make([]StateID, len(n.accept))
	for i, f := range n.accept {
		accept[i] = f + shift
	}
	return &NFA{
		alphabet: slices.Clone(n.alphabet),
		base:     base,
		edges:    edges,
		start:    n.start + shift,
		accept:   accept,
	}
}

// Clone returns a deep copy of n with the same state ids.
func (n *NFA) Clone() *NFA { return n.Rename(n.base) }

// Validate checks that every id referenced by the start state, the
// accepting set and the edges belongs to n.
func (n *NFA) Validate() error {
	if !n.Has(n.start) {
		return fmt.Errorf("%w: start %s", ErrInvalidState, Name(n.start))
	}
	for _, f := range n.accept {
		if !n.Has(f) {
			return fmt.Errorf("%w: accepting %s", ErrInvalidState, Name(f))
		}
	}
	for i, out := range n.edges {
		for _, e := range out {
			if !n.Has(e.To) {
				return fmt.Errorf("%w: edge %s -> %s", ErrInvalidState, Name(n.base+StateID(i)), Name(e.To))
			}
		}
	}
	return nil
}
