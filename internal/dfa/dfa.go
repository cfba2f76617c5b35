// Package dfa holds deterministic automata produced from NFAs by subset
// construction, and the word-acceptance evaluator that runs them.
package dfa

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"

	"regexfa/internal/nfa"
)

// StateID identifies a DFA state. The start state is always 0.
type StateID int

// DFA is immutable once built, so one value may be shared by any number
// of goroutines calling Accepts.
type DFA struct {
	alphabet []rune
	index    map[rune]int // symbol -> column in trans

	sets   [][]nfa.StateID // canonical NFA state set of each DFA state
	accept []bool
	live   []bool      // an accepting state is reachable
	trans  [][]StateID // trans[state][column]
}

// Alphabet returns the input symbols, sorted.
func (d *DFA) Alphabet() []rune { return slices.Clone(d.alphabet) }

func (d *DFA) NumStates() int { return len(d.sets) }

// States returns every state id in discovery order.
func (d *DFA) States() []StateID {
	out := make([]StateID, len(d.sets))
	for i := range out {
		out[i] = StateID(i)
	}
	return out
}

func (d *DFA) Start() StateID { return 0 }

func (d *DFA) IsAccepting(s StateID) bool { return d.accept[s] }

// CanMatch reports whether some accepting state is reachable from s.
func (d *DFA) CanMatch(s StateID) bool { return d.live[s] }

// Set returns the NFA states that make up s. The slice must not be modified.
func (d *DFA) Set(s StateID) []nfa.StateID { return d.sets[s] }

// Step returns the successor of s on r. ok is false when r is not in the
// alphabet.
func (d *DFA) Step(s StateID, r rune) (next StateID, ok bool) {
	col, ok := d.index[r]
	if !ok {
		return 0, false
	}
	return d.trans[s][col], true
}

// Name labels a state by its NFA set, e.g. "{q0,q2}". The empty set is "∅".
func (d *DFA) Name(s StateID) string {
	set := d.sets[s]
	if len(set) == 0 {
		return "∅"
	}
	names := make([]string, len(set))
	for i, id := range set {
		names[i] = nfa.Name(id)
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Accepts reports whether the whole of word is in the language. A rune
// outside the alphabet or a byte that is not valid UTF-8 rejects the word.
func (d *DFA) Accepts(word string) bool {
	cur := d.Start()
	for i := 0; i < len(word); {
		r, size := utf8.DecodeRuneInString(word[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
		i += size
		next, ok := d.Step(cur, r)
		if !ok {
			return false
		}
		cur = next
	}
	return d.accept[cur]
}
