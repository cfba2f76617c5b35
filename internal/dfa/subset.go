package dfa

import (
	"strconv"
	"strings"

	"regexfa/internal/nfa"
)

// FromNFA determinizes n by subset construction. Every DFA state is the
// epsilon-closed set of NFA states reachable on some word; the empty set
// is kept as an ordinary non-accepting state so that the transition
// function is total over the alphabet.
func FromNFA(n *nfa.NFA) *DFA {
	alpha := n.Alphabet()
	d := &DFA{
		alphabet: alpha,
		index:    make(map[rune]int, len(alpha)),
	}
	for i, r := range alpha {
		d.index[r] = i
	}

	ids := map[string]StateID{}
	var queue []StateID
	intern := func(set []nfa.StateID) StateID {
		k := key(set)
		if id, ok := ids[k]; ok {
			return id
		}
		id := StateID(len(d.sets))
		ids[k] = id
		d.sets = append(d.sets, set)
		d.accept = append(d.accept, n.AnyAccepting(set))
		d.trans = append(d.trans, make([]StateID, len(alpha)))
		queue = append(queue, id)
		return id
	}

	intern(n.EpsilonClosure([]nfa.StateID{n.Start()}))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for col, sym := range alpha {
			next := n.EpsilonClosure(n.Move(d.sets[cur], sym))
			d.trans[cur][col] = intern(next)
		}
	}

	d.live = liveStates(d)
	return d
}

// key is the canonical form of an already sorted, duplicate-free set.
func key(set []nfa.StateID) string {
	var b strings.Builder
	for i, id := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}

// liveStates marks the states from which an accepting state is reachable
// by walking the transition graph backwards from every accepting state.
func liveStates(d *DFA) []bool {
	preds := make([][]StateID, len(d.sets))
	for from, row := range d.trans {
		for _, to := range row {
			preds[to] = append(preds[to], StateID(from))
		}
	}
	live := make([]bool, len(d.sets))
	var stack []StateID
	for s, acc := range d.accept {
		if acc {
			live[s] = true
			stack = append(stack, StateID(s))
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range preds[s] {
			if !live[p] {
				live[p] = true
				stack = append(stack, p)
			}
		}
	}
	return live
}
