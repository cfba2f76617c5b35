package dfa

import "golang.org/x/exp/slices"

// dead stands for the implicit sink a DFA falls into on a symbol outside
// its alphabet.
const dead StateID = -1

type pair struct{ i, j StateID }

type arrival struct {
	from pair
	sym  rune
}

// Equivalent reports whether a and b accept the same words. It explores
// the product automaton breadth first over the union of both alphabets;
// when the languages differ, witness is a shortest word accepted by
// exactly one of them.
func Equivalent(a, b *DFA) (equal bool, witness string) {
	alpha := unionRunes(a.alphabet, b.alphabet)
	start := pair{a.Start(), b.Start()}
	parent := map[pair]arrival{}
	seen := map[pair]bool{start: true}
	queue := []pair{start}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if accepts(a, p.i) != accepts(b, p.j) {
			return false, trace(parent, start, p)
		}
		for _, c := range alpha {
			np := pair{step(a, p.i, c), step(b, p.j, c)}
			if (np.i == dead && np.j == dead) || seen[np] {
				continue
			}
			seen[np] = true
			parent[np] = arrival{from: p, sym: c}
			queue = append(queue, np)
		}
	}
	return true, ""
}

// trace rebuilds the word that led from start to p.
func trace(parent map[pair]arrival, start, p pair) string {
	var rev []rune
	for p != start {
		a := parent[p]
		rev = append(rev, a.sym)
		p = a.from
	}
	slices.Reverse(rev)
	return string(rev)
}

func step(d *DFA, s StateID, r rune) StateID {
	if s == dead {
		return dead
	}
	next, ok := d.Step(s, r)
	if !ok {
		return dead
	}
	return next
}

func accepts(d *DFA, s StateID) bool {
	return s != dead && d.accept[s]
}

func unionRunes(a, b []rune) []rune {
	out := append(slices.Clone(a), b...)
	slices.Sort(out)
	return slices.Compact(out)
}
