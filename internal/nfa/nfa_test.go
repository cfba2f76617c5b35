package nfa

import (
	"errors"
	"testing"

	"regexfa/internal/syntax"
)

// ------------------------------------------------------------------- helpers

func build(t *testing.T, pat string) *NFA {
	t.Helper()
	post, err := syntax.Parse(pat)
	if err != nil {
		t.Fatalf("parse %q: %v", pat, err)
	}
	n, err := Build(post)
	if err != nil {
		t.Fatalf("build %q: %v", pat, err)
	}
	if err := n.Validate(); err != nil {
		t.Fatalf("validate %q: %v", pat, err)
	}
	return n
}

func hasEdge(n *NFA, from StateID, sym rune, to StateID) bool {
	for _, e := range n.Edges(from) {
		if e.Symbol == sym && e.To == to {
			return true
		}
	}
	return false
}

// ------------------------------------------------------------------- structure

func TestLiteral(t *testing.T) {
	n := Literal('a')
	if n.NumStates() != 2 || n.Start() != 0 || !n.IsAccepting(1) || n.IsAccepting(0) {
		t.Fatalf("bad literal fragment")
	}
	if !hasEdge(n, 0, 'a', 1) {
		t.Fatalf("missing q0 -a-> q1")
	}
	if got := string(n.Alphabet()); got != "a" {
		t.Fatalf("alphabet %q", got)
	}
}

func TestRename(t *testing.T) {
	n := Concat(Literal('a'), Literal('b'))
	r := n.Rename(10)
	if r.Start() != 10 || !r.IsAccepting(13) || r.NumStates() != 4 {
		t.Fatalf("rename: start %d accepting %v", r.Start(), r.Accepting())
	}
	if !hasEdge(r, 10, 'a', 11) || !hasEdge(r, 11, Epsilon, 12) || !hasEdge(r, 12, 'b', 13) {
		t.Fatalf("rename did not rewrite edges")
	}
	if err := r.Validate(); err != nil {
		t.Fatal(err)
	}
	// original untouched
	if n.Start() != 0 || !hasEdge(n, 0, 'a', 1) || r.Has(0) {
		t.Fatalf("rename mutated its operand")
	}
	if states := r.States(); states[0] != 10 || states[3] != 13 {
		t.Fatalf("states %v", states)
	}
}

func TestConcatStructure(t *testing.T) {
	a, b := Literal('a'), Literal('b')
	n := Concat(a, b)
	if n.NumStates() != 4 || n.Start() != 0 {
		t.Fatalf("states %d start %d", n.NumStates(), n.Start())
	}
	if got := n.Accepting(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("accepting %v", got)
	}
	if !hasEdge(n, 1, Epsilon, 2) {
		t.Fatalf("missing epsilon bridge")
	}
	if len(a.Edges(1)) != 0 {
		t.Fatalf("concat mutated its left operand")
	}
	if string(n.Alphabet()) != "ab" {
		t.Fatalf("alphabet %q", string(n.Alphabet()))
	}
}

func TestUnionStructure(t *testing.T) {
	n := Union(Literal('a'), Literal('b'))
	if n.NumStates() != 6 || n.Start() != 0 {
		t.Fatalf("states %d start %d", n.NumStates(), n.Start())
	}
	if got := n.Accepting(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("accepting %v", got)
	}
	for _, e := range [][2]StateID{{0, 2}, {0, 4}, {3, 1}, {5, 1}} {
		if !hasEdge(n, e[0], Epsilon, e[1]) {
			t.Fatalf("missing epsilon %v", e)
		}
	}
	if !hasEdge(n, 2, 'a', 3) || !hasEdge(n, 4, 'b', 5) {
		t.Fatalf("operands not placed at 2 and 4")
	}
}

func TestStarStructure(t *testing.T) {
	n := Star(Literal('a'))
	if n.NumStates() != 4 {
		t.Fatalf("states %d", n.NumStates())
	}
	for _, e := range [][2]StateID{{0, 2}, {0, 1}, {3, 2}, {3, 1}} {
		if !hasEdge(n, e[0], Epsilon, e[1]) {
			t.Fatalf("missing epsilon %v", e)
		}
	}
}

func TestPlusClonesOperand(t *testing.T) {
	n := Plus(Literal('a'))
	if n.NumStates() != 6 {
		t.Fatalf("a+ should have 2+4 states, got %d", n.NumStates())
	}
	if err := n.Validate(); err != nil {
		t.Fatal(err)
	}
	if !n.Accepts("a") || n.Accepts("") {
		t.Fatalf("a+ language wrong")
	}
}

func TestOptional(t *testing.T) {
	n := Optional(Literal('a'))
	if n.NumStates() != 5 || !n.Accepts("") || !n.Accepts("a") || n.Accepts("aa") {
		t.Fatalf("a? wrong")
	}
}

// ------------------------------------------------------------------- Build

func TestBuildErrors(t *testing.T) {
	char := func(r rune) syntax.Token { return syntax.Token{Kind: syntax.Char, Ch: r} }
	op := func(k syntax.Kind) syntax.Token { return syntax.Token{Kind: k} }

	cases := []struct {
		name  string
		in    []syntax.Token
		want  error
		index int
	}{
		{"union missing operand", []syntax.Token{char('a'), op(syntax.Union)}, ErrMissingOperand, 1},
		{"star on empty stack", []syntax.Token{op(syntax.Star)}, ErrMissingOperand, 0},
		{"two fragments", []syntax.Token{char('a'), char('b')}, ErrDanglingFragments, -1},
		{"empty", nil, ErrEmptyExpression, -1},
		{"paren", []syntax.Token{char('a'), op(syntax.LeftParen)}, ErrUnexpectedToken, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := Build(c.in)
			if n != nil || !errors.Is(err, c.want) {
				t.Fatalf("got %v, %v; want %v", n, err, c.want)
			}
			var be *BuildError
			if !errors.As(err, &be) || be.Index != c.index {
				t.Fatalf("want BuildError at %d, got %v", c.index, err)
			}
		})
	}
}

func TestBuildFromPatternErrors(t *testing.T) {
	for _, pat := range []string{"a||b", "|a", "*", "()", "a()"} {
		post, err := syntax.Parse(pat)
		if err != nil {
			t.Fatalf("parse %q: %v", pat, err)
		}
		if _, err := Build(post); err == nil {
			t.Fatalf("Build(%q) should fail", pat)
		}
	}
}

func TestBuildAlphabet(t *testing.T) {
	n := build(t, "(c|a)*abb")
	if got := string(n.Alphabet()); got != "abc" {
		t.Fatalf("alphabet %q", got)
	}
}

// ------------------------------------------------------------------- closure & simulation

func TestEpsilonClosureIdempotent(t *testing.T) {
	n := build(t, "(a|b)*abb")
	for _, s := range n.States() {
		once := n.EpsilonClosure([]StateID{s})
		twice := n.EpsilonClosure(once)
		if len(once) != len(twice) {
			t.Fatalf("closure of %s not idempotent: %v vs %v", Name(s), once, twice)
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Fatalf("closure of %s not idempotent: %v vs %v", Name(s), once, twice)
			}
		}
	}
}

func TestEpsilonClosureStar(t *testing.T) {
	n := Star(Literal('a'))
	got := n.EpsilonClosure([]StateID{0, 0})
	want := []StateID{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("closure %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("closure %v want %v", got, want)
		}
	}
}

func TestAccepts(t *testing.T) {
	cases := []struct {
		pat    string
		accept []string
		reject []string
	}{
		{"a", []string{"a"}, []string{"", "b", "aa"}},
		{"a|b", []string{"a", "b"}, []string{"", "ab"}},
		{"a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
		{"(a|b)*abb", []string{"abb", "aabb", "babb"}, []string{"ab", "abab", ""}},
		{"a+", []string{"a", "aaa"}, []string{""}},
		{"ab?c", []string{"ac", "abc"}, []string{"abbc"}},
	}
	for _, c := range cases {
		n := build(t, c.pat)
		for _, w := range c.accept {
			if !n.Accepts(w) {
				t.Errorf("%q should accept %q", c.pat, w)
			}
		}
		for _, w := range c.reject {
			if n.Accepts(w) {
				t.Errorf("%q should reject %q", c.pat, w)
			}
		}
	}
}
