package regexlib

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"regexfa/internal/nfa"
	"regexfa/internal/syntax"
)

// ------------------------------------------------------------------- helpers

func acc(t *testing.T, re *Regex, in string, want bool) {
	t.Helper()
	if got := re.Accepts(in); got != want {
		t.Fatalf("pattern %q on %q want %v got %v", re.pattern, in, want, got)
	}
}

func newRE(t *testing.T, pat string) *Regex {
	t.Helper()
	re, err := Compile(pat)
	if err != nil {
		t.Fatalf("compile %q: %v", pat, err)
	}
	return re
}

// ------------------------------------------------------------------- Compile

func TestParserPrecedence(t *testing.T) {
	re := newRE(t, "a|bc*")
	acc(t, re, "a", true)
	acc(t, re, "bc", true)
	acc(t, re, "bccc", true)
	acc(t, re, "b", true)
	acc(t, re, "ab", false)
}

func TestEscapedOperators(t *testing.T) {
	re := newRE(t, `a\*+\|`)
	acc(t, re, "a*|", true)
	acc(t, re, "a***|", true)
	acc(t, re, "a|", false)
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		pat  string
		want error
	}{
		{"", ErrEmptyPattern},
		{"a)", syntax.ErrUnbalancedParen},
		{"(ab", syntax.ErrUnbalancedParen},
		{"a||b", nfa.ErrMissingOperand},
		{"()", nfa.ErrEmptyExpression},
		{"\xfe", syntax.ErrInvalidUTF8},
		{"ab\xffc", syntax.ErrInvalidUTF8},
	}
	for _, c := range cases {
		re, err := Compile(c.pat)
		if re != nil || !errors.Is(err, c.want) {
			t.Fatalf("Compile(%q) = %v, %v; want %v", c.pat, re, err, c.want)
		}
		var ce *CompileError
		if !errors.As(err, &ce) || ce.Pattern != c.pat {
			t.Fatalf("Compile(%q) error %v is not a CompileError", c.pat, err)
		}
	}
}

func TestInvalidUTF8Offset(t *testing.T) {
	_, err := Compile("aé\xff")
	var se *syntax.Error
	if !errors.As(err, &se) || se.Pos != 3 {
		t.Fatalf("Compile error = %v, want syntax error at offset 3", err)
	}
}

func TestInvalidUTF8WordRejected(t *testing.T) {
	acc(t, newRE(t, "\uFFFD"), "\xff", false)
	acc(t, newRE(t, "\uFFFD"), "\uFFFD", true)
	acc(t, newRE(t, "a*"), "a\xffa", false)
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustCompile should panic on a bad pattern")
		}
	}()
	MustCompile("(")
}

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(Config{Pattern: "(a|b)*abb", Verbose: true, LogOutput: &buf})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"[regexfa] === Compile ===", "Postfix: ab|*a·b·b·", "DFA: 5 states"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if _, err := New(Config{Pattern: "a", LogOutput: &buf}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("quiet compile wrote %q", buf.String())
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewLogger(false, &buf)
	quiet.Section("Compile")
	quiet.Log("x=%d", 1)
	if quiet.Enabled() || buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}

	l := NewLogger(true, &buf)
	if !l.Enabled() {
		t.Fatalf("verbose logger reports disabled")
	}
	l.Log("before")
	l.Section("Subset")
	l.Log("%d states", 3)
	want := "[regexfa] before\n\n[regexfa] === Subset ===\n[regexfa] Subset: 3 states\n"
	if buf.String() != want {
		t.Fatalf("log = %q, want %q", buf.String(), want)
	}
}

func TestAccessors(t *testing.T) {
	re := newRE(t, "ab")
	if re.String() != "ab" || syntax.Format(re.Tokens()) != "a·b" || syntax.Format(re.Postfix()) != "ab·" {
		t.Fatalf("accessors wrong")
	}
	if re.NFA().NumStates() != 4 || re.DFA().NumStates() != 4 {
		t.Fatalf("nfa %d dfa %d states", re.NFA().NumStates(), re.DFA().NumStates())
	}
}

// ------------------------------------------------------------------- DOT

func TestExportDOTNFA(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportDOT(&buf, newRE(t, "a|b").NFA()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"digraph NFA {",
		"rankdir=LR;",
		`_start -> "q0";`,
		"q1 [shape=doublecircle];",
		"q0 [shape=circle];",
		`q0 -> q2 [label="ε"];`,
		`q2 -> q3 [label="a"];`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestExportDOTDFA(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportDOT(&buf, newRE(t, "a").DFA()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"digraph DFA {",
		`_start -> "{q0}";`,
		`"{q1}" [shape=doublecircle];`,
		`"{q0}" -> "{q1}" [label="a"];`,
		`"∅" -> "∅" [label="a"];`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("graph not closed")
	}
}

func TestExportDOTUnknown(t *testing.T) {
	if err := ExportDOT(&bytes.Buffer{}, 42); err == nil {
		t.Fatalf("want error for unsupported type")
	}
}

// ------------------------------------------------------------------- Bench (quick)

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = MustCompile("(a|b)*abb(a|b)*")
	}
}

func BenchmarkMillionAs(b *testing.B) {
	re := MustCompile("a*b*")
	txt := strings.Repeat("a", 1_000_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = re.Accepts(txt)
	}
}
