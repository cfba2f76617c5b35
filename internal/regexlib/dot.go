package regexlib

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"regexfa/internal/dfa"
	"regexfa/internal/nfa"
)

// ExportDOT writes a Graphviz representation of an *nfa.NFA or *dfa.DFA to w.
func ExportDOT(w io.Writer, g interface{}) error {
	bw := bufio.NewWriter(w)

	switch t := g.(type) {

	//------------------------------------------------------------------ DFA
	case *dfa.DFA:
		header(bw, "DFA", t.Name(t.Start()))
		for _, s := range t.States() {
			shape := "circle"
			if t.IsAccepting(s) {
				shape = "doublecircle"
			}
			fmt.Fprintf(bw, "    %s [shape=%s];\n", strconv.Quote(t.Name(s)), shape)
		}
		for _, s := range t.States() {
			for _, c := range t.Alphabet() {
				to, _ := t.Step(s, c)
				fmt.Fprintf(bw, "    %s -> %s [label=%s];\n",
					strconv.Quote(t.Name(s)), strconv.Quote(t.Name(to)), strconv.Quote(string(c)))
			}
		}

	//------------------------------------------------------------------ NFA
	case *nfa.NFA:
		header(bw, "NFA", nfa.Name(t.Start()))
		for _, s := range t.States() {
			shape := "circle"
			if t.IsAccepting(s) {
				shape = "doublecircle"
			}
			fmt.Fprintf(bw, "    %s [shape=%s];\n", nfa.Name(s), shape)
		}
		for _, s := range t.States() {
			for _, e := range t.Edges(s) {
				label := "ε"
				if e.Symbol != nfa.Epsilon {
					label = string(e.Symbol)
				}
				fmt.Fprintf(bw, "    %s -> %s [label=%s];\n", nfa.Name(s), nfa.Name(e.To), strconv.Quote(label))
			}
		}

	default:
		return fmt.Errorf("cannot export %T", g)
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func header(w io.Writer, name, start string) {
	fmt.Fprintf(w, "digraph %s {\n", name)
	fmt.Fprintln(w, "    rankdir=LR;")
	fmt.Fprintln(w, "    _start [shape=point];")
	fmt.Fprintf(w, "    _start -> %s;\n", strconv.Quote(start))
}

// RenderPNG pipes DOT source through `dot -Tpng` into outFile.
func RenderPNG(src []byte, outFile string) error {
	cmd := exec.Command("dot", "-Tpng", "-o", outFile)
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dot failed: %w", err)
	}
	return nil
}
