package suite

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"regexfa/internal/regexlib"
)

// Reference is an independent recognizer whose verdicts are compared
// with the compiled DFA. An error means it cannot decide the word.
type Reference interface {
	Accepts(word string) (bool, error)
}

// Runner compiles each suite's pattern once and checks every case.
type Runner struct {
	Out       io.Writer // defaults to stdout
	Verbose   bool      // trace each compilation
	LogOutput io.Writer // where the trace goes, defaults to stderr

	// NewReference, when set, builds a reference recognizer per suite.
	NewReference func(re *regexlib.Regex) (Reference, error)
}

// Report summarises a run.
type Report struct {
	Suites        int
	Total         int
	Failed        int
	CompileErrors int
	Disagreements int // reference and DFA verdicts differ
}

func (r Report) Passed() int { return r.Total - r.Failed }

// OK reports whether every case passed and the reference never disagreed.
func (r Report) OK() bool { return r.Failed == 0 && r.Disagreements == 0 }

// Run executes suites in order and prints one line per case.
func (r *Runner) Run(suites []Suite) Report {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	var rep Report
	for _, s := range suites {
		rep.Suites++
		rep.Total += len(s.Cases)
		fmt.Fprintf(out, "\n=== Test suite %s: `%s` ===\n", s.Name, s.Regex)

		re, err := regexlib.New(regexlib.Config{Pattern: s.Regex, Verbose: r.Verbose, LogOutput: r.LogOutput})
		if err != nil {
			rep.CompileErrors++
			rep.Failed += len(s.Cases)
			fmt.Fprintf(out, "  [ERROR] %v (%d cases not run)\n", err, len(s.Cases))
			continue
		}

		var ref Reference
		if r.NewReference != nil {
			ref, err = r.NewReference(re)
			if err != nil {
				ref = nil
				fmt.Fprintf(out, "  [NOTE] reference unavailable: %v\n", err)
			}
		}

		for _, c := range s.Cases {
			got := re.Accepts(c.Input)
			in := strconv.Quote(c.Input)
			if got != c.Expected {
				rep.Failed++
				fmt.Fprintf(out, "  [FAIL] Input: %-10s | Expected: %-5v | Got: %v\n", in, c.Expected, got)
			} else {
				fmt.Fprintf(out, "  [PASS] Input: %-10s | Result matches expected: %v\n", in, got)
			}

			if ref == nil {
				continue
			}
			want, err := ref.Accepts(c.Input)
			if err == nil && want != got {
				rep.Disagreements++
				fmt.Fprintf(out, "  [XCHK] Input: %-10s | DFA: %-5v | Reference: %v\n", in, got, want)
			}
		}
	}

	fmt.Fprintf(out, "\nRan %d tests: %d passed, %d failed\n", rep.Total, rep.Passed(), rep.Failed)
	if rep.Disagreements > 0 {
		fmt.Fprintf(out, "Reference disagreed on %d inputs\n", rep.Disagreements)
	}
	return rep
}
