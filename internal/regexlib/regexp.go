// Package regexlib compiles a pattern through the whole pipeline
// (tokens, postfix, Thompson NFA, subset DFA) and exposes the result.
package regexlib

import (
	"errors"
	"fmt"
	"io"

	"regexfa/internal/dfa"
	"regexfa/internal/nfa"
	"regexfa/internal/syntax"
)

// ErrEmptyPattern is returned for the empty pattern.
var ErrEmptyPattern = errors.New("empty pattern")

// CompileError wraps any failure to compile a pattern.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Config controls a compilation.
type Config struct {
	Pattern   string
	Verbose   bool      // trace each stage through the Logger
	LogOutput io.Writer // defaults to stderr
}

// Regex is a compiled pattern. It is immutable and safe for concurrent use.
type Regex struct {
	pattern string
	tokens  []syntax.Token
	postfix []syntax.Token
	nfa     *nfa.NFA
	dfa     *dfa.DFA
}

/* ----------- Компиляция ----------- */

func Compile(pattern string) (*Regex, error) {
	return New(Config{Pattern: pattern})
}

func MustCompile(p string) *Regex {
	r, err := Compile(p)
	if err != nil {
		panic(err)
	}
	return r
}

// New runs the pipeline described by cfg. On failure no automaton is
// returned.
func New(cfg Config) (*Regex, error) {
	log := NewLogger(cfg.Verbose, cfg.LogOutput)
	log.Section("Compile")
	log.Log("Pattern: %s", cfg.Pattern)

	if cfg.Pattern == "" {
		return nil, &CompileError{Pattern: cfg.Pattern, Err: ErrEmptyPattern}
	}
	if err := syntax.CheckUTF8(cfg.Pattern); err != nil {
		return nil, &CompileError{Pattern: cfg.Pattern, Err: err}
	}

	/* 1) токены ----------------------------------------------------------- */
	tokens := syntax.Tokenize(cfg.Pattern)
	if log.Enabled() {
		log.Log("Tokens: %s", syntax.Format(tokens))
	}

	/* 2) постфикс --------------------------------------------------------- */
	postfix, err := syntax.ToPostfix(tokens)
	if err != nil {
		return nil, &CompileError{Pattern: cfg.Pattern, Err: err}
	}
	if log.Enabled() {
		log.Log("Postfix: %s", syntax.Format(postfix))
	}

	/* 3) Thompson-NFA ----------------------------------------------------- */
	n, err := nfa.Build(postfix)
	if err != nil {
		return nil, &CompileError{Pattern: cfg.Pattern, Err: err}
	}
	log.Log("NFA: %d states, alphabet %q", n.NumStates(), string(n.Alphabet()))

	/* 4) NFA → DFA -------------------------------------------------------- */
	d := dfa.FromNFA(n)
	log.Log("DFA: %d states", d.NumStates())

	return &Regex{
		pattern: cfg.Pattern,
		tokens:  tokens,
		postfix: postfix,
		nfa:     n,
		dfa:     d,
	}, nil
}

// Accepts reports whether the whole of word matches the pattern.
func (r *Regex) Accepts(word string) bool { return r.dfa.Accepts(word) }

/* ----------- Сервисные геттеры --------------------------------------- */

func (r *Regex) String() string          { return r.pattern }
func (r *Regex) Tokens() []syntax.Token  { return r.tokens }
func (r *Regex) Postfix() []syntax.Token { return r.postfix }
func (r *Regex) NFA() *nfa.NFA           { return r.nfa }
func (r *Regex) DFA() *dfa.DFA           { return r.dfa }
