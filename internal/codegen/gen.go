// Package codegen turns a DFA into Go source for a standalone matcher
// function.
package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"regexfa/internal/dfa"
)

// ErrInvalidName is returned when Config.Name or Config.Package is not a Go
// identifier.
var ErrInvalidName = errors.New("not a Go identifier")

// Config holds the configuration for code generation.
type Config struct {
	Pattern string // only used in comments
	Name    string // matcher function name, defaults to "Match"
	Package string // defaults to "main"
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = "Match"
	}
	if c.Package == "" {
		c.Package = "main"
	}
	return c
}

// Generate builds a file holding func <Name>(s string) bool. The body
// decodes s rune by rune and switches on the current state. A step into a
// state from which nothing is accepted returns false right away, and so
// does a byte that is not valid UTF-8.
func Generate(d *dfa.DFA, cfg Config) (*jen.File, error) {
	cfg = cfg.withDefaults()
	for _, id := range []string{cfg.Name, cfg.Package} {
		if !token.IsIdentifier(id) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, id)
		}
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by regexgen for pattern: %s. DO NOT EDIT.", commentSafe(cfg.Pattern)))

	f.Comment(fmt.Sprintf("%s reports whether all of s matches %s.", cfg.Name, commentSafe(cfg.Pattern)))
	f.Func().Id(cfg.Name).Params(jen.Id("s").String()).Bool().Block(body(d)...)
	return f, nil
}

// Render generates the matcher and writes gofmt'ed source to w.
func Render(w io.Writer, d *dfa.DFA, cfg Config) error {
	f, err := Generate(d, cfg)
	if err != nil {
		return err
	}
	return f.Render(w)
}

func body(d *dfa.DFA) []jen.Code {
	if !d.CanMatch(d.Start()) {
		return []jen.Code{jen.Return(jen.False())}
	}

	var cases []jen.Code
	moves := false
	for _, s := range d.States() {
		if !d.CanMatch(s) {
			continue
		}
		var arms []jen.Code
		for _, r := range d.Alphabet() {
			next, _ := d.Step(s, r)
			if !d.CanMatch(next) {
				continue
			}
			moves = true
			arms = append(arms, jen.Case(jen.LitRune(r)).Block(
				jen.Id("state").Op("=").Lit(int(next)),
			))
		}
		arms = append(arms, jen.Default().Block(jen.Return(jen.False())))
		cases = append(cases, jen.Case(jen.Lit(int(s))).Block(
			jen.Switch(jen.Id("r")).Block(arms...),
		))
	}

	if !moves {
		// only the empty word can match
		return []jen.Code{jen.Return(jen.Len(jen.Id("s")).Op("==").Lit(0))}
	}

	var accepting []jen.Code
	for _, s := range d.States() {
		if d.IsAccepting(s) {
			accepting = append(accepting, jen.Lit(int(s)))
		}
	}

	code := []jen.Code{
		jen.Id("state").Op(":=").Lit(int(d.Start())),
		jen.For(jen.Len(jen.Id("s")).Op(">").Lit(0)).Block(
			jen.List(jen.Id("r"), jen.Id("size")).Op(":=").Qual("unicode/utf8", "DecodeRuneInString").Call(jen.Id("s")),
			jen.If(jen.Id("r").Op("==").Qual("unicode/utf8", "RuneError").Op("&&").Id("size").Op("==").Lit(1)).Block(
				jen.Return(jen.False()),
			),
			jen.Id("s").Op("=").Id("s").Index(jen.Id("size"), jen.Empty()),
			jen.Switch(jen.Id("state")).Block(cases...),
		),
	}
	if len(accepting) > 0 {
		code = append(code, jen.Switch(jen.Id("state")).Block(
			jen.Case(accepting...).Block(jen.Return(jen.True())),
		))
	}
	return append(code, jen.Return(jen.False()))
}

func commentSafe(p string) string {
	if strings.ContainsAny(p, "\r\n") {
		return strconv.Quote(p)
	}
	return p
}
