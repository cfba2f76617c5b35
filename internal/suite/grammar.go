package suite

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The text layout, one block per suite:
//
//	# comment
//	suite "union-star" "(a|b)*abb" {
//	    accept "abb" "aabb"
//	    reject "ab" ""
//	}
type file struct {
	Suites []*suiteBlock `parser:"@@*"`
}

type suiteBlock struct {
	Name  string      `parser:"'suite' @String"`
	Regex string      `parser:"@String '{'"`
	Lines []*caseLine `parser:"@@* '}'"`
}

type caseLine struct {
	Verdict string   `parser:"@('accept' | 'reject')"`
	Inputs  []string `parser:"@String+"`
}

var suiteLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[file](
	participle.Lexer(suiteLexer),
	participle.Unquote("String"),
	participle.Elide("Comment", "Whitespace"),
)

// ParseString parses suites written in the text layout. filename is only
// used in error positions.
func ParseString(filename, src string) ([]Suite, error) {
	f, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, err
	}
	suites := make([]Suite, 0, len(f.Suites))
	for _, blk := range f.Suites {
		s := Suite{Name: blk.Name, Regex: blk.Regex}
		for _, line := range blk.Lines {
			for _, in := range line.Inputs {
				s.Cases = append(s.Cases, Case{Input: in, Expected: line.Verdict == "accept"})
			}
		}
		suites = append(suites, s)
	}
	return suites, nil
}
