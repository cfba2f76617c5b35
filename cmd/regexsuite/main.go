package main

import (
	"flag"
	"log"
	"os"

	"regexfa/internal/crosscheck"
	"regexfa/internal/regexlib"
	"regexfa/internal/suite"
)

func main() {
	path := flag.String("suite", "regex_tests.json", "suite file (.json or text layout)")
	verbose := flag.Bool("v", false, "trace every compilation on stderr")
	xcheck := flag.Bool("crosscheck", false, "compare each verdict with a lexmachine recognizer")
	flag.Parse()

	suites, err := suite.Load(*path)
	if err != nil {
		log.Fatal(err)
	}

	r := &suite.Runner{Out: os.Stdout, Verbose: *verbose}
	if *xcheck {
		r.NewReference = func(re *regexlib.Regex) (suite.Reference, error) {
			return crosscheck.NewOracle(re.Tokens())
		}
	}

	if rep := r.Run(suites); !rep.OK() {
		os.Exit(1)
	}
}
