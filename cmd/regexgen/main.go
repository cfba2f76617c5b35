package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"regexfa/internal/codegen"
	"regexfa/internal/regexlib"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	name := flag.String("name", "Match", "matcher function name")
	pkg := flag.String("pkg", "main", "package of the generated file")
	outFile := flag.String("o", "-", "output file, - for stdout")
	verbose := flag.Bool("v", false, "trace the compilation on stderr")
	flag.Parse()

	if *pattern == "" {
		log.Fatalf("usage: %s -re <pattern> [-name Match] [-pkg main] [-o file]", os.Args[0])
	}

	re, err := regexlib.New(regexlib.Config{Pattern: *pattern, Verbose: *verbose})
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	cfg := codegen.Config{Pattern: *pattern, Name: *name, Package: *pkg}
	if err := codegen.Render(&buf, re.DFA(), cfg); err != nil {
		log.Fatal(err)
	}

	if *outFile == "-" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*outFile, buf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("matcher written to %s\n", *outFile)
}
