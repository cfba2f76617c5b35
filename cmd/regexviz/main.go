package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"regexfa/internal/regexlib"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	nfaFlag := flag.Bool("nfa", false, "export the Thompson NFA instead of the DFA")
	outFile := flag.String("o", "graph.dot", "output file, - for stdout")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexviz -re <pattern> [-nfa] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	re, err := regexlib.Compile(*pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	if *nfaFlag {
		err = regexlib.ExportDOT(&buf, re.NFA())
	} else {
		err = regexlib.ExportDOT(&buf, re.DFA())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *pngFlag {
		if err := regexlib.RenderPNG(buf.Bytes(), *outFile); err != nil {
			fmt.Fprintf(os.Stderr, "dot failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG written to %s\n", *outFile)
		return
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	_, _ = io.Copy(w, &buf)
	if *outFile != "-" {
		fmt.Printf("DOT written to %s\n", *outFile)
	}
}
