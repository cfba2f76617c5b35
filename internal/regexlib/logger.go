package regexlib

import (
	"fmt"
	"io"
	"os"
)

// Logger traces the stages of a compilation. A nil writer disables it.
type Logger struct {
	out   io.Writer
	stage string
}

// NewLogger returns a disabled logger unless verbose is set. w defaults to
// stderr.
func NewLogger(verbose bool, w io.Writer) *Logger {
	if !verbose {
		return &Logger{}
	}
	if w == nil {
		w = os.Stderr
	}
	return &Logger{out: w}
}

// Enabled reports whether messages are written. Callers check it before
// building expensive arguments.
func (l *Logger) Enabled() bool { return l.out != nil }

// Section starts a new stage; later lines are tagged with it.
func (l *Logger) Section(name string) {
	l.stage = name
	if l.Enabled() {
		fmt.Fprintf(l.out, "\n[regexfa] === %s ===\n", name)
	}
}

func (l *Logger) Log(format string, args ...interface{}) {
	if !l.Enabled() {
		return
	}
	if l.stage != "" {
		format = l.stage + ": " + format
	}
	fmt.Fprintf(l.out, "[regexfa] "+format+"\n", args...)
}
