package generator

import (
	"fmt"
	"strings"
)

// codeWriter accumulates indented source lines.
type codeWriter struct {
	b      strings.Builder
	depth  int
	indent string
}

func newCodeWriter() *codeWriter {
	return &codeWriter{indent: "    "}
}

// line writes s at the current depth. Empty lines carry no indentation.
func (w *codeWriter) line(s string) {
	if s != "" {
		w.b.WriteString(strings.Repeat(w.indent, w.depth))
		w.b.WriteString(s)
	}
	w.b.WriteString("\n")
}

func (w *codeWriter) linef(format string, args ...any) {
	w.line(fmt.Sprintf(format, args...))
}

func (w *codeWriter) blank() {
	w.b.WriteString("\n")
}

// open writes the formatted header followed by "{" and indents.
func (w *codeWriter) open(format string, args ...any) {
	w.linef(format, args...)
	w.line("{")
	w.depth++
}

// close dedents and writes "}".
func (w *codeWriter) close() {
	w.depth--
	w.line("}")
}

func (w *codeWriter) String() string {
	return w.b.String()
}
