package batch

import (
	"os"
	"strings"
)

// DefaultTailLines is how many log lines a Result keeps.
const DefaultTailLines = 50

// Tail returns the last n lines of text. A single trailing newline does not
// count as an empty last line.
func Tail(text string, n int) string {
	if n <= 0 || text == "" {
		return ""
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// TailFile returns the last n lines of the file at path. A missing or
// unreadable file reports false.
func TailFile(path string, n int) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return Tail(string(data), n), true
}
