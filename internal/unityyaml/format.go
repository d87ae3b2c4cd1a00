package unityyaml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field name sets for brace tuples. The caller picks ColorFields when the
// property is a color; Format itself always uses VectorFields.
var (
	VectorFields = []string{"x", "y", "z", "w"}
	ColorFields  = []string{"r", "g", "b", "a"}
)

// nestIndent is added for every nesting level of block output.
const nestIndent = "  "

// Format renders value in Unity's property syntax. Block output (lists and
// large records) starts with a newline and indents its lines with indent;
// deeper levels add two spaces. Format never fails: values outside the
// supported domain are rendered with fmt.Sprint.
func Format(value any, indent string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "1"
		}
		return "0"
	case string:
		return v
	case []any:
		return formatSequence(v, indent)
	case []float64:
		return formatSequence(floatsToAny(v), indent)
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return formatSequence(out, indent)
	case Record:
		return formatRecord(v, indent)
	case map[string]any:
		return formatRecord(RecordFromMap(v), indent)
	}

	if s, ok := FormatNumber(value); ok {
		return s
	}
	return fmt.Sprint(value)
}

func formatSequence(items []any, indent string) string {
	if nums, ok := NumericSequence(items); ok && len(nums) >= 2 && len(nums) <= 4 {
		return FormatTuple(nums, VectorFields)
	}
	if len(items) == 0 {
		return "[]"
	}

	var b strings.Builder
	for _, item := range items {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString("- ")
		b.WriteString(Format(item, indent+nestIndent))
	}
	return b.String()
}

func formatRecord(r Record, indent string) string {
	if len(r) <= 4 && allNumericValues(r) {
		parts := make([]string, len(r))
		for i, f := range r {
			n, _ := FormatNumber(f.Value)
			parts[i] = f.Key + ": " + n
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}

	var b strings.Builder
	for _, f := range r {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(Format(f.Value, indent+nestIndent))
	}
	return b.String()
}

// FormatTuple renders numbers as "{x: 1, y: 2}" using fields for the names.
// Extra values beyond len(fields) are dropped.
func FormatTuple(values []any, fields []string) string {
	n := len(values)
	if n > len(fields) {
		n = len(fields)
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		s, ok := FormatNumber(values[i])
		if !ok {
			s = fmt.Sprint(values[i])
		}
		parts[i] = fields[i] + ": " + s
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FormatNumber renders a numeric value as the shortest decimal that
// round-trips. It reports false for non-numeric values.
func FormatNumber(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return formatFloat(float64(n), 32), true
	case float64:
		return formatFloat(n, 64), true
	}
	return "", false
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// IsNumber reports whether v is one of the numeric types FormatNumber accepts.
func IsNumber(v any) bool {
	_, ok := FormatNumber(v)
	return ok
}

// NumericSequence returns v as a slice when it is a non-empty sequence whose
// elements are all numbers.
func NumericSequence(v any) ([]any, bool) {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case []float64:
		items = floatsToAny(t)
	case []int:
		items = make([]any, len(t))
		for i, n := range t {
			items[i] = n
		}
	default:
		return nil, false
	}
	if len(items) == 0 {
		return nil, false
	}
	for _, item := range items {
		if !IsNumber(item) {
			return nil, false
		}
	}
	return items, true
}

func allNumericValues(r Record) bool {
	for _, f := range r {
		if !IsNumber(f.Value) {
			return false
		}
	}
	return true
}

func floatsToAny(v []float64) []any {
	out := make([]any, len(v))
	for i, f := range v {
		out[i] = f
	}
	return out
}
