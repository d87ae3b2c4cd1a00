package unityyaml

import (
	"strconv"
	"strings"
)

// Object is one "--- !u!<class> &<id>" block of a document.
type Object struct {
	ID        int64
	ClassID   int
	ClassName string
	// Owner is the file ID of the GameObject this object belongs to, or 0.
	Owner int64

	lines []string
}

// NewObject creates an empty block.
func NewObject(id int64, classID int, className string) *Object {
	return &Object{ID: id, ClassID: classID, ClassName: className}
}

// Line appends a raw body line. The caller supplies the indentation.
func (o *Object) Line(line string) *Object {
	o.lines = append(o.lines, line)
	return o
}

// Value appends "  key: <formatted value>".
func (o *Object) Value(key string, value any) *Object {
	return o.Line(PropertyLine("  ", key, value))
}

// Ref appends "  key: {fileID: id}".
func (o *Object) Ref(key string, id int64) *Object {
	return o.Line("  " + key + ": " + FileRef(id))
}

// Fields appends every entry of r with Value.
func (o *Object) Fields(r Record) *Object {
	for _, f := range r {
		o.Value(f.Key, f.Value)
	}
	return o
}

// String renders the block header, the class name line and the body.
func (o *Object) String() string {
	var b strings.Builder
	b.WriteString("--- !u!")
	b.WriteString(strconv.Itoa(o.ClassID))
	b.WriteString(" &")
	b.WriteString(strconv.FormatInt(o.ID, 10))
	b.WriteString("\n")
	b.WriteString(o.ClassName)
	b.WriteString(":")
	for _, l := range o.lines {
		b.WriteString("\n")
		b.WriteString(l)
	}
	return b.String()
}

// FileRef renders a local object reference.
func FileRef(id int64) string {
	return "{fileID: " + strconv.FormatInt(id, 10) + "}"
}

// PropertyLine renders "<indent>key: value". A block value starts on the
// next line, nested one level below indent.
func PropertyLine(indent, key string, value any) string {
	formatted := Format(value, indent+nestIndent)
	if strings.HasPrefix(formatted, "\n") {
		return indent + key + ":" + formatted
	}
	return indent + key + ": " + formatted
}
