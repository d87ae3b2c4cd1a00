package unityyaml

import "strings"

// BaseFileID is the first file ID handed out in every document.
const BaseFileID int64 = 1000000

// Preamble opens every Unity YAML document.
const Preamble = "%YAML 1.1\n%TAG !u! tag:unity3d.com,2011:\n"

// Graph allocates file IDs and collects the objects of a single document.
// A Graph must not be shared between documents or goroutines.
type Graph struct {
	next    int64
	objects []*Object
}

// NewGraph returns a Graph whose first allocation is BaseFileID.
func NewGraph() *Graph {
	return &Graph{next: BaseFileID}
}

// Allocate returns the next file ID. IDs are strictly increasing.
func (g *Graph) Allocate() int64 {
	id := g.next
	g.next++
	return id
}

// Allocated returns how many IDs have been handed out.
func (g *Graph) Allocated() int {
	return int(g.next - BaseFileID)
}

// Add appends objects in document order.
func (g *Graph) Add(objects ...*Object) {
	g.objects = append(g.objects, objects...)
}

// Objects returns the collected objects in document order.
func (g *Graph) Objects() []*Object {
	return g.objects
}

// Document renders the collected objects.
func (g *Graph) Document() string {
	return Document(g.objects...)
}

// Document renders the preamble followed by each object block and a
// trailing newline.
func Document(objects ...*Object) string {
	var b strings.Builder
	b.WriteString(Preamble)
	for _, o := range objects {
		b.WriteString(o.String())
		b.WriteString("\n")
	}
	return b.String()
}
