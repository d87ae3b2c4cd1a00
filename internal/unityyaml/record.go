// Package unityyaml builds Unity's YAML serialization: property value
// formatting, per-document file ID allocation and GameObject hierarchies.
//
// Unity documents are not generic YAML. Every object block is introduced by
// a "--- !u!<classID> &<fileID>" header and objects reference each other with
// {fileID: N}. This package only writes that format; it never parses it.
package unityyaml

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Field is a single key/value entry of a Record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered string-keyed mapping. Spec files are decoded into
// Records so generated documents keep the author's property order and
// regenerate byte-for-byte.
type Record []Field

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key, or appends a new entry.
func (r *Record) Set(key string, value any) {
	for i := range *r {
		if (*r)[i].Key == key {
			(*r)[i].Value = value
			return
		}
	}
	*r = append(*r, Field{Key: key, Value: value})
}

// Keys returns the keys in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// RecordFromMap converts an unordered map into a Record sorted by key.
func RecordFromMap(m map[string]any) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := make(Record, 0, len(keys))
	for _, k := range keys {
		r = append(r, Field{Key: k, Value: normalize(m[k])})
	}
	return r
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return RecordFromMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}

// UnmarshalYAML decodes a YAML mapping while keeping key order.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	v, err := FromNode(node)
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case Record:
		*r = t
	case nil:
		*r = nil
	default:
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, nodeKind(node))
	}
	return nil
}

// FromNode converts a YAML node into the formatter's value domain:
// nil, bool, int, int64, uint64, float64, string, []any or Record.
func FromNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return FromNode(node.Content[0])
	case yaml.AliasNode:
		return FromNode(node.Alias)
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return v, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := FromNode(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(Record, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := FromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out.Set(node.Content[i].Value, v)
		}
		return out, nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", node.Line)
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	default:
		return "an unsupported node"
	}
}
