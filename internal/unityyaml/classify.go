package unityyaml

import "strings"

// ValueClass is the category a material property is serialized under.
type ValueClass int

const (
	// Scalar properties go to m_Floats.
	Scalar ValueClass = iota
	// Vector properties go to m_Colors as {x, y, z, w}.
	Vector
	// Color properties go to m_Colors as {r, g, b, a}.
	Color
)

func (c ValueClass) String() string {
	switch c {
	case Vector:
		return "vector"
	case Color:
		return "color"
	default:
		return "scalar"
	}
}

// Classify decides how a named property value is serialized:
//
//   - color when the name contains "color" (any case) or the value is a
//     4-element numeric sequence,
//   - vector when the value is a 2- or 3-element numeric sequence,
//   - scalar otherwise.
//
// A 4-element property that is not a color (a quaternion, say) is still
// classified as a color.
func Classify(name string, value any) ValueClass {
	if strings.Contains(strings.ToLower(name), "color") {
		return Color
	}
	nums, ok := NumericSequence(value)
	switch {
	case ok && len(nums) == 4:
		return Color
	case ok && (len(nums) == 2 || len(nums) == 3):
		return Vector
	}
	return Scalar
}
