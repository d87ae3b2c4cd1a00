// Package guid derives reproducible 32-character asset GUIDs from names.
//
// The hash is a 32-bit string fold and is not collision resistant. Two
// human-chosen asset names are unlikely to collide, which is all the
// generated .meta files need: regenerating an unchanged asset must keep its
// GUID so existing references survive.
package guid

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// Length is the number of hex digits in a derived GUID.
const Length = 32

// Derive maps key to a lowercase hex string of exactly Length characters.
// Identical keys always produce identical output.
func Derive(key string) string {
	var acc int32
	for _, code := range utf16.Encode([]rune(key)) {
		acc = (acc << 5) - acc + int32(code)
	}

	v := int64(acc)
	if v < 0 {
		v = -v
	}

	hex := strconv.FormatInt(v, 16)
	if len(hex) < 8 {
		hex = strings.Repeat("0", 8-len(hex)) + hex
	}

	var b strings.Builder
	b.Grow(Length + len(hex))
	for b.Len() < Length {
		b.WriteString(hex)
	}
	return b.String()[:Length]
}

// ForAsset returns the GUID for an asset file name such as "Enemy.prefab".
func ForAsset(name, ext string) string {
	return Derive(name + ext)
}
