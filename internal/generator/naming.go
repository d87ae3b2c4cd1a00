package generator

import (
	"strings"
	"unicode"
)

// PascalCase upper-cases the first letter and every letter that follows a
// '-' or '_' separator, dropping the separators: "enemy_ai" -> "EnemyAi".
func PascalCase(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CamelCase is PascalCase with a lower-case first letter.
func CamelCase(s string) string {
	p := []rune(PascalCase(s))
	if len(p) == 0 {
		return ""
	}
	p[0] = unicode.ToLower(p[0])
	return string(p)
}

// DisplayName splits a camel-case or snake-case identifier into words for
// inspector labels: "glowColor" -> "Glow Color".
func DisplayName(s string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()

	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}

// PropertyName is the shader property name for a field: "_" + PascalCase.
func PropertyName(s string) string {
	return "_" + PascalCase(s)
}
