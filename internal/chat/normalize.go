package chat

import "strings"

// Normalize lower-cases raw, drops every rune outside [a-z0-9] and whitespace,
// and trims the result. It is idempotent.
func Normalize(raw string) string {
	lowered := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case isSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.TrimFunc(b.String(), isSpace)
}

// isSpace matches the ECMAScript whitespace and line terminator set. It
// differs from unicode.IsSpace on U+0085 (not space) and U+FEFF (space).
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00A0', '\u1680', '\u2028', '\u2029', '\u202F', '\u205F', '\u3000', '\uFEFF':
		return true
	}
	return r >= '\u2000' && r <= '\u200A'
}
