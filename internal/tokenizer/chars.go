package tokenizer

import "unicode"

// isIdentifierStart implements spec.md §4.5.3: letter, '_', '{', or '}'.
func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '{' || r == '}'
}

// isIdentifierContinuation implements spec.md §4.5.3: letter, digit, '_',
// '-', '{', or '}'.
func isIdentifierContinuation(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '{' || r == '}'
}

// isNumberStart implements spec.md §4.5.3: a digit, or '.' directly
// followed by a digit.
func isNumberStart(current, next rune) bool {
	if unicode.IsDigit(current) {
		return true
	}
	return current == '.' && unicode.IsDigit(next)
}

// isHexDigit implements spec.md §4.5.3.
func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// escapeFor implements the escape table of spec.md §4.5.9.
func escapeFor(r rune) (rune, bool) {
	switch r {
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	default:
		return 0, false
	}
}
