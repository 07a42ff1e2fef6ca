package scanner

import "unicode"

// isEmailLocalChar reports whether c is valid in an email local-part
// (the part before "@"). It is based on RFC 5321 "Atom" / RFC 5322
// "atext", extended by RFC 6531 for internationalized addresses.
//
// International characters are allowed, but Unicode whitespace (NBSP,
// EM SPACE, IDEOGRAPHIC SPACE, ...) is excluded so it keeps acting as a
// word boundary.
func isEmailLocalChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '!' || c == '#' || c == '$' || c == '%' || c == '&' || c == '\'' ||
		c == '*' || c == '+' || c == '-' || c == '/' || c == '=' || c == '?' ||
		c == '^' || c == '_' || c == '`' || c == '{' || c == '|' || c == '}' || c == '~':
		return true
	default:
		return c >= 0x80 && !isUnicodeWhitespace(c)
	}
}

// isSchemeChar reports whether c may appear after the first character of
// a URL scheme. Schemes must start with a letter; isAlpha is used for
// that first-character check.
func isSchemeChar(c rune) bool {
	return isAlpha(c) || isDigit(c) || c == '+' || c == '-' || c == '.'
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// isHex reports whether c is an ASCII hexadecimal digit.
func isHex(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isUnicodeWhitespace reports whether c is whitespace under the Unicode
// White_Space property. unicode.IsSpace covers exactly the code points the
// upstream scanner treats as word boundaries: NBSP (U+00A0), OGHAM SPACE
// MARK (U+1680), EM SPACE (U+2003), LINE/PARAGRAPH SEPARATOR (U+2028,
// U+2029), NARROW NO-BREAK SPACE (U+202F), MEDIUM MATHEMATICAL SPACE
// (U+205F), and IDEOGRAPHIC SPACE (U+3000) among them.
func isUnicodeWhitespace(c rune) bool {
	return unicode.IsSpace(c)
}
