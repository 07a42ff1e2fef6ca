package scanner

import "unicode/utf8"

// scanEmail tries to match an email address anchored at the "@" found at
// byte offset p in input. It rewinds to find the local part, then hands
// the remainder of the string to findAuthorityEnd to validate the domain.
// floor bounds the rewind so it never reclaims bytes an earlier match
// already owns.
func scanEmail(input string, p, floor int, cfg Config) (Match, bool) {
	l := rewindEmailLocal(input, p, floor)

	for l < p && input[l] == '.' {
		l++
	}

	if l >= p {
		return Match{}, false
	}

	end, lastDot, ok := findAuthorityEnd(input[p+1:], false, cfg.EmailDomainMustHaveDot, false, true)
	if !ok {
		return Match{}, false
	}

	if cfg.EmailDomainMustHaveDot && lastDot == -1 {
		return Match{}, false
	}

	matchEnd := p + 1 + end

	return Match{Kind: KindEmail, Start: l, End: matchEnd, Text: input[l:matchEnd]}, true
}

// rewindEmailLocal walks input backward from p (the byte offset of an
// "@") over the email local part: atext characters, plus single dots
// that separate two runs of atext ("dot-atom", RFC 5321 §4.1.2). A dot
// can never be the rightmost character of the local part (the "@" would
// immediately follow it), and two dots can never be adjacent; either
// case stops the rewind without consuming the offending dot, which is
// how inputs like "foo.@x.com" and "a..b@x.com" end up rejecting or
// truncating the local part instead of matching it whole.
func rewindEmailLocal(input string, p, floor int) int {
	i := p
	dotAllowed := false

	for i > floor {
		r, size := utf8.DecodeLastRuneInString(input[:i])

		switch {
		case isEmailLocalChar(r):
			i -= size
			dotAllowed = true

		case r == '.' && dotAllowed:
			i -= size
			dotAllowed = false

		default:
			return i
		}
	}

	return i
}
