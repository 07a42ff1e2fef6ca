package scanner

import "unicode/utf8"

// scanSchemedURL tries to match a URL anchored at the "://" found at byte
// offset p in input (input[p] == ':', input[p:p+3] == "://"). It rewinds
// to find the scheme, scans the authority that follows the "://", then
// extends through path/query/fragment and trims trailing punctuation.
// floor bounds the scheme rewind so it never reclaims bytes an earlier
// match already owns.
func scanSchemedURL(input string, p, floor int, cfg Config) (Match, bool) {
	s := rewindScheme(input, p, floor)
	if s < 0 {
		return Match{}, false
	}

	authorityStart := p + 3

	end, _, ok := findAuthorityEnd(input[authorityStart:], true, false, true, cfg.URLCanBeIRI)
	if !ok {
		return Match{}, false
	}

	bodyEnd := extendBody(input, authorityStart+end, cfg)
	trimmed := trimTail(input, authorityStart, bodyEnd)

	// A bare "scheme://" with nothing following it isn't a link.
	if trimmed <= authorityStart {
		return Match{}, false
	}

	return Match{Kind: KindURL, Start: s, End: trimmed, Text: input[s:trimmed]}, true
}

// rewindScheme walks input backward from p (the byte offset of the ":" in
// "://") over scheme characters (letters, digits, "+", "-", ".") to find
// where the scheme starts.
//
// A scheme must start with a letter. When the maximal backward run
// doesn't — e.g. a leading "1." or "." dragged in by the rewind, since
// "." and digits are themselves scheme characters — the run is not
// simply rejected: text like "1.http://x" and ".http://x" are common
// (a sentence-ending dot, a list number) and should still yield the
// "http" scheme. So when the run's first character isn't a letter, fall
// back to whatever follows the run's last dot, if that starts with a
// letter. A run with no dot at all and no leading letter (e.g. "1abc",
// "123", "+") has no such fallback and is rejected outright.
func rewindScheme(input string, p, floor int) int {
	b := p

	for b > floor {
		r, size := utf8.DecodeLastRuneInString(input[:b])
		if !isSchemeChar(r) {
			break
		}

		b -= size
	}

	if b >= p {
		return -1
	}

	first, _ := utf8.DecodeRuneInString(input[b:])
	if isAlpha(first) {
		return b
	}

	lastDot := -1

	for i := b; i < p; i++ {
		if input[i] == '.' {
			lastDot = i
		}
	}

	if lastDot == -1 {
		return -1
	}

	candidate := lastDot + 1
	if candidate >= p {
		return -1
	}

	r, _ := utf8.DecodeRuneInString(input[candidate:])
	if !isAlpha(r) {
		return -1
	}

	return candidate
}

// extendBody consumes a path/query/fragment starting at byte offset
// start, stopping at the first terminator. Matching () [] {} are
// tracked per pair; a closing bracket with nothing open to match
// terminates the scan immediately, leaving the closer as surrounding
// text rather than URL content.
func extendBody(input string, start int, cfg Config) int {
	i := start

	var parenDepth, bracketDepth, braceDepth int

loop:
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])

		switch {
		case r <= 0x20 || (r >= 0x7f && r <= 0x9f):
			break loop

		case r >= 0x80:
			if !cfg.URLCanBeIRI || isUnicodeWhitespace(r) {
				break loop
			}

		case r == '<' || r == '>' || r == '"' || r == '`':
			break loop

		case r == '|':
			break loop

		case r == '(':
			parenDepth++

		case r == ')':
			if parenDepth == 0 {
				break loop
			}

			parenDepth--

		case r == '[':
			bracketDepth++

		case r == ']':
			if bracketDepth == 0 {
				break loop
			}

			bracketDepth--

		case r == '{':
			braceDepth++

		case r == '}':
			if braceDepth == 0 {
				break loop
			}

			braceDepth--
		}

		i += size
	}

	return i
}

// trimTail shrinks [bodyStart, bodyEnd) from the right while the last
// byte is ordinary trailing punctuation, a closing bracket that still
// has an unmatched opener earlier in the body, or a straight quote with
// no partner left in the body. Each check re-examines the shrunk body,
// so e.g. "'''" (three quotes) settles at "''" (a matched pair) with the
// odd one trimmed.
func trimTail(input string, bodyStart, bodyEnd int) int {
	for bodyEnd > bodyStart {
		last, size := utf8.DecodeLastRuneInString(input[bodyStart:bodyEnd])

		switch last {
		case '.', ',', ':', '!', ';', '?', '*':
			bodyEnd -= size
			continue

		case ')':
			if netOf(input[bodyStart:bodyEnd], '(', ')') > 0 {
				bodyEnd -= size
				continue
			}

		case ']':
			if netOf(input[bodyStart:bodyEnd], '[', ']') > 0 {
				bodyEnd -= size
				continue
			}

		case '}':
			if netOf(input[bodyStart:bodyEnd], '{', '}') > 0 {
				bodyEnd -= size
				continue
			}

		case '\'':
			if countOf(input[bodyStart:bodyEnd], '\'')%2 != 0 {
				bodyEnd -= size
				continue
			}
		}

		break
	}

	return bodyEnd
}

// netOf returns the count of open minus the count of close in s.
func netOf(s string, open, close rune) int {
	n := 0

	for _, c := range s {
		switch c {
		case open:
			n++
		case close:
			n--
		}
	}

	return n
}

// countOf returns the number of occurrences of target in s.
func countOf(s string, target rune) int {
	n := 0

	for _, c := range s {
		if c == target {
			n++
		}
	}

	return n
}
