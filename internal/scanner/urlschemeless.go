package scanner

import "unicode/utf8"

// scanSchemelessURL tries to match a bare "example.com/path"-style URL
// anchored at the "." found at byte offset p in input. It only runs when
// the configuration allows URLs without a scheme. minStart is the
// dispatcher's current lower bound (the end of the previous match, or 0);
// the rewind never crosses it, which is what keeps this scanner from
// reclaiming bytes another match already owns.
func scanSchemelessURL(input string, p int, cfg Config, minStart int) (Match, bool) {
	h := rewindHost(input, p, cfg, minStart)
	if h >= p {
		return Match{}, false
	}

	// A host directly preceded by "@" is the domain of an email address,
	// not a standalone URL — leave it for the email sub-scanner (tests
	// like "example.com@example.com" must not also yield a bare-domain
	// URL match for the part after the "@").
	if h > 0 && input[h-1] == '@' {
		return Match{}, false
	}

	end, _, ok := findAuthorityEnd(input[h:], false, true, true, cfg.URLCanBeIRI)
	if !ok {
		return Match{}, false
	}

	authorityEnd := h + end

	bodyEnd := extendBody(input, authorityEnd, cfg)
	trimmed := trimTail(input, h, bodyEnd)

	if trimmed <= h {
		return Match{}, false
	}

	return Match{Kind: KindURL, Start: h, End: trimmed, Text: input[h:trimmed]}, true
}

// rewindHost walks input backward from p over reg-name characters
// (letters, digits, "-", ".", and non-ASCII when IRIs are allowed) to
// find where a bare host might start, never crossing minStart. Label
// validity (no leading/trailing hyphen, no empty label, a TLD-shaped
// last label) is left entirely to findAuthorityEnd's forward scan over
// the resulting candidate; the rewind itself is a plain maximal munch.
func rewindHost(input string, p int, cfg Config, minStart int) int {
	i := p

	for i > minStart {
		r, size := utf8.DecodeLastRuneInString(input[minStart:i])

		switch {
		case isAlpha(r), isDigit(r), r == '-', r == '.':
			i -= size
			continue
		case r >= 0x80 && cfg.URLCanBeIRI && !isUnicodeWhitespace(r):
			i -= size
			continue
		}

		break
	}

	return i
}
