// Package linkify extracts URLs and email addresses from plain text with
// a hand-written, single-pass scanner rather than a regular expression,
// so link boundaries in ambiguous text ("(see http://a.org/)", a
// sentence-ending ".", an "@" that might be userinfo or an email) are
// resolved by the same context-sensitive rules a careful reader would
// apply, not by whatever a backtracking engine happens to settle on.
package linkify

import "github.com/huekit/go-linkify/internal/scanner"

// Kind identifies what a Match represents.
type Kind int

const (
	// KindURL marks a matched URL, schemed or schemeless.
	KindURL Kind = iota
	// KindEmail marks a matched email address.
	KindEmail
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindEmail:
		return "email"
	default:
		return "unknown"
	}
}

func fromInternalKind(k scanner.Kind) Kind {
	if k == scanner.KindEmail {
		return KindEmail
	}

	return KindURL
}

// Match is one non-overlapping hit found in a scan. Text borrows
// directly from the scanned input; no copy is made.
type Match struct {
	Kind  Kind
	Start int
	End   int
	Text  string
}

func fromInternalMatch(m scanner.Match) Match {
	return Match{
		Kind:  fromInternalKind(m.Kind),
		Start: m.Start,
		End:   m.End,
		Text:  m.Text,
	}
}

// MatchIter is a lazy, forward-only sequence of matches over one input
// string. Each call to Next advances it to the next match; stopping
// early — simply letting the iterator be discarded — is the entire
// cancellation story, there is nothing to close or release.
type MatchIter struct {
	it *scanner.Iter
}

// Next returns the next match and true, or the zero Match and false
// once the input is exhausted.
func (mi *MatchIter) Next() (Match, bool) {
	m, ok := mi.it.Next()
	if !ok {
		return Match{}, false
	}

	return fromInternalMatch(m), true
}
