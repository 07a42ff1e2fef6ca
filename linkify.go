package linkify

import "github.com/huekit/go-linkify/internal/scanner"

// Finder scans text for URLs and email addresses according to the
// options it was built with.
type Finder struct {
	cfg scanner.Config
}

// New builds a Finder with the given options applied over the default
// configuration: both kinds enabled, a scheme required for URLs, IRI
// hosts allowed, and email domains required to contain a dot.
func New(opts ...Option) *Finder {
	f := &Finder{cfg: scanner.NewConfig()}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// FindAll scans input and returns every non-overlapping match, in the
// order they appear. It is a convenience wrapper around Matches for
// callers who want the whole result at once.
func (f *Finder) FindAll(input string) []Match {
	it := f.Matches(input)

	var matches []Match

	for {
		m, ok := it.Next()
		if !ok {
			break
		}

		matches = append(matches, m)
	}

	return matches
}

// Matches returns a lazy iterator over input's matches.
func (f *Finder) Matches(input string) *MatchIter {
	return &MatchIter{it: scanner.NewIter(input, f.cfg)}
}
