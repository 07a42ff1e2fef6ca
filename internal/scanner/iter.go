package scanner

// Iter is the incremental form of Scan: each call to Next advances the
// cursor to the next match and returns it, instead of computing the
// whole slice up front. Scan is implemented in terms of Iter.
type Iter struct {
	input  string
	cfg    Config
	cursor int
	// floor is the end of the most recently emitted match (0 before the
	// first one). No sub-scanner's backward rewind is allowed to cross
	// it, which is what keeps matches non-overlapping: a trigger found
	// ahead of floor must not reclaim bytes a previous match already
	// owns, even if those bytes would otherwise look like more of a
	// local part, scheme, or host.
	floor int
}

// NewIter returns an Iter starting at the beginning of input.
func NewIter(input string, cfg Config) *Iter {
	return &Iter{input: input, cfg: cfg}
}

// Next returns the next match and true, or the zero Match and false once
// the input is exhausted. There is no suspension point inside it: each
// call does a bounded amount of work and returns.
func (it *Iter) Next() (Match, bool) {
	for it.cursor < len(it.input) {
		m, ok := tryMatch(it.input, it.cursor, it.floor, it.cfg)
		if ok {
			it.cursor = m.End
			it.floor = m.End

			return m, true
		}

		it.cursor = nextCodePoint(it.input, it.cursor)
	}

	return Match{}, false
}
