// Package domain decomposes a matched URL or email host into its
// subdomain, second-level domain, and top-level domain, and offers
// display-form IDN round-tripping. It sits entirely downstream of the
// scanning core: nothing in internal/scanner consults it, and a caller
// who never imports it pays nothing for it.
package domain

import (
	"index/suffixarray"
	"strings"
	"sync"

	"github.com/huekit/go-linkify/tlds"
)

// Decomposed holds the three parts a host splits into once its TLD has
// been located. Subdomain is empty for a bare "example.com". When the host
// has no recognizable TLD at all, the whole input is returned unsplit in
// SLD, with Subdomain and TLD both empty.
type Decomposed struct {
	Subdomain string
	SLD       string
	TLD       string
}

// Decomposer splits a host into Subdomain/SLD/TLD components using a
// suffix array built over a set of known TLDs. It works backward through
// the dot-separated parts of a host, from the rightmost label inward, so
// that multi-label suffixes ("co.uk") are preferred over a prefix match
// on just the last label.
type Decomposer struct {
	sa *suffixarray.Index
}

// Option configures a Decomposer built with New.
type Option func(*Decomposer)

// New builds a Decomposer over the package's curated TLD lists
// (tlds.Official and tlds.Pseudo). Pass WithTLDs to decompose against a
// different or additional set.
func New(opts ...Option) *Decomposer {
	d := &Decomposer{}

	all := make([]string, 0, len(tlds.Official)+len(tlds.Pseudo))
	all = append(all, tlds.Official...)
	all = append(all, tlds.Pseudo...)

	d.sa = buildIndex(all)

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithTLDs replaces the default TLD set with the given list.
func WithTLDs(tlds ...string) Option {
	return func(d *Decomposer) {
		d.sa = buildIndex(tlds)
	}
}

func buildIndex(list []string) *suffixarray.Index {
	return suffixarray.New([]byte("\x00" + strings.Join(list, "\x00") + "\x00"))
}

// Decompose splits host into Subdomain, SLD, and TLD. A host with no dot,
// or no label suffix found in the Decomposer's TLD set, comes back with
// the whole string in SLD and the other two fields empty.
func (d *Decomposer) Decompose(host string) Decomposed {
	parts := strings.Split(host, ".")

	if len(parts) <= 1 {
		return Decomposed{SLD: host}
	}

	offset := d.findTLDOffset(parts)
	if offset < 0 {
		return Decomposed{SLD: host}
	}

	return Decomposed{
		Subdomain: strings.Join(parts[:offset], "."),
		SLD:       parts[offset],
		TLD:       strings.Join(parts[offset+1:], "."),
	}
}

// findTLDOffset walks parts right to left, growing the candidate TLD one
// label at a time ("uk", then "co.uk", then "example.co.uk", ...) and
// stopping as soon as a candidate is no longer present in the suffix
// index. The SLD position returned is the index just left of the last
// candidate that still matched, or -1 if none matched or all of them did.
func (d *Decomposer) findTLDOffset(parts []string) int {
	offset := -1

	for i := len(parts) - 1; i >= 0; i-- {
		candidate := strings.Join(parts[i:], ".")

		// Entries are "\x00"-delimited in the index, so only a whole entry
		// matches, never a fragment of one ("om" inside "com").
		if len(d.sa.Lookup([]byte("\x00"+candidate+"\x00"), -1)) == 0 {
			break
		}

		offset = i - 1
	}

	return offset
}

var (
	defaultOnce       sync.Once
	defaultDecomposer *Decomposer
)

// Decompose splits host using a package-level Decomposer built once over
// the default TLD lists. Most callers want this instead of constructing
// their own Decomposer.
func Decompose(host string) Decomposed {
	defaultOnce.Do(func() {
		defaultDecomposer = New()
	})

	return defaultDecomposer.Decompose(host)
}
