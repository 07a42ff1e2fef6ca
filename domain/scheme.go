package domain

import (
	"strings"

	"github.com/huekit/go-linkify/schemes"
)

// Classification reports which of the schemes package's reference lists
// a scheme belongs to.
type Classification int

const (
	// Unknown schemes appear in none of the reference lists.
	Unknown Classification = iota
	// OfficialScheme is IANA-registered.
	OfficialScheme
	// UnofficialScheme is widely used but not IANA-registered.
	UnofficialScheme
	// NoAuthorityScheme is followed by ":" rather than "://" (mailto,
	// tel, and similar).
	NoAuthorityScheme
)

// ClassifyScheme reports which reference list, if any, scheme belongs
// to. The match is case-insensitive, since a matched URL's scheme text
// keeps whatever case it appeared in.
func ClassifyScheme(scheme string) Classification {
	for _, s := range schemes.NoAuthority {
		if strings.EqualFold(s, scheme) {
			return NoAuthorityScheme
		}
	}

	for _, s := range schemes.Official {
		if strings.EqualFold(s, scheme) {
			return OfficialScheme
		}
	}

	for _, s := range schemes.Unofficial {
		if strings.EqualFold(s, scheme) {
			return UnofficialScheme
		}
	}

	return Unknown
}
