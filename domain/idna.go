package domain

import "golang.org/x/net/idna"

// ToUnicode decodes a punycode ("xn--...") host into its Unicode display
// form, for showing a matched host the way a user typed it rather than
// the wire form a browser would send. A host with nothing to decode is
// returned unchanged.
func ToUnicode(host string) (string, error) {
	return idna.ToUnicode(host)
}

// ToASCII encodes a Unicode host into its punycode wire form.
func ToASCII(host string) (string, error) {
	return idna.ToASCII(host)
}
