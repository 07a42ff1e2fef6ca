package domain_test

import (
	"testing"

	"github.com/huekit/go-linkify/domain"
	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		want domain.Decomposed
	}{
		{"www.example.com", domain.Decomposed{Subdomain: "www", SLD: "example", TLD: "com"}},
		{"example.com", domain.Decomposed{SLD: "example", TLD: "com"}},
		{"a.b.example.co.uk", domain.Decomposed{Subdomain: "a.b", SLD: "example", TLD: "co.uk"}},
		{"example.co.uk", domain.Decomposed{SLD: "example", TLD: "co.uk"}},
		{"localhost", domain.Decomposed{SLD: "localhost"}},
		{"example.invalidtld", domain.Decomposed{SLD: "example.invalidtld"}},
	}

	for _, tt := range tests {
		got := domain.Decompose(tt.host)
		assert.Equalf(t, tt.want, got, "host: %q", tt.host)
	}
}

func TestDecomposer_WithTLDs(t *testing.T) {
	t.Parallel()

	d := domain.New(domain.WithTLDs("internal"))

	got := d.Decompose("service.internal")
	assert.Equal(t, domain.Decomposed{SLD: "service", TLD: "internal"}, got)

	// "com" is no longer a known TLD for this decomposer.
	got = d.Decompose("example.com")
	assert.Equal(t, domain.Decomposed{SLD: "example.com"}, got)
}
