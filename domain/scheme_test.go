package domain_test

import (
	"testing"

	"github.com/huekit/go-linkify/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme string
		want   domain.Classification
	}{
		{"https", domain.OfficialScheme},
		{"HTTPS", domain.OfficialScheme},
		{"mailto", domain.NoAuthorityScheme},
		{"slack", domain.UnofficialScheme},
		{"totally-made-up", domain.Unknown},
	}

	for _, tt := range tests {
		got := domain.ClassifyScheme(tt.scheme)
		assert.Equalf(t, tt.want, got, "scheme: %q", tt.scheme)
	}
}
