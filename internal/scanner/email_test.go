package scanner_test

import (
	"testing"

	"github.com/huekit/go-linkify/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_EmailLocalPartRewind(t *testing.T) {
	t.Parallel()

	cfg := scanner.NewConfig()

	tests := []struct {
		input string
		want  []string
	}{
		{"bob@example.com", []string{"bob@example.com"}},
		{"a..b@example.com", []string{"b@example.com"}},
		{"foo.@example.com", nil},
		{".@example.com", nil},
		{".foo@example.com", []string{"foo@example.com"}},
		{"a@b-.", nil},
		{"a@b.", nil},
	}

	for _, tt := range tests {
		got := scanner.Scan(tt.input, cfg)
		assert.Equalf(t, tt.want, textsOf(got), "input: %q", tt.input)
	}
}

func TestScan_EmailDomainMustHaveDot(t *testing.T) {
	t.Parallel()

	cfg := scanner.NewConfig()

	assert.Empty(t, scanner.Scan("bob@localhost", cfg))

	cfg.EmailDomainMustHaveDot = false

	got := scanner.Scan("bob@localhost", cfg)
	require.Len(t, got, 1)
	assert.Equal(t, "bob@localhost", got[0].Text)
}

func TestScan_EmailKindDisabled(t *testing.T) {
	t.Parallel()

	cfg := scanner.NewConfig()
	cfg.Emails = false

	assert.Empty(t, scanner.Scan("bob@example.com", cfg))
}
