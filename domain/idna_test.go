package domain_test

import (
	"testing"

	"github.com/huekit/go-linkify/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToASCIIToUnicodeRoundTrip(t *testing.T) {
	t.Parallel()

	ascii, err := domain.ToASCII("例え.テスト")
	require.NoError(t, err)
	assert.Regexp(t, `^xn--`, ascii)

	back, err := domain.ToUnicode(ascii)
	require.NoError(t, err)
	assert.Equal(t, "例え.テスト", back)
}

func TestToUnicode_PlainASCIIHost(t *testing.T) {
	t.Parallel()

	got, err := domain.ToUnicode("example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", got)
}
