package linkify_test

import (
	"testing"

	linkify "github.com/huekit/go-linkify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textsOf(matches []linkify.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text
	}

	return out
}

func TestFindAll_Defaults(t *testing.T) {
	t.Parallel()

	f := linkify.New()

	got := f.FindAll("see http://example.org/ and mail bob@example.com")
	require.Len(t, got, 2)
	assert.Equal(t, linkify.KindURL, got[0].Kind)
	assert.Equal(t, "http://example.org/", got[0].Text)
	assert.Equal(t, linkify.KindEmail, got[1].Kind)
	assert.Equal(t, "bob@example.com", got[1].Text)
}

func TestFindAll_AllowSchemeless(t *testing.T) {
	t.Parallel()

	f := linkify.New(linkify.AllowSchemeless())

	got := f.FindAll("visit example.org today")
	assert.Equal(t, []string{"example.org"}, textsOf(got))
}

func TestFindAll_RequireScheme(t *testing.T) {
	t.Parallel()

	f := linkify.New()

	got := f.FindAll("visit example.org today")
	assert.Empty(t, got)
}

func TestFindAll_ASCIIOnly(t *testing.T) {
	t.Parallel()

	f := linkify.New(linkify.ASCIIOnly())

	assert.Empty(t, f.FindAll("http://例え.テスト/"))
}

func TestFindAll_AllowBareEmailDomain(t *testing.T) {
	t.Parallel()

	f := linkify.New(linkify.AllowBareEmailDomain())

	got := f.FindAll("bob@localhost")
	require.Len(t, got, 1)
	assert.Equal(t, "bob@localhost", got[0].Text)
}

func TestFindAll_WithKinds(t *testing.T) {
	t.Parallel()

	f := linkify.New(linkify.WithKinds(linkify.KindEmail))

	got := f.FindAll("http://example.org/ bob@example.com")
	require.Len(t, got, 1)
	assert.Equal(t, linkify.KindEmail, got[0].Kind)
}

func TestMatches_LazyIterator(t *testing.T) {
	t.Parallel()

	f := linkify.New()
	it := f.Matches("http://a.org/ http://b.org/ http://c.org/")

	m, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "http://a.org/", m.Text)

	// Stop after one: the rest of the input is simply never visited.
	_ = it
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "url", linkify.KindURL.String())
	assert.Equal(t, "email", linkify.KindEmail.String())
}
