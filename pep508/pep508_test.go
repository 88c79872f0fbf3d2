package pep508

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimple(t *testing.T) {
	r, ok := Parse("requests>=2.0,<3.0")
	require.True(t, ok)
	assert.Equal(t, "requests", r.Name)
	assert.Equal(t, ">=2.0,<3.0", r.Specifier)
}

func TestParseExtrasAndMarker(t *testing.T) {
	r, ok := Parse(`requests[socks,security]>=2.0; python_version >= "3.6"`)
	require.True(t, ok)
	assert.Equal(t, "requests", r.Name)
	assert.Equal(t, []string{"socks", "security"}, r.Extras)
	assert.Equal(t, ">=2.0", r.Specifier)
	assert.Equal(t, `python_version >= "3.6"`, r.Marker)
}

func TestParseNameAtURL(t *testing.T) {
	r, ok := Parse("mypkg @ https://example.com/mypkg.whl")
	require.True(t, ok)
	assert.True(t, r.IsNameAtURL)
	assert.Equal(t, "https://example.com/mypkg.whl", r.URL)
}

func TestParseEmpty(t *testing.T) {
	_, ok := Parse("   ")
	assert.False(t, ok)
}
