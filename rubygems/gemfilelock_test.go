package rubygems

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockParserGemSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Gemfile.lock")
	require.NoError(t, os.WriteFile(path, []byte(`GEM
  remote: https://rubygems.org/
  specs:
    rails (7.1.0)
      actionpack (= 7.1.0)
    actionpack (7.1.0)

PLATFORMS
  x86_64-linux

DEPENDENCIES
  rails (~> 7.1)!

BUNDLED WITH
   2.4.10
`), 0o644))

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	require.Len(t, pd.Dependencies, 3)

	var pinnedDirect bool
	for _, d := range pd.Dependencies {
		if d.Purl == "pkg:gem/rails" && d.IsDirect {
			pinnedDirect = d.IsPinned
		}
	}
	assert.True(t, pinnedDirect)
	assert.Equal(t, []string{"x86_64-linux"}, pd.ExtraData["platforms"])
	assert.Equal(t, "2.4.10", pd.ExtraData["bundler_version"])
}

func TestLockParserGitSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Gemfile.lock")
	require.NoError(t, os.WriteFile(path, []byte(`GIT
  remote: https://github.com/example/forked-gem.git
  revision: abcdef1234567890
  branch: main
  specs:
    forked-gem (1.0.0)

DEPENDENCIES
  forked-gem!
`), 0o644))

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)

	var found bool
	for _, d := range pds[0].Dependencies {
		if d.Purl == "pkg:gem/forked-gem@1.0.0" {
			found = true
			require.NotNil(t, d.ExtraData)
			assert.Equal(t, "GIT", d.ExtraData["source_type"])
			assert.Equal(t, "main", d.ExtraData["branch"])
		}
	}
	assert.True(t, found)
}

func TestLockParserPathSectionPromotesPrimary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Gemfile.lock")
	require.NoError(t, os.WriteFile(path, []byte(`PATH
  remote: .
  specs:
    my-local-gem (0.1.0)

DEPENDENCIES
  my-local-gem!
`), 0o644))

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "my-local-gem", pds[0].Name)
	assert.Equal(t, "0.1.0", pds[0].Version)
	require.Len(t, pds[0].Dependencies, 1)
	assert.True(t, pds[0].Dependencies[0].IsPinned)
}
