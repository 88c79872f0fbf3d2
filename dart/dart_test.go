package dart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubspecParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pubspec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: my_app
version: 1.0.0
description: An example Flutter app
homepage: https://example.com
repository: https://github.com/example/my_app

dependencies:
  http: ^1.0.0
  provider:
    version: ^6.0.0

dev_dependencies:
  test: ^1.24.0
`), 0o644))

	pds := pubspecParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "my_app", pd.Name)
	assert.Equal(t, "1.0.0", pd.Version)
	assert.Equal(t, "https://example.com", pd.HomepageURL)
	assert.Equal(t, "pkg:pub/my_app@1.0.0", pd.Purl)
	require.Len(t, pd.Dependencies, 3)

	byPurl := map[string]bool{}
	for _, d := range pd.Dependencies {
		byPurl[d.Purl] = d.IsOptional
	}
	assert.False(t, byPurl["pkg:pub/http"])
	assert.True(t, byPurl["pkg:pub/test"])
}

func TestPubspecLockParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pubspec.lock")
	require.NoError(t, os.WriteFile(path, []byte(`
packages:
  http:
    dependency: "direct main"
    version: "1.1.0"
    source: hosted
  test:
    dependency: "direct dev"
    version: "1.24.0"
    source: hosted
  collection:
    dependency: "transitive"
    version: "1.18.0"
    source: hosted
`), 0o644))

	pds := pubspecLockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 3)

	byPurl := map[string]bool{}
	for _, d := range pds[0].Dependencies {
		byPurl[d.Purl] = d.IsDirect
	}
	assert.True(t, byPurl["pkg:pub/http@1.1.0"])
	assert.False(t, byPurl["pkg:pub/collection@1.18.0"])
}
