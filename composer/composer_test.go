package composer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "composer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "acme/my-package",
		"description": "An example package",
		"license": "MIT",
		"homepage": "https://example.com",
		"keywords": ["php", "example"],
		"require": {
			"php": ">=8.1",
			"monolog/monolog": "^3.0"
		},
		"require-dev": {
			"phpunit/phpunit": "^10.0"
		}
	}`), 0o644))

	pds := manifestParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "acme", pd.Namespace)
	assert.Equal(t, "my-package", pd.Name)
	assert.Equal(t, "pkg:composer/acme/my-package", pd.Purl)
	assert.Equal(t, "MIT", pd.DeclaredLicenseExpression)
	require.Len(t, pd.Dependencies, 2)

	byPurl := map[string]bool{}
	for _, d := range pd.Dependencies {
		byPurl[d.Purl] = d.IsOptional
	}
	assert.False(t, byPurl["pkg:composer/monolog/monolog"])
	assert.True(t, byPurl["pkg:composer/phpunit/phpunit"])
}

func TestLockParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "composer.lock")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"packages": [
			{"name": "monolog/monolog", "version": "3.5.0", "source": {"reference": "abc123"}}
		],
		"packages-dev": [
			{"name": "phpunit/phpunit", "version": "10.5.0"}
		]
	}`), 0o644))

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 2)

	byPurl := map[string]bool{}
	for _, d := range pds[0].Dependencies {
		byPurl[d.Purl] = d.IsRuntime
	}
	assert.True(t, byPurl["pkg:composer/monolog/monolog@3.5.0"])
	assert.False(t, byPurl["pkg:composer/phpunit/phpunit@10.5.0"])
}
