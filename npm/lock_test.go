package npm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockParserV2PackagesShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package-lock.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "my-app",
		"version": "1.0.0",
		"lockfileVersion": 3,
		"packages": {
			"": {"name": "my-app", "version": "1.0.0"},
			"node_modules/express": {
				"version": "4.18.2",
				"resolved": "https://registry.npmjs.org/express/-/express-4.18.2.tgz",
				"integrity": "sha512-aGno=="
			},
			"node_modules/jest": {
				"version": "29.0.0",
				"dev": true
			}
		}
	}`), 0o644))

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "my-app", pd.Name)
	assert.Equal(t, "pkg:npm/my-app@1.0.0", pd.Purl)
	require.Len(t, pd.Dependencies, 2)

	byName := map[string]bool{}
	for _, d := range pd.Dependencies {
		byName[d.Purl] = d.IsRuntime
	}
	assert.True(t, byName["pkg:npm/express@4.18.2"])
	assert.False(t, byName["pkg:npm/jest@29.0.0"])
}

func TestLockParserV1DependenciesShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package-lock.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "my-app",
		"version": "1.0.0",
		"lockfileVersion": 1,
		"dependencies": {
			"express": {
				"version": "4.18.2",
				"dependencies": {
					"accepts": {"version": "1.3.8"}
				}
			}
		}
	}`), 0o644))

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 2)
}

func TestLockParserShrinkwrapDatasourceID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "npm-shrinkwrap.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "x", "version": "1.0.0"}`), 0o644))

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "npm_shrinkwrap_json", pds[0].DatasourceID)
}
