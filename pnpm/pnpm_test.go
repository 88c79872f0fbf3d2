package pnpm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockParserV5KeyShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pnpm-lock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
shrinkwrapVersion: 5
packages:
  /lodash/4.17.21:
    resolution: {integrity: sha1-cK7Rk='}
  /@babel/core/7.24.0:
    dev: true
    resolution: {}
`), 0o644))

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 2)

	byPurl := map[string]bool{}
	for _, d := range pds[0].Dependencies {
		byPurl[d.Purl] = d.IsRuntime
	}
	assert.True(t, byPurl["pkg:npm/lodash@4.17.21"])
	assert.False(t, byPurl["pkg:npm/%40babel/core@7.24.0"])
}

func TestLockParserV6AtSeparatedKeyShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pnpm-lock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lockfileVersion: '6.0'
packages:
  /@headlessui/react@1.6.6:
    resolution: {}
  /express@4.18.2:
    optional: true
    resolution: {}
`), 0o644))

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 2)

	byPurl := map[string]bool{}
	for _, d := range pds[0].Dependencies {
		byPurl[d.Purl] = d.IsOptional
	}
	assert.True(t, byPurl["pkg:npm/express@4.18.2"])
	assert.False(t, byPurl["pkg:npm/%40headlessui/react@1.6.6"])
}

func TestLockParserUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pnpm-lock.yaml")

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "pnpm_lock_yaml", pds[0].DatasourceID)
}

func TestWorkspaceParserCarriesGlobs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pnpm-workspace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
packages:
  - "packages/*"
  - "apps/**"
`), 0o644))

	pds := workspaceParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	globs, ok := pds[0].ExtraData["workspace_packages"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"packages/*", "apps/**"}, globs)
}
