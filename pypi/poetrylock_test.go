package pypi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoetryLockParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poetry.lock")
	require.NoError(t, os.WriteFile(path, []byte(`
[[package]]
name = "requests"
version = "2.31.0"
category = "main"
optional = false

[[package]]
name = "pytest"
version = "7.4.0"
category = "dev"
optional = true
`), 0o644))

	pds := poetryLockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 2)

	byPurl := map[string]bool{}
	for _, d := range pds[0].Dependencies {
		byPurl[d.Purl] = d.IsRuntime
		assert.True(t, d.IsPinned)
	}
	assert.True(t, byPurl["pkg:pypi/requests@2.31.0"])
	assert.False(t, byPurl["pkg:pypi/pytest@7.4.0"])
}

func TestPoetryLockParserDatasourceID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.lock")

	pds := poetryLockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "poetry_lock", pds[0].DatasourceID)
}
