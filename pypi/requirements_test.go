package pypi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementsParserBasic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte(`
# a comment
requests==2.31.0
Flask>=2.0  # inline comment
-e git+https://github.com/example/pkg.git#egg=pkg
`), 0o644))

	pds := requirementsParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	require.Len(t, pd.Dependencies, 2)

	byPurl := map[string]string{}
	for _, d := range pd.Dependencies {
		byPurl[d.Purl] = d.ExtractedRequirement
	}
	assert.Equal(t, "==2.31.0", byPurl["pkg:pypi/requests"])
	assert.Equal(t, ">=2.0", byPurl["pkg:pypi/flask"])
}

func TestRequirementsParserRecursiveInclude(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, "base.txt")
	require.NoError(t, os.WriteFile(basePath, []byte("requests==2.31.0\n"), 0o644))
	mainPath := filepath.Join(dir, "requirements.txt")
	require.NoError(t, os.WriteFile(mainPath, []byte("-r base.txt\nFlask==2.0\n"), 0o644))

	pds := requirementsParser{}.ExtractPackages(mainPath)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 2)
}

func TestRequirementsParserCircularIncludeTerminates(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	bPath := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(aPath, []byte("-r b.txt\nrequests==2.31.0\n"), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte("-r a.txt\nFlask==2.0\n"), 0o644))

	pds := requirementsParser{}.ExtractPackages(aPath)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 2)
}
