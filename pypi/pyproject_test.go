package pypi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPyprojectParserPEP621(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[project]
name = "My-Package"
version = "1.0.0"
description = "An example package"
keywords = ["cli", "tool"]
license = { text = "MIT" }
dependencies = ["requests>=2.0", "click"]

[project.urls]
Homepage = "https://example.com"

[project.optional-dependencies]
test = ["pytest>=7.0"]
`), 0o644))

	pds := pyprojectParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "my-package", pd.Name)
	assert.Equal(t, "1.0.0", pd.Version)
	assert.Equal(t, "MIT", pd.DeclaredLicenseExpression)
	assert.Equal(t, "https://example.com", pd.HomepageURL)
	assert.Equal(t, "pkg:pypi/my-package@1.0.0", pd.Purl)
	require.Len(t, pd.Dependencies, 3)

	var optional bool
	for _, d := range pd.Dependencies {
		if d.Purl == "pkg:pypi/pytest" {
			optional = d.IsOptional
		}
	}
	assert.True(t, optional)
}

func TestPyprojectParserPoetryTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[tool.poetry]
name = "my-poetry-pkg"
version = "2.0.0"
description = "A poetry-managed package"

[tool.poetry.dependencies]
python = "^3.10"
requests = "^2.28"
`), 0o644))

	pds := pyprojectParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "my-poetry-pkg", pd.Name)
	require.Len(t, pd.Dependencies, 1)
	assert.Equal(t, "pkg:pypi/requests", pd.Dependencies[0].Purl)
}

func TestPyprojectParserUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.toml")

	pds := pyprojectParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "pypi_pyproject_toml", pds[0].DatasourceID)
}
