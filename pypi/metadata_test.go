package pypi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "METADATA")
	require.NoError(t, os.WriteFile(path, []byte(`Metadata-Version: 2.1
Name: My-Package
Version: 1.0.0
Summary: An example package
Home-page: https://example.com
License: MIT
Author: Jane Doe
Author-email: jane@example.com
Maintainer: John Smith
Keywords: cli,tool
Requires-Dist: requests (>=2.0)
Requires-Dist: pytest (>=7.0) ; extra == "test"

This is the long description.
`), 0o644))

	pds := metadataParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "my-package", pd.Name)
	assert.Equal(t, "1.0.0", pd.Version)
	assert.Equal(t, "An example package", pd.Description)
	assert.Equal(t, "https://example.com", pd.HomepageURL)
	assert.Equal(t, "MIT", pd.DeclaredLicenseExpression)
	assert.Equal(t, "pkg:pypi/my-package@1.0.0", pd.Purl)
	assert.Equal(t, []string{"cli", "tool"}, pd.Keywords)

	require.Len(t, pd.Parties, 2)
	assert.Equal(t, "Jane Doe", pd.Parties[0].Name)
	assert.Equal(t, "jane@example.com", pd.Parties[0].Email)
	assert.Equal(t, "John Smith", pd.Parties[1].Name)

	require.Len(t, pd.Dependencies, 2)
	var optional bool
	for _, d := range pd.Dependencies {
		if d.Purl == "pkg:pypi/pytest" {
			optional = d.IsOptional
		}
	}
	assert.True(t, optional)
}

func TestMetadataParserFallsBackToBodyDescription(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "PKG-INFO")
	require.NoError(t, os.WriteFile(path, []byte(`Name: simple-pkg
Version: 0.1.0

A longer body description here.
`), 0o644))

	pds := metadataParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "A longer body description here.", pds[0].Description)
}
