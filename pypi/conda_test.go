package pypi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondaParserTemplateSubstitution(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`{% set name = "mypkg" %}
{% set version = "1.2.3" %}

package:
  name: {{ name|lower }}
  version: {{ version }}

about:
  summary: An example recipe
  home: https://example.com
  license: MIT

requirements:
  run:
    - python
    - requests >=2.0
  build:
    - setuptools
`), 0o644))

	pds := condaParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "mypkg", pd.Name)
	assert.Equal(t, "1.2.3", pd.Version)
	assert.Equal(t, "An example recipe", pd.Description)
	assert.Equal(t, "pkg:conda/mypkg@1.2.3", pd.Purl)
	require.Len(t, pd.Dependencies, 3)

	byPurl := map[string]bool{}
	for _, d := range pd.Dependencies {
		byPurl[d.Purl] = d.IsRuntime
	}
	assert.True(t, byPurl["pkg:conda/python"])
	assert.False(t, byPurl["pkg:conda/setuptools"])
}

func TestCondaParserUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.yaml")

	pds := condaParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "conda_meta_yaml", pds[0].DatasourceID)
}
