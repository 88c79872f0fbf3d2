package chef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestMetadataJSONParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.json")
	writeFile(t, path, `{
		"name": "apache2",
		"version": "8.8.0",
		"description": "Installs and configures apache2",
		"license": "Apache-2.0",
		"maintainer": "Sous Chefs",
		"maintainer_email": "help@sous-chefs.org",
		"source_url": "https://github.com/sous-chefs/apache2",
		"dependencies": {"yum-epel": ">= 0.0.0"}
	}`)

	pds := metadataJSONParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "apache2", pd.Name)
	assert.Equal(t, "8.8.0", pd.Version)
	assert.Equal(t, "pkg:chef/apache2@8.8.0", pd.Purl)
	assert.Equal(t, "Apache-2.0", pd.DeclaredLicenseExpression)
	require.Len(t, pd.Parties, 1)
	assert.Equal(t, "Sous Chefs", pd.Parties[0].Name)
	require.Len(t, pd.Dependencies, 1)
	assert.Equal(t, "pkg:chef/yum-epel", pd.Dependencies[0].Purl)
	assert.Equal(t, ">= 0.0.0", pd.Dependencies[0].ExtractedRequirement)
}

func TestMetadataRbParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.rb")
	writeFile(t, path, `
name 'apache2'
maintainer 'Sous Chefs'
maintainer_email 'help@sous-chefs.org'
license 'Apache-2.0'
description 'Installs and configures apache2'
version '8.8.0'
source_url 'https://github.com/sous-chefs/apache2'

depends 'yum-epel', '>= 0.0.0'
depends 'iptables'
`)

	pds := metadataRbParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "apache2", pd.Name)
	assert.Equal(t, "8.8.0", pd.Version)
	assert.Equal(t, "pkg:chef/apache2@8.8.0", pd.Purl)
	require.Len(t, pd.Dependencies, 2)
	assert.Equal(t, "pkg:chef/yum-epel", pd.Dependencies[0].Purl)
	assert.Equal(t, ">= 0.0.0", pd.Dependencies[0].ExtractedRequirement)
	assert.Equal(t, "pkg:chef/iptables", pd.Dependencies[1].Purl)
	assert.Empty(t, pd.Dependencies[1].ExtractedRequirement)
}

func TestMetadataJSONParserUnreadable(t *testing.T) {
	pds := metadataJSONParser{}.ExtractPackages(filepath.Join(t.TempDir(), "missing.json"))
	require.Len(t, pds, 1)
	assert.Empty(t, pds[0].Name)
	assert.Equal(t, "chef", pds[0].PackageType)
}
