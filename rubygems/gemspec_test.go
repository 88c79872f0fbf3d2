package rubygems

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGemspecParserPlainLiterals(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mygem.gemspec")
	require.NoError(t, os.WriteFile(path, []byte(`Gem::Specification.new do |spec|
  spec.name = "mygem"
  spec.version = "1.2.3"
  spec.summary = "An example gem"
  spec.homepage = "https://example.com"
  spec.authors = ["Jane Doe", "John Smith"]
  spec.email = "jane@example.com"
  spec.licenses = ["MIT", "Apache-2.0"]
  spec.add_dependency "activesupport", ">= 6.0"
  spec.add_development_dependency "rspec"
end
`), 0o644))

	pds := gemspecParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "mygem", pd.Name)
	assert.Equal(t, "1.2.3", pd.Version)
	assert.Equal(t, "An example gem", pd.Description)
	assert.Equal(t, "pkg:gem/mygem@1.2.3", pd.Purl)
	assert.Equal(t, "MIT OR Apache-2.0", pd.DeclaredLicenseExpression)
	require.Len(t, pd.Parties, 2)
	assert.Equal(t, "jane@example.com", pd.Parties[0].Email)

	require.Len(t, pd.Dependencies, 2)
	var runtime, dev bool
	for _, d := range pd.Dependencies {
		switch d.Purl {
		case "pkg:gem/activesupport":
			runtime = d.IsRuntime
			assert.Equal(t, ">= 6.0", d.ExtractedRequirement)
		case "pkg:gem/rspec":
			dev = d.IsOptional && !d.IsRuntime
		}
	}
	assert.True(t, runtime)
	assert.True(t, dev)
}

func TestGemspecParserVersionConstantIndirection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mygem.gemspec")
	require.NoError(t, os.WriteFile(path, []byte(`require "mygem/version"

Gem::Specification.new do |spec|
  spec.name = "mygem"
  spec.version = MyGem::VERSION
end

module MyGem
  VERSION = "2.0.0".freeze
end
`), 0o644))

	pds := gemspecParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "2.0.0", pds[0].Version)
}

func TestGemspecParserUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.gemspec")

	pds := gemspecParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "gemspec", pds[0].DatasourceID)
}
