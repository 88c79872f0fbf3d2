package cocoapods

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPodspecParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MyPod.podspec")
	require.NoError(t, os.WriteFile(path, []byte(`Pod::Spec.new do |s|
  s.name = "MyPod"
  s.version = "1.0.0"
  s.summary = "An example pod"
  s.homepage = "https://example.com"
  s.license = "MIT"
  s.author = "Jane Doe"
  s.dependency "AFNetworking", "~> 4.0"
end
`), 0o644))

	pds := podspecParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "MyPod", pd.Name)
	assert.Equal(t, "1.0.0", pd.Version)
	assert.Equal(t, "An example pod", pd.Description)
	assert.Equal(t, "pkg:cocoapods/MyPod@1.0.0", pd.Purl)
	require.Len(t, pd.Parties, 1)
	require.Len(t, pd.Dependencies, 1)
	assert.Equal(t, "pkg:cocoapods/AFNetworking", pd.Dependencies[0].Purl)
	assert.Equal(t, "~> 4.0", pd.Dependencies[0].ExtractedRequirement)
}

func TestPodspecJSONParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MyPod.podspec.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "MyPod",
		"version": "1.0.0",
		"summary": "An example pod",
		"homepage": "https://example.com",
		"license": {"type": "MIT"},
		"authors": {"Jane Doe": "jane@example.com"},
		"dependencies": {"AFNetworking": ["~> 4.0"]}
	}`), 0o644))

	pds := podspecJSONParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "MyPod", pd.Name)
	assert.Equal(t, "MIT", pd.DeclaredLicenseExpression)
	require.Len(t, pd.Parties, 1)
	assert.Equal(t, "Jane Doe", pd.Parties[0].Name)
	require.Len(t, pd.Dependencies, 1)
	assert.Equal(t, "pkg:cocoapods/AFNetworking", pd.Dependencies[0].Purl)
}
