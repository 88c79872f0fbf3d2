package swiftpm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Package.swift.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "MyLibrary",
		"dependencies": [
			{
				"identity": "swift-log",
				"url": "https://github.com/apple/swift-log.git",
				"requirement": {"range": [{"lowerBound": "1.5.0"}]}
			},
			{
				"identity": "swift-nio",
				"requirement": {"exact": ["2.60.0"]}
			}
		]
	}`), 0o644))

	pds := manifestParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "MyLibrary", pd.Name)
	assert.Equal(t, "pkg:swift/MyLibrary", pd.Purl)
	require.Len(t, pd.Dependencies, 2)
	assert.Equal(t, "1.5.0", pd.Dependencies[0].ExtractedRequirement)
	assert.False(t, pd.Dependencies[0].IsPinned)
	assert.Equal(t, "2.60.0", pd.Dependencies[1].ExtractedRequirement)
	assert.True(t, pd.Dependencies[1].IsPinned)
}

func TestResolvedParserV2Shape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Package.resolved")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"version": 2,
		"pins": [
			{"identity": "swift-log", "state": {"version": "1.5.3"}}
		]
	}`), 0o644))

	pds := resolvedParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 1)
	assert.Equal(t, "pkg:swift/swift-log@1.5.3", pds[0].Dependencies[0].Purl)
}

func TestResolvedParserV1Shape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Package.resolved")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"object": {
			"pins": [
				{"package": "swift-nio", "state": {"version": "2.60.0"}}
			]
		},
		"version": 1
	}`), 0o644))

	pds := resolvedParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 1)
	assert.Equal(t, "pkg:swift/swift-nio@2.60.0", pds[0].Dependencies[0].Purl)
}
