package haxe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaxelibParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "haxelib.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "format",
		"url": "https://github.com/HaxeFoundation/format",
		"license": "MIT",
		"description": "File format parsing and generation libraries",
		"version": "3.5.0",
		"contributors": ["ncannasse", "andyli"],
		"dependencies": {"hxjava": ""}
	}`), 0o644))

	pds := haxelibParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "format", pd.Name)
	assert.Equal(t, "3.5.0", pd.Version)
	assert.Equal(t, "pkg:haxelib/format@3.5.0", pd.Purl)
	assert.Equal(t, "MIT", pd.DeclaredLicenseExpression)
	require.Len(t, pd.Parties, 2)
	// dependency with an empty constraint names no required version
	assert.Empty(t, pd.Dependencies)
}

func TestHaxelibParserWithVersionedDependency(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "haxelib.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "tink_core",
		"version": "2.0.0",
		"dependencies": {"haxe": "4.0.0"}
	}`), 0o644))

	pds := haxelibParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 1)
	assert.Equal(t, "pkg:haxelib/haxe@4.0.0", pds[0].Dependencies[0].Purl)
}
