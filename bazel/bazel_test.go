package bazel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParserExtractsRuleName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "BUILD")
	require.NoError(t, os.WriteFile(path, []byte(`
cc_library(
    name = "widgets",
    srcs = ["widgets.cc"],
)
`), 0o644))

	pds := buildParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "widgets", pds[0].Name)
	assert.Equal(t, "bazel", pds[0].PackageType)
	assert.Empty(t, pds[0].Purl)
}

func TestBuildParserFallsBackToDirectoryName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mylib")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "BUILD")
	require.NoError(t, os.WriteFile(path, []byte(`exports_files(["README.md"])`), 0o644))

	pds := buildParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "mylib", pds[0].Name)
}

func TestBuckParserUsesDistinctPackageType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "BUCK")
	require.NoError(t, os.WriteFile(path, []byte(`
java_binary(
    name = "app",
)
`), 0o644))

	pds := buckParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "app", pds[0].Name)
	assert.Equal(t, "buck", pds[0].PackageType)
}
