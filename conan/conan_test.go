package conan

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

func TestConanfileTxtParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conanfile.txt")
	writeFile(t, path, `
[requires]
zlib/1.2.13
fmt/9.1.0@user/stable

[build_requires]
cmake/3.25.0
`)

	pds := conanfileTxtParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	require.Len(t, pd.Dependencies, 3)
	assert.Equal(t, "pkg:conan/zlib@1.2.13", pd.Dependencies[0].Purl)
	assert.True(t, pd.Dependencies[0].IsRuntime)
	assert.Equal(t, "pkg:conan/fmt@9.1.0?channel=stable&user=user", pd.Dependencies[1].Purl)
	assert.Equal(t, "pkg:conan/cmake@3.25.0", pd.Dependencies[2].Purl)
	assert.True(t, pd.Dependencies[2].IsOptional)
	assert.False(t, pd.Dependencies[2].IsRuntime)
}

func TestConanfilePyParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conanfile.py")
	writeFile(t, path, `
class MyPkgConan(ConanFile):
    name = "mypkg"
    version = "1.0.0"
    license = "MIT"
    homepage = "https://example.com/mypkg"
    requires = ("zlib/1.2.13", "fmt/9.1.0")
`)

	pds := conanfilePyParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "mypkg", pd.Name)
	assert.Equal(t, "1.0.0", pd.Version)
	assert.Equal(t, "pkg:conan/mypkg@1.0.0", pd.Purl)
	require.Len(t, pd.Dependencies, 2)
	assert.Equal(t, "pkg:conan/zlib@1.2.13", pd.Dependencies[0].Purl)
}

func TestConanLockParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conan.lock")
	writeFile(t, path, `{
		"graph_lock": {
			"nodes": {
				"0": {"ref": "mypkg/1.0.0"},
				"1": {"ref": "zlib/1.2.13"}
			}
		}
	}`)

	pds := conanLockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Len(t, pds[0].Dependencies, 2)
	for _, d := range pds[0].Dependencies {
		assert.True(t, d.IsPinned)
	}
}

func TestDependencyFromConanRefNoUserChannel(t *testing.T) {
	dep := dependencyFromConanRef("zlib/1.2.13")
	assert.Equal(t, "pkg:conan/zlib@1.2.13", dep.Purl)
}
