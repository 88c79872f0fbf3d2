package cargo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[package]
name = "my-crate"
version = "0.1.0"
description = "An example crate"
license = "MIT OR Apache-2.0"
homepage = "https://example.com"
authors = ["Jane Doe <jane@example.com>"]

[dependencies]
serde = "1.0"
tokio = { version = "1.28", optional = true }

[dev-dependencies]
criterion = "0.5"
`), 0o644))

	pds := manifestParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "my-crate", pd.Name)
	assert.Equal(t, "pkg:cargo/my-crate@0.1.0", pd.Purl)
	assert.Equal(t, "MIT OR Apache-2.0", pd.DeclaredLicenseExpression)
	require.Len(t, pd.Parties, 1)
	require.Len(t, pd.Dependencies, 3)

	byPurl := map[string]packagedcodeDep{}
	for _, d := range pd.Dependencies {
		byPurl[d.Purl] = packagedcodeDep{d.IsOptional, d.IsRuntime}
	}
	assert.False(t, byPurl["pkg:cargo/serde"].optional)
	assert.True(t, byPurl["pkg:cargo/tokio"].optional)
	assert.False(t, byPurl["pkg:cargo/criterion"].runtime)
}

type packagedcodeDep struct {
	optional bool
	runtime  bool
}

func TestLockParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cargo.lock")
	require.NoError(t, os.WriteFile(path, []byte(`
[[package]]
name = "serde"
version = "1.0.190"
source = "registry+https://github.com/rust-lang/crates.io-index"
checksum = "abcd1234"
`), 0o644))

	pds := lockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 1)
	dep := pds[0].Dependencies[0]
	assert.Equal(t, "pkg:cargo/serde@1.0.190", dep.Purl)
	assert.True(t, dep.IsPinned)
	require.NotNil(t, dep.ResolvedPackage)
	assert.Equal(t, "abcd1234", dep.ResolvedPackage.SHA256)
}
