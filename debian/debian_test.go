package debian

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlParserSourceAndBinaryStanzas(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "control")
	require.NoError(t, os.WriteFile(path, []byte(`Source: myapp
Maintainer: Jane Doe <jane@debian.org>
Homepage: https://example.com

Package: myapp
Version: 1.2.3
Architecture: amd64
Description: an example application
Depends: libc6 (>= 2.34), libssl3 | libssl1.1
`), 0o644))

	pds := controlParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "myapp", pd.Name)
	assert.Equal(t, "1.2.3", pd.Version)
	assert.Equal(t, "https://example.com", pd.HomepageURL)
	assert.Equal(t, "debian", pd.Namespace)
	require.Len(t, pd.Parties, 1)
	assert.Equal(t, "Jane Doe", pd.Parties[0].Name)
	assert.Equal(t, "jane@debian.org", pd.Parties[0].Email)

	require.Len(t, pd.Dependencies, 3)
	assert.Equal(t, ">= 2.34", pd.Dependencies[0].ExtractedRequirement)
	assert.False(t, pd.Dependencies[0].IsOptional)
	assert.True(t, pd.Dependencies[1].IsOptional)
}

func TestStatusParserSkipsNonInstalledPackages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "status")
	require.NoError(t, os.WriteFile(path, []byte(`Package: installed-pkg
Status: install ok installed
Version: 1.0.0
Architecture: amd64

Package: removed-pkg
Status: deinstall ok config-files
Version: 0.9.0
`), 0o644))

	pds := statusParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "installed-pkg", pds[0].Name)
}

func TestStatusDParserKeepsFirstParagraphOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "status.d", "mypkg")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`Package: mypkg
Version: 1.0.0

Package: second-entry-ignored
Version: 2.0.0
`), 0o644))

	pds := statusDParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "mypkg", pds[0].Name)
}

func TestDebianNamespaceUbuntuDetection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "control")
	require.NoError(t, os.WriteFile(path, []byte(`Package: myapp
Version: 1.2.3ubuntu1
Maintainer: Ubuntu Developers <ubuntu-devel@lists.ubuntu.com>
`), 0o644))

	pds := controlParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "ubuntu", pds[0].Namespace)
}
