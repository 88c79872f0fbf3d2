package pypi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupCfgParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "setup.cfg")
	require.NoError(t, os.WriteFile(path, []byte(`[metadata]
name = My-Package
version = 1.0.0
description = An example package
url = https://example.com
license = MIT
author = Jane Doe
keywords = cli, tool

[options]
install_requires =
    requests>=2.0
    click
`), 0o644))

	pds := setupCfgParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "my-package", pd.Name)
	assert.Equal(t, "1.0.0", pd.Version)
	assert.Equal(t, "https://example.com", pd.HomepageURL)
	assert.Equal(t, "MIT", pd.DeclaredLicenseExpression)
	assert.Equal(t, []string{"cli", "tool"}, pd.Keywords)
	assert.Equal(t, "pkg:pypi/my-package@1.0.0", pd.Purl)
	require.Len(t, pd.Dependencies, 2)
}

func TestSetupCfgParserInlineInstallRequires(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "setup.cfg")
	require.NoError(t, os.WriteFile(path, []byte(`[metadata]
name = tiny-pkg

[options]
install_requires = requests
`), 0o644))

	pds := setupCfgParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 1)
	assert.Equal(t, "pkg:pypi/requests", pds[0].Dependencies[0].Purl)
}
