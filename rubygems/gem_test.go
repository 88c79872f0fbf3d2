package rubygems

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGemArchive(t *testing.T, metadataYAML string) []byte {
	t.Helper()
	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(metadataYAML))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	var out bytes.Buffer
	tw := tar.NewWriter(&out)
	hdr := &tar.Header{Name: "metadata.gz", Mode: 0o644, Size: int64(gz.Len())}
	require.NoError(t, tw.WriteHeader(hdr))
	_, err = tw.Write(gz.Bytes())
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	return out.Bytes()
}

func TestGemArchiveParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mygem-1.2.3.gem")
	meta := `
name: mygem
version:
  version: 1.2.3
summary: An example gem
homepage: https://example.com
licenses:
  - MIT
authors:
  - Jane Doe
email: jane@example.com
platform: ruby
`
	require.NoError(t, os.WriteFile(path, buildGemArchive(t, meta), 0o644))

	pds := gemArchiveParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "mygem", pd.Name)
	assert.Equal(t, "1.2.3", pd.Version)
	assert.Equal(t, "An example gem", pd.Description)
	assert.Equal(t, "MIT", pd.DeclaredLicenseExpression)
	assert.Equal(t, "pkg:gem/mygem@1.2.3", pd.Purl)
	require.Len(t, pd.Parties, 1)
	assert.Equal(t, "Jane Doe", pd.Parties[0].Name)
	assert.Equal(t, "jane@example.com", pd.Parties[0].Email)
}

func TestGemArchiveParserUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.gem")

	pds := gemArchiveParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "gem_archive", pds[0].DatasourceID)
}
