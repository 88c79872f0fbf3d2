package cocoapods

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPodfileParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Podfile")
	require.NoError(t, os.WriteFile(path, []byte(`platform :ios, '13.0'

target 'MyApp' do
  pod 'Alamofire', '~> 5.0'
  pod 'SnapKit'
end
`), 0o644))

	pds := podfileParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 2)

	byPurl := map[string]string{}
	for _, d := range pds[0].Dependencies {
		byPurl[d.Purl] = d.ExtractedRequirement
	}
	assert.Equal(t, "~> 5.0", byPurl["pkg:cocoapods/Alamofire"])
	_, ok := byPurl["pkg:cocoapods/SnapKit"]
	assert.True(t, ok)
}

func TestPodfileLockParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Podfile.lock")
	require.NoError(t, os.WriteFile(path, []byte(`PODS:
  - Alamofire (5.8.0)
  - SnapKit (5.6.0):
    - Alamofire

DEPENDENCIES:
  - Alamofire
  - SnapKit

SPEC CHECKSUMS:
  Alamofire: abc123
  SnapKit: def456
`), 0o644))

	pds := podfileLockParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 2)

	for _, d := range pds[0].Dependencies {
		require.NotNil(t, d.ResolvedPackage)
		if d.Purl == "pkg:cocoapods/Alamofire@5.8.0" {
			assert.Equal(t, "abc123", d.ResolvedPackage.SHA1)
		}
	}
}
