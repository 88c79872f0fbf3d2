package nuget

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuspecParserFlatDependencies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MyPackage.nuspec")
	require.NoError(t, os.WriteFile(path, []byte(`<?xml version="1.0"?>
<package>
  <metadata>
    <id>MyPackage</id>
    <version>1.0.0</version>
    <description>An example package</description>
    <projectUrl>https://example.com</projectUrl>
    <license type="expression">MIT</license>
    <authors>Jane Doe, John Smith</authors>
    <owners>Example Corp</owners>
    <tags>example utility</tags>
    <dependencies>
      <dependency id="Newtonsoft.Json" version="13.0.1" />
    </dependencies>
  </metadata>
</package>`), 0o644))

	pds := nuspecParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "MyPackage", pd.Name)
	assert.Equal(t, "1.0.0", pd.Version)
	assert.Equal(t, "pkg:nuget/MyPackage@1.0.0", pd.Purl)
	assert.Equal(t, "MIT", pd.DeclaredLicenseExpression)
	require.Len(t, pd.Parties, 3)
	assert.Equal(t, "Jane Doe", pd.Parties[0].Name)
	assert.Equal(t, "John Smith", pd.Parties[1].Name)
	assert.Equal(t, "Example Corp", pd.Parties[2].Name)
	assert.ElementsMatch(t, []string{"example", "utility"}, pd.Keywords)
	require.Len(t, pd.Dependencies, 1)
	assert.Equal(t, "pkg:nuget/Newtonsoft.Json@13.0.1", pd.Dependencies[0].Purl)
}

func TestNuspecParserGroupedDependencies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MyPackage.nuspec")
	require.NoError(t, os.WriteFile(path, []byte(`<?xml version="1.0"?>
<package>
  <metadata>
    <id>MyPackage</id>
    <version>2.0.0</version>
    <dependencies>
      <group targetFramework="net6.0">
        <dependency id="Serilog" version="2.12.0" />
      </group>
    </dependencies>
  </metadata>
</package>`), 0o644))

	pds := nuspecParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 1)
	assert.Equal(t, "pkg:nuget/Serilog@2.12.0", pds[0].Dependencies[0].Purl)
}
