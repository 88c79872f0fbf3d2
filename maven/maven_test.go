package maven

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPomParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<?xml version="1.0"?>
<project>
  <groupId>com.example</groupId>
  <artifactId>my-app</artifactId>
  <version>1.2.3</version>
  <description>An example app</description>
  <url>https://example.com</url>
  <licenses>
    <license><name>Apache-2.0</name></license>
  </licenses>
  <developers>
    <developer><name>Jane Dev</name><email>jane@example.com</email></developer>
  </developers>
  <dependencies>
    <dependency>
      <groupId>com.fasterxml.jackson.core</groupId>
      <artifactId>jackson-databind</artifactId>
      <version>2.15.0</version>
    </dependency>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13.2</version>
      <scope>test</scope>
      <optional>true</optional>
    </dependency>
  </dependencies>
</project>`), 0o644))

	pds := pomParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "com.example", pd.Namespace)
	assert.Equal(t, "my-app", pd.Name)
	assert.Equal(t, "1.2.3", pd.Version)
	assert.Equal(t, "pkg:maven/com.example/my-app@1.2.3", pd.Purl)
	assert.Equal(t, "Apache-2.0", pd.DeclaredLicenseExpression)
	require.Len(t, pd.Parties, 1)
	require.Len(t, pd.Dependencies, 2)
	assert.Equal(t, "pkg:maven/com.fasterxml.jackson.core/jackson-databind@2.15.0", pd.Dependencies[0].Purl)
	assert.True(t, pd.Dependencies[0].IsRuntime)
	assert.Equal(t, "test", pd.Dependencies[1].Scope)
	assert.True(t, pd.Dependencies[1].IsOptional)
}

func TestPomParserParentFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<?xml version="1.0"?>
<project>
  <parent>
    <groupId>com.example</groupId>
    <artifactId>parent-pom</artifactId>
    <version>9.9.9</version>
  </parent>
  <artifactId>child-module</artifactId>
</project>`), 0o644))

	pds := pomParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Equal(t, "com.example", pds[0].Namespace)
	assert.Equal(t, "9.9.9", pds[0].Version)
	assert.Equal(t, "child-module", pds[0].Name)
}
