package gradle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptParserGroovyCoordinateForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.gradle")
	require.NoError(t, os.WriteFile(path, []byte(`
dependencies {
    implementation("com.squareup.okhttp3:okhttp:4.11.0")
    testImplementation 'junit:junit:4.13.2'
}
`), 0o644))

	pds := scriptParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	require.Len(t, pd.Dependencies, 2)
	assert.Equal(t, "pkg:maven/com.squareup.okhttp3/okhttp@4.11.0", pd.Dependencies[0].Purl)
	assert.True(t, pd.Dependencies[0].IsRuntime)
	assert.Equal(t, "pkg:maven/junit/junit@4.13.2", pd.Dependencies[1].Purl)
	assert.False(t, pd.Dependencies[1].IsRuntime)
	assert.True(t, pd.Dependencies[1].IsOptional)
}

func TestScriptParserMapForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.gradle.kts")
	require.NoError(t, os.WriteFile(path, []byte(`
dependencies {
    api(group: "org.slf4j", name: "slf4j-api", version: "2.0.9")
}
`), 0o644))

	pds := scriptParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	require.Len(t, pds[0].Dependencies, 1)
	assert.Equal(t, "pkg:maven/org.slf4j/slf4j-api@2.0.9", pds[0].Dependencies[0].Purl)
}
