package purl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNPMScoped(t *testing.T) {
	got := BuildNPM("@scope/name", "1.0.0")
	assert.Equal(t, "pkg:npm/%40scope/name@1.0.0", got)
}

func TestBuildNPMUnscoped(t *testing.T) {
	got := BuildNPM("express", "4.18.0")
	assert.Equal(t, "pkg:npm/express@4.18.0", got)
}

func TestBuildGo(t *testing.T) {
	got := BuildGo("github.com/example/repo", "v1.2.3")
	assert.Equal(t, "pkg:golang/github.com/example/repo@v1.2.3", got)
}

func TestDebianNamespaceFromVersion(t *testing.T) {
	assert.Equal(t, "ubuntu", DebianNamespace("1.0-1ubuntu1", ""))
	assert.Equal(t, "debian", DebianNamespace("1.0-1+deb11u1", ""))
}

func TestDebianNamespaceFromMaintainer(t *testing.T) {
	assert.Equal(t, "ubuntu", DebianNamespace("1.0", "Ubuntu Developers <team@lists.ubuntu.com>"))
	assert.Equal(t, "debian", DebianNamespace("1.0", "Debian Maintainer <x@packages.debian.org>"))
	assert.Equal(t, "debian", DebianNamespace("1.0", ""))
}

func TestBuildDeb(t *testing.T) {
	got := BuildDeb("debian", "libc6", "2.31-13", "amd64")
	assert.Equal(t, "pkg:deb/debian/libc6@2.31-13?arch=amd64", got)
}
