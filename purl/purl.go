// Package purl builds Package URL strings from ecosystem-specific fields.
// It wraps github.com/package-url/packageurl-go for the spec-compliant
// percent-encoding and qualifier ordering, layering on the handful of
// per-ecosystem rules the purl spec leaves to implementers: npm's scoped
// namespace, and Debian/Alpine's namespace detection from version strings
// or maintainer email.
package purl

import (
	"strings"

	"github.com/package-url/packageurl-go"
)

// Build constructs a "pkg:" string. qualifiers with an empty value are
// omitted, matching packageurl-go's own normalization.
func Build(pkgType, namespace, name, version string, qualifiers map[string]string, subpath string) string {
	p := packageurl.PackageURL{
		Type:       pkgType,
		Namespace:  namespace,
		Name:       name,
		Version:    version,
		Qualifiers: packageurl.QualifiersFromMap(qualifiers),
		Subpath:    subpath,
	}
	return p.ToString()
}

// BuildNPM constructs an npm purl, handling the scoped-package case: for
// "@scope/name" the "@" is percent-encoded as "%40" but the separating "/"
// is left bare, e.g. pkg:npm/%40scope/name@1.0.0. Unscoped packages build
// pkg:npm/name@version.
func BuildNPM(name, version string) string {
	if strings.HasPrefix(name, "@") {
		parts := strings.SplitN(name[1:], "/", 2)
		if len(parts) == 2 {
			return Build("npm", "@"+parts[0], parts[1], version, nil, "")
		}
	}
	return Build("npm", "", name, version, nil, "")
}

// BuildGo constructs a Go module purl. The module path is kept intact
// (slashes preserved); namespace/name split on the last "/".
func BuildGo(modulePath, version string) string {
	ns, name := splitLastSlash(modulePath)
	return Build("golang", ns, name, version, nil, "")
}

// DebianNamespace detects whether a Debian-family package belongs to
// "debian" or "ubuntu", given its version string and maintainer email, in
// that priority order, defaulting to "debian".
func DebianNamespace(version, maintainerEmail string) string {
	lv := strings.ToLower(version)
	switch {
	case strings.Contains(lv, "ubuntu"):
		return "ubuntu"
	case strings.Contains(lv, "deb"):
		return "debian"
	}
	email := strings.ToLower(maintainerEmail)
	switch {
	case strings.Contains(email, "@canonical.com"), strings.Contains(email, "lists.ubuntu.com"):
		return "ubuntu"
	case strings.Contains(email, "@debian.org"),
		strings.Contains(email, "packages.debian.org"),
		strings.Contains(email, "lists.debian.org"),
		strings.Contains(email, "debian-init-diversity@"):
		return "debian"
	}
	return "debian"
}

// BuildDeb constructs a pkg:deb purl for Debian or Ubuntu, with the arch
// qualifier when known.
func BuildDeb(namespace, name, version, arch string) string {
	var q map[string]string
	if arch != "" {
		q = map[string]string{"arch": arch}
	}
	return Build("deb", namespace, name, version, q, "")
}

func splitLastSlash(path string) (namespace, name string) {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", path
	}
	return path[:idx], path[idx+1:]
}
