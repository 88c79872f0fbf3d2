// Package pnpm extracts PackageData from pnpm-lock.yaml, grounded on
// spec.md §4.5.3: the lockfile's own "packages" map uses a version-dependent
// key shape, and distinguishing a scoped package's "@" from the
// name/version separator "@" is the genuinely hard part.
package pnpm

import (
	"context"
	"encoding/base64"
	"os"
	"strconv"
	"strings"

	"github.com/quay/zlog"
	"gopkg.in/yaml.v3"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "pnpm workspace lockfile",
		PathPatterns:     []string{"**/pnpm-lock.yaml"},
		PackageType:      "npm",
		PrimaryLanguage:  "JavaScript",
		DocumentationURL: "https://pnpm.io/git#lockfile-version",
		Parser:           lockParser{},
	})
}

type lockFile struct {
	LockfileVersion   any                    `yaml:"lockfileVersion"`
	ShrinkwrapVersion int                    `yaml:"shrinkwrapVersion"`
	Packages          map[string]lockPackage `yaml:"packages"`
	Importers         map[string]importer    `yaml:"importers"`
}

type lockPackage struct {
	Dev        bool `yaml:"dev"`
	Optional   bool `yaml:"optional"`
	Resolution struct {
		Integrity string `yaml:"integrity"`
	} `yaml:"resolution"`
}

type importer struct {
	DevDependencies map[string]any `yaml:"devDependencies"`
}

type lockParser struct{}

func (lockParser) IsMatch(path string) bool { return true }

func (lockParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pnpm")
	const datasourceID = "pnpm_lock_yaml"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable pnpm-lock.yaml")
		return []*packagedcode.PackageData{packagedcode.Default("npm", datasourceID)}
	}
	var lf lockFile
	if err := yaml.Unmarshal(raw, &lf); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed pnpm-lock.yaml")
		return []*packagedcode.PackageData{packagedcode.Default("npm", datasourceID)}
	}

	version := detectVersion(lf)
	devFromImporters := collectDevNames(lf.Importers)

	pd := packagedcode.Default("npm", datasourceID)
	pd.ExtraData = map[string]any{"lockfile_version": version}

	for key, p := range lf.Packages {
		name, ver := parseKey(key, version)
		if name == "" {
			continue
		}
		dep := packagedcode.Dependency{
			ExtractedRequirement: ver,
			IsPinned:             true,
			Purl:                 purl.BuildNPM(name, ver),
		}
		dev := p.Dev || devFromImporters[name]
		switch {
		case dev:
			dep.Scope = packagedcode.ScopeDev
			dep.IsRuntime = false
		case p.Optional:
			dep.Scope = packagedcode.ScopeOptional
			dep.IsRuntime = true
			dep.IsOptional = true
		default:
			dep.IsRuntime = true
		}
		if p.Resolution.Integrity != "" {
			dep.ResolvedPackage = resolvedFromIntegrity(name, ver, p.Resolution.Integrity)
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}

	return []*packagedcode.PackageData{pd}
}

// detectVersion implements the shrinkwrapVersion/lockfileVersion/default
// precedence from spec.md §4.5.3.
func detectVersion(lf lockFile) string {
	if lf.ShrinkwrapVersion != 0 {
		return strconv.Itoa(lf.ShrinkwrapVersion) + ".0"
	}
	switch v := lf.LockfileVersion.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return "5.0"
}

func collectDevNames(importers map[string]importer) map[string]bool {
	out := make(map[string]bool)
	for _, imp := range importers {
		for name := range imp.DevDependencies {
			out[name] = true
		}
	}
	return out
}

// parseKey splits one "packages" map key into (name, version) according to
// the shape that varies by lockfile version. v5 uses a trailing "/version"
// separator with an optional leading "/"; v6 uses "@version" found by
// splitting on the *last* unescaped "@" (the scope's own leading "@" isn't
// a separator); v9 drops the leading "/" entirely but otherwise matches v6.
func parseKey(key string, version string) (name, ver string) {
	key = strings.TrimPrefix(key, "/")
	major := majorOf(version)
	switch {
	case major <= 5:
		return parseV5Key(key)
	default:
		return parseAtSeparatedKey(key)
	}
}

func majorOf(version string) int {
	major, _, _ := strings.Cut(version, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return 5
	}
	return n
}

// parseV5Key handles keys like "@napi-rs/simple-git-android-arm-eabi/0.1.8":
// split by the *last* "/" for the version; if what remains starts with "@",
// the scope occupies the segment up to the first "/".
func parseV5Key(key string) (name, ver string) {
	idx := strings.LastIndex(key, "/")
	if idx < 0 {
		return key, ""
	}
	name = key[:idx]
	ver = key[idx+1:]
	return name, ver
}

// parseAtSeparatedKey handles v6/v9 keys like "@headlessui/react@1.6.6" or
// "@babel/helper-validator-identifier@7.24.7": split on the last "@" that
// isn't the scope's own leading "@".
func parseAtSeparatedKey(key string) (name, ver string) {
	scoped := strings.HasPrefix(key, "@")
	search := key
	if scoped {
		search = key[1:]
	}
	idx := strings.LastIndex(search, "@")
	if idx < 0 {
		if scoped {
			return key, ""
		}
		return key, ""
	}
	if scoped {
		idx++ // account for the stripped leading "@" in the offset
	}
	return key[:idx], key[idx+1:]
}

func resolvedFromIntegrity(name, version, integrity string) *packagedcode.PackageData {
	resolved := &packagedcode.PackageData{PackageType: "npm", Name: name, Version: version}
	alg, b64, ok := strings.Cut(integrity, "-")
	if !ok {
		return resolved
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return resolved
	}
	hex := toHex(raw)
	switch alg {
	case "sha1":
		resolved.SHA1 = hex
	case "sha512":
		resolved.SHA512 = hex
	case "sha256":
		resolved.SHA256 = hex
	}
	return resolved
}

func toHex(raw []byte) string {
	const hextable = "0123456789abcdef"
	var sb strings.Builder
	sb.Grow(len(raw) * 2)
	for _, b := range raw {
		sb.WriteByte(hextable[b>>4])
		sb.WriteByte(hextable[b&0x0f])
	}
	return sb.String()
}
