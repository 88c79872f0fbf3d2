// Package parser holds the process-lifetime registry mapping file-path
// glob patterns to the ecosystem parser responsible for them, grounded on
// claircore's VersionedScanner/PackageScanner registration idiom
// (indexer/versionedscanner.go) but keyed on a path pattern instead of a
// container layer, since this core parses one already-classified file at a
// time rather than walking an image.
package parser

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
)

// Parser is the contract every ecosystem parser satisfies. Both methods
// must never panic: IsMatch is a cheap, I/O-light confirmation beyond the
// registry's glob match (e.g. rejecting a go.mod-shaped path that isn't
// actually at a module root); ExtractPackages does the real read and parse
// and degrades to a minimal PackageData on any failure.
type Parser interface {
	IsMatch(path string) bool
	ExtractPackages(path string) []*packagedcode.PackageData
}

// Registration is one entry in the registry, mirroring the Rust
// register_parser! macro's fields.
type Registration struct {
	Description      string
	PathPatterns     []string
	PackageType      string
	PrimaryLanguage  string
	DocumentationURL string
	// CaseInsensitive relaxes path-pattern matching (README.FACEBOOK-style
	// third-party manifests accept any case); Parser.IsMatch still runs
	// afterward and may apply finer-grained rules.
	CaseInsensitive bool
	Parser          Parser
}

var registry []Registration

// Register adds a parser to the process-lifetime registry. Called from
// each ecosystem package's init(), in source order, so the declaration
// order across packages is link order -- Go guarantees each package's own
// init runs once, and import order across this module is fixed by the
// blank imports of the register package (see register/register.go), so
// registration order is deterministic across runs.
func Register(r Registration) {
	registry = append(registry, r)
}

// Registrations returns the live registry slice, for the assembler/CLI to
// introspect supported datasource coverage. Callers must not mutate it.
func Registrations() []Registration {
	return registry
}

func matchesPattern(pattern, path string, caseInsensitive bool) bool {
	if caseInsensitive {
		pattern = strings.ToLower(pattern)
		path = strings.ToLower(path)
	}
	ok, err := doublestar.Match(pattern, path)
	return err == nil && ok
}

// TryParseFile consults the registry in declaration order and returns the
// first non-empty result, matching the "earliest-registered wins" tie rule.
func TryParseFile(ctx context.Context, path string) []*packagedcode.PackageData {
	for _, reg := range registry {
		matched := false
		for _, pat := range reg.PathPatterns {
			if matchesPattern(pat, path, reg.CaseInsensitive) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if !reg.Parser.IsMatch(path) {
			continue
		}
		pkgs := reg.Parser.ExtractPackages(path)
		if len(pkgs) > 0 {
			zlog.Debug(ctx).Str("path", path).Str("package_type", reg.PackageType).Msg("parsed manifest")
			return pkgs
		}
	}
	return nil
}
