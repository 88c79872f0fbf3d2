// Package cargo extracts PackageData from Cargo.toml manifests and
// Cargo.lock lockfiles, a thin TOML adapter per spec.md §4.5.8.
package cargo

import (
	"context"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "Cargo package manifest",
		PathPatterns:     []string{"**/Cargo.toml"},
		PackageType:      "cargo",
		PrimaryLanguage:  "Rust",
		DocumentationURL: "https://doc.rust-lang.org/cargo/reference/manifest.html",
		Parser:           manifestParser{},
	})
	parser.Register(parser.Registration{
		Description:      "Cargo lockfile",
		PathPatterns:     []string{"**/Cargo.lock"},
		PackageType:      "cargo",
		PrimaryLanguage:  "Rust",
		DocumentationURL: "https://doc.rust-lang.org/cargo/guide/cargo-toml-vs-cargo-lock.html",
		Parser:           lockParser{},
	})
}

type cargoToml struct {
	Package struct {
		Name        string   `toml:"name"`
		Version     string   `toml:"version"`
		Description string   `toml:"description"`
		License     string   `toml:"license"`
		Homepage    string   `toml:"homepage"`
		Repository  string   `toml:"repository"`
		Authors     []string `toml:"authors"`
		Keywords    []string `toml:"keywords"`
	} `toml:"package"`
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

type manifestParser struct{}

func (manifestParser) IsMatch(path string) bool { return true }

func (manifestParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/cargo")
	const datasourceID = "cargo_toml"

	var ct cargoToml
	if _, err := toml.DecodeFile(path, &ct); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable or malformed Cargo.toml")
		return []*packagedcode.PackageData{packagedcode.Default("cargo", datasourceID)}
	}

	pd := packagedcode.Default("cargo", datasourceID)
	pd.Name = ct.Package.Name
	pd.Version = ct.Package.Version
	pd.Description = ct.Package.Description
	pd.DeclaredLicenseExpression = ct.Package.License
	pd.HomepageURL = ct.Package.Homepage
	pd.VCSUrl = ct.Package.Repository
	pd.Keywords = ct.Package.Keywords
	pd.PrimaryLanguage = "Rust"
	if pd.Name != "" {
		pd.Purl = purl.Build("cargo", "", pd.Name, pd.Version, nil, "")
	}
	for _, author := range ct.Package.Authors {
		pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleAuthor, Name: author})
	}

	addDeps(pd, ct.Dependencies, packagedcode.ScopeDependencies, true, false)
	addDeps(pd, ct.DevDependencies, packagedcode.ScopeDevelopment, false, false)
	addDeps(pd, ct.BuildDependencies, "build-dependencies", true, false)

	return []*packagedcode.PackageData{pd}
}

func addDeps(pd *packagedcode.PackageData, deps map[string]any, scope string, isRuntime, isOptional bool) {
	for name, spec := range deps {
		requirement := ""
		depOptional := isOptional
		switch t := spec.(type) {
		case string:
			requirement = t
		case map[string]any:
			if v, ok := t["version"].(string); ok {
				requirement = v
			}
			if opt, ok := t["optional"].(bool); ok && opt {
				depOptional = true
			}
		}
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("cargo", "", name, "", nil, ""),
			ExtractedRequirement: requirement,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           depOptional,
			IsDirect:             true,
			IsPinned:             isPinnedRequirement(requirement),
		})
	}
}

// isPinnedRequirement reports whether a Cargo version requirement names
// exactly one version: a literal "=1.2.3" requirement, or a bare version
// string that itself parses as an exact semantic version.
func isPinnedRequirement(requirement string) bool {
	trimmed := strings.TrimPrefix(strings.TrimSpace(requirement), "=")
	if trimmed == "" || strings.ContainsAny(trimmed, "^~*<>, ") {
		return false
	}
	_, err := semver.NewVersion(trimmed)
	return err == nil
}

type cargoLock struct {
	Package []struct {
		Name         string   `toml:"name"`
		Version      string   `toml:"version"`
		Source       string   `toml:"source"`
		Checksum     string   `toml:"checksum"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"package"`
}

type lockParser struct{}

func (lockParser) IsMatch(path string) bool { return true }

func (lockParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/cargo")
	const datasourceID = "cargo_lock"

	var cl cargoLock
	if _, err := toml.DecodeFile(path, &cl); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable or malformed Cargo.lock")
		return []*packagedcode.PackageData{packagedcode.Default("cargo", datasourceID)}
	}

	pd := packagedcode.Default("cargo", datasourceID)
	for _, p := range cl.Package {
		dep := packagedcode.Dependency{
			Purl:                 purl.Build("cargo", "", p.Name, p.Version, nil, ""),
			ExtractedRequirement: p.Version,
			IsPinned:             true,
			IsRuntime:            true,
		}
		if p.Checksum != "" {
			dep.ResolvedPackage = &packagedcode.PackageData{PackageType: "cargo", Name: p.Name, Version: p.Version, SHA256: p.Checksum}
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	return []*packagedcode.PackageData{pd}
}
