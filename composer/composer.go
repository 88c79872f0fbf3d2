// Package composer extracts PackageData from PHP composer.json and
// composer.lock, thin JSON adapters per spec.md §4.5.8.
package composer

import (
	"context"
	"encoding/json"
	"os"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "PHP Composer manifest",
		PathPatterns:     []string{"**/composer.json"},
		PackageType:      "composer",
		PrimaryLanguage:  "PHP",
		DocumentationURL: "https://getcomposer.org/doc/04-schema.md",
		Parser:           manifestParser{},
	})
	parser.Register(parser.Registration{
		Description:      "PHP Composer lockfile",
		PathPatterns:     []string{"**/composer.lock"},
		PackageType:      "composer",
		PrimaryLanguage:  "PHP",
		DocumentationURL: "https://getcomposer.org/doc/01-basic-usage.md#composer-lock-the-lock-file",
		Parser:           lockParser{},
	})
}

type composerJSON struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	License     any               `json:"license"`
	Homepage    string            `json:"homepage"`
	Keywords    []string          `json:"keywords"`
	Require     map[string]string `json:"require"`
	RequireDev  map[string]string `json:"require-dev"`
}

type manifestParser struct{}

func (manifestParser) IsMatch(path string) bool { return true }

func buildComposerPurl(name, version string) string {
	ns, n := splitLastSlash(name)
	return purl.Build("composer", ns, n, version, nil, "")
}

func splitLastSlash(s string) (namespace, name string) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return s[:i], s[i+1:]
		}
	}
	return "", s
}

func (manifestParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/composer")
	const datasourceID = "php_composer_json"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable composer.json")
		return []*packagedcode.PackageData{packagedcode.Default("composer", datasourceID)}
	}
	var cj composerJSON
	if err := json.Unmarshal(raw, &cj); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed composer.json")
		return []*packagedcode.PackageData{packagedcode.Default("composer", datasourceID)}
	}

	pd := packagedcode.Default("composer", datasourceID)
	pd.PrimaryLanguage = "PHP"
	pd.Description = cj.Description
	pd.HomepageURL = cj.Homepage
	pd.Keywords = cj.Keywords
	if lic, ok := cj.License.(string); ok {
		pd.DeclaredLicenseExpression = lic
	}
	if cj.Name != "" {
		pd.Namespace, pd.Name = splitLastSlash(cj.Name)
		pd.Purl = purl.Build("composer", pd.Namespace, pd.Name, "", nil, "")
	}

	for name, spec := range cj.Require {
		if name == "php" {
			continue
		}
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 buildComposerPurl(name, ""),
			ExtractedRequirement: spec,
			Scope:                packagedcode.ScopeRequire,
			IsRuntime:            true,
			IsDirect:             true,
		})
	}
	for name, spec := range cj.RequireDev {
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 buildComposerPurl(name, ""),
			ExtractedRequirement: spec,
			Scope:                packagedcode.ScopeDevelopment,
			IsOptional:           true,
			IsDirect:             true,
		})
	}

	return []*packagedcode.PackageData{pd}
}

type composerLock struct {
	Packages    []composerLockPackage `json:"packages"`
	PackagesDev []composerLockPackage `json:"packages-dev"`
}

type composerLockPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Source  struct {
		Reference string `json:"reference"`
	} `json:"source"`
}

type lockParser struct{}

func (lockParser) IsMatch(path string) bool { return true }

func (lockParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/composer")
	const datasourceID = "php_composer_lock"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable composer.lock")
		return []*packagedcode.PackageData{packagedcode.Default("composer", datasourceID)}
	}
	var cl composerLock
	if err := json.Unmarshal(raw, &cl); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed composer.lock")
		return []*packagedcode.PackageData{packagedcode.Default("composer", datasourceID)}
	}

	pd := packagedcode.Default("composer", datasourceID)
	addLockDeps(pd, cl.Packages, false)
	addLockDeps(pd, cl.PackagesDev, true)
	return []*packagedcode.PackageData{pd}
}

func addLockDeps(pd *packagedcode.PackageData, pkgs []composerLockPackage, dev bool) {
	for _, p := range pkgs {
		dep := packagedcode.Dependency{
			Purl:                 buildComposerPurl(p.Name, p.Version),
			ExtractedRequirement: p.Version,
			IsPinned:             true,
			IsRuntime:            !dev,
			IsOptional:           dev,
		}
		if dev {
			dep.Scope = packagedcode.ScopeDevelopment
		} else {
			dep.Scope = packagedcode.ScopeRequire
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}
