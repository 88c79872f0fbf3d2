// Package npm extracts PackageData from package.json manifests and
// package-lock.json/npm-shrinkwrap.json lockfiles, grounded on the
// "thin adapter" shape spec.md §4.5.8 describes for standard JSON/TOML/YAML
// formats: parse, pull fields, build a purl, walk dependencies.
package npm

import (
	"context"
	"encoding/json"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "npm package manifest",
		PathPatterns:     []string{"**/package.json"},
		PackageType:      "npm",
		PrimaryLanguage:  "JavaScript",
		DocumentationURL: "https://docs.npmjs.com/cli/v10/configuring-npm/package-json",
		Parser:           manifestParser{},
	})
	parser.Register(parser.Registration{
		Description:      "npm lockfile",
		PathPatterns:     []string{"**/package-lock.json", "**/npm-shrinkwrap.json"},
		PackageType:      "npm",
		PrimaryLanguage:  "JavaScript",
		DocumentationURL: "https://docs.npmjs.com/cli/v10/configuring-npm/package-lock-json",
		Parser:           lockParser{},
	})
}

type packageJSON struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Description          string            `json:"description"`
	Homepage             string            `json:"homepage"`
	License              string            `json:"license"`
	Private              bool              `json:"private"`
	Keywords             []string          `json:"keywords"`
	Author               any               `json:"author"`
	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
	Repository           any               `json:"repository"`
	Bugs                 any               `json:"bugs"`
}

type manifestParser struct{}

func (manifestParser) IsMatch(path string) bool { return true }

func (manifestParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/npm")
	const datasourceID = "npm_package_json"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable package.json")
		return []*packagedcode.PackageData{packagedcode.Default("npm", datasourceID)}
	}
	var pj packageJSON
	if err := json.Unmarshal(raw, &pj); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed package.json")
		return []*packagedcode.PackageData{packagedcode.Default("npm", datasourceID)}
	}

	pd := packagedcode.Default("npm", datasourceID)
	pd.Name = pj.Name
	pd.Version = pj.Version
	pd.Description = pj.Description
	pd.HomepageURL = pj.Homepage
	pd.DeclaredLicenseExpression = pj.License
	pd.IsPrivate = pj.Private
	pd.Keywords = pj.Keywords
	pd.PrimaryLanguage = "JavaScript"
	if pj.Name != "" {
		pd.Purl = purl.BuildNPM(pj.Name, pj.Version)
	}

	if author := partyFromAny(pj.Author, packagedcode.RoleAuthor); author != nil {
		pd.Parties = append(pd.Parties, *author)
	}

	addDeps(pd, pj.Dependencies, packagedcode.ScopeDependencies, true, false)
	addDeps(pd, pj.DevDependencies, packagedcode.ScopeDevDependencies, false, false)
	addDeps(pd, pj.OptionalDependencies, packagedcode.ScopeOptional, true, true)

	return []*packagedcode.PackageData{pd}
}

// partyFromAny handles package.json's "author" field, which is either a
// plain string ("Jane Doe <jane@example.com>") or an object
// {"name":..., "email":..., "url":...}.
func partyFromAny(v any, role string) *packagedcode.Party {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return &packagedcode.Party{Type: packagedcode.PartyPerson, Role: role, Name: t}
	case map[string]any:
		name, _ := t["name"].(string)
		if name == "" {
			return nil
		}
		email, _ := t["email"].(string)
		url, _ := t["url"].(string)
		return &packagedcode.Party{Type: packagedcode.PartyPerson, Role: role, Name: name, Email: email, URL: url}
	}
	return nil
}

func addDeps(pd *packagedcode.PackageData, deps map[string]string, scope string, isRuntime, isOptional bool) {
	for name, spec := range deps {
		dep := packagedcode.Dependency{
			ExtractedRequirement: spec,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           isOptional,
			IsDirect:             true,
			IsPinned:             isPinnedRequirement(spec),
		}
		if name != "" {
			dep.Purl = purl.BuildNPM(name, "")
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}

// isPinnedRequirement reports whether an npm version range names exactly
// one version: no range operators or wildcard segments, and what's left
// parses as a real semantic version rather than some other tag-like string.
func isPinnedRequirement(spec string) bool {
	if spec == "" {
		return false
	}
	for _, r := range spec {
		switch r {
		case '^', '~', '>', '<', '*', 'x', 'X', '|', ' ':
			return false
		}
	}
	_, err := semver.NewVersion(spec)
	return err == nil
}
