// Package cocoapods extracts PackageData from CocoaPods manifests:
// *.podspec (Ruby DSL, regex-extracted like a gemspec), *.podspec.json,
// Podfile, and Podfile.lock.
package cocoapods

import (
	"context"
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "CocoaPods pod specification",
		PathPatterns:     []string{"**/*.podspec"},
		PackageType:      "cocoapods",
		PrimaryLanguage:  "Objective-C",
		DocumentationURL: "https://guides.cocoapods.org/syntax/podspec.html",
		Parser:           podspecParser{},
	})
	parser.Register(parser.Registration{
		Description:      "CocoaPods pod specification (JSON form)",
		PathPatterns:     []string{"**/*.podspec.json"},
		PackageType:      "cocoapods",
		PrimaryLanguage:  "Objective-C",
		DocumentationURL: "https://guides.cocoapods.org/syntax/podspec.html",
		Parser:           podspecJSONParser{},
	})
	parser.Register(parser.Registration{
		Description:      "CocoaPods Podfile",
		PathPatterns:     []string{"**/Podfile"},
		PackageType:      "cocoapods",
		PrimaryLanguage:  "Objective-C",
		DocumentationURL: "https://guides.cocoapods.org/syntax/podfile.html",
		Parser:           podfileParser{},
	})
	parser.Register(parser.Registration{
		Description:      "CocoaPods Podfile.lock",
		PathPatterns:     []string{"**/Podfile.lock"},
		PackageType:      "cocoapods",
		PrimaryLanguage:  "Objective-C",
		DocumentationURL: "https://guides.cocoapods.org/using/the-podfile-lock.html",
		Parser:           podfileLockParser{},
	})
}

var (
	podspecAssignRe  = regexp.MustCompile(`(?m)^\s*\w+\.(name|version|summary|homepage|license|author)\s*=\s*(.+?)\s*$`)
	podspecDependsRe = regexp.MustCompile(`(?m)^\s*\w+\.dependency\s*\(?\s*(.+?)\s*\)?\s*$`)
)

type podspecParser struct{}

func (podspecParser) IsMatch(path string) bool { return true }

func (podspecParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/cocoapods")
	const datasourceID = "cocoapods_podspec"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable podspec")
		return []*packagedcode.PackageData{packagedcode.Default("cocoapods", datasourceID)}
	}
	text := string(raw)

	pd := packagedcode.Default("cocoapods", datasourceID)
	pd.PrimaryLanguage = "Objective-C"

	fields := map[string]string{}
	for _, m := range podspecAssignRe.FindAllStringSubmatch(text, -1) {
		fields[m[1]] = unquote(m[2])
	}
	pd.Name = fields["name"]
	pd.Version = fields["version"]
	pd.Description = fields["summary"]
	pd.HomepageURL = fields["homepage"]
	pd.DeclaredLicenseExpression = fields["license"]
	if author := fields["author"]; author != "" {
		pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleAuthor, Name: author})
	}
	if pd.Name != "" {
		pd.Purl = purl.Build("cocoapods", "", pd.Name, pd.Version, nil, "")
	}

	for _, m := range podspecDependsRe.FindAllStringSubmatch(text, -1) {
		dep := dependencyFromDependencyCall(m[1])
		if dep.Purl != "" {
			pd.Dependencies = append(pd.Dependencies, dep)
		}
	}

	return []*packagedcode.PackageData{pd}
}

func dependencyFromDependencyCall(args string) packagedcode.Dependency {
	parts := splitArgs(args)
	dep := packagedcode.Dependency{Scope: packagedcode.ScopeDependencies, IsRuntime: true, IsDirect: true}
	if len(parts) == 0 {
		return dep
	}
	name := unquote(parts[0])
	dep.Purl = purl.Build("cocoapods", "", name, "", nil, "")
	if len(parts) > 1 {
		var reqs []string
		for _, p := range parts[1:] {
			reqs = append(reqs, unquote(p))
		}
		dep.ExtractedRequirement = strings.Join(reqs, ",")
	}
	return dep
}

func splitArgs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

type podspecJSON struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Summary  string `json:"summary"`
	Homepage string `json:"homepage"`
	License  any    `json:"license"`
	Authors  any    `json:"authors"`
	Author   any    `json:"author"`
	Dependencies map[string][]string `json:"dependencies"`
}

type podspecJSONParser struct{}

func (podspecJSONParser) IsMatch(path string) bool { return true }

func (podspecJSONParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/cocoapods")
	const datasourceID = "cocoapods_podspec_json"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable podspec.json")
		return []*packagedcode.PackageData{packagedcode.Default("cocoapods", datasourceID)}
	}
	var doc podspecJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed podspec.json")
		return []*packagedcode.PackageData{packagedcode.Default("cocoapods", datasourceID)}
	}

	pd := packagedcode.Default("cocoapods", datasourceID)
	pd.PrimaryLanguage = "Objective-C"
	pd.Name = doc.Name
	pd.Version = doc.Version
	pd.Description = doc.Summary
	pd.HomepageURL = doc.Homepage
	if lic, ok := doc.License.(string); ok {
		pd.DeclaredLicenseExpression = lic
	} else if licMap, ok := doc.License.(map[string]any); ok {
		if t, ok := licMap["type"].(string); ok {
			pd.DeclaredLicenseExpression = t
		}
	}
	for _, name := range partyNames(doc.Authors) {
		pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleAuthor, Name: name})
	}
	for _, name := range partyNames(doc.Author) {
		pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleAuthor, Name: name})
	}
	if pd.Name != "" {
		pd.Purl = purl.Build("cocoapods", "", pd.Name, pd.Version, nil, "")
	}

	for name, reqs := range doc.Dependencies {
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("cocoapods", "", name, "", nil, ""),
			ExtractedRequirement: strings.Join(reqs, ","),
			Scope:                packagedcode.ScopeDependencies,
			IsRuntime:            true,
			IsDirect:             true,
		})
	}

	return []*packagedcode.PackageData{pd}
}

func partyNames(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		var out []string
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case map[string]any:
		var out []string
		for name := range t {
			out = append(out, name)
		}
		return out
	}
	return nil
}
