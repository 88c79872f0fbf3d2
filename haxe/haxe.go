// Package haxe extracts PackageData from haxelib.json, the Haxelib package
// manifest.
package haxe

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
		Description:      "Haxelib package manifest",
		PathPatterns:     []string{"**/haxelib.json"},
		PackageType:      "haxe",
		PrimaryLanguage:  "Haxe",
		DocumentationURL: "https://lib.haxe.org/documentation/creating-a-haxelib-package/",
		Parser:           haxelibParser{},
	})
}

type haxelibJSON struct {
	Name         string            `json:"name"`
	URL          string            `json:"url"`
	License      string            `json:"license"`
	Description  string            `json:"description"`
	Version      string            `json:"version"`
	Contributors []string          `json:"contributors"`
	Dependencies map[string]string `json:"dependencies"`
}

type haxelibParser struct{}

func (haxelibParser) IsMatch(path string) bool { return true }

func (haxelibParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/haxe")
	const datasourceID = "haxelib_json"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable haxelib.json")
		return []*packagedcode.PackageData{packagedcode.Default("haxe", datasourceID)}
	}
	var doc haxelibJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed haxelib.json")
		return []*packagedcode.PackageData{packagedcode.Default("haxe", datasourceID)}
	}

	pd := packagedcode.Default("haxe", datasourceID)
	pd.PrimaryLanguage = "Haxe"
	pd.Name = doc.Name
	pd.Version = doc.Version
	pd.Description = doc.Description
	pd.HomepageURL = doc.URL
	pd.DeclaredLicenseExpression = doc.License
	for _, c := range doc.Contributors {
		pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleContributor, Name: c})
	}
	if pd.Name != "" {
		pd.Purl = purl.Build("haxelib", "", pd.Name, pd.Version, nil, "")
	}

	for name, requirement := range doc.Dependencies {
		if requirement == "" {
			continue
		}
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("haxelib", "", name, requirement, nil, ""),
			ExtractedRequirement: requirement,
			Scope:                packagedcode.ScopeDependencies,
			IsRuntime:            true,
			IsDirect:             true,
			IsPinned:             true,
		})
	}

	return []*packagedcode.PackageData{pd}
}
