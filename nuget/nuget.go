// Package nuget extracts PackageData from .nuspec manifests using the
// standard library's encoding/xml (same stdlib-only rationale as maven).
package nuget

import (
	"context"
	"encoding/xml"
	"os"
	"strings"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "NuGet package specification",
		PathPatterns:     []string{"**/*.nuspec"},
		PackageType:      "nuget",
		PrimaryLanguage:  "C#",
		DocumentationURL: "https://learn.microsoft.com/en-us/nuget/reference/nuspec",
		Parser:           nuspecParser{},
	})
}

type nuspecXML struct {
	Metadata struct {
		ID          string `xml:"id"`
		Version     string `xml:"version"`
		Title       string `xml:"title"`
		Description string `xml:"description"`
		ProjectURL  string `xml:"projectUrl"`
		LicenseURL  string `xml:"licenseUrl"`
		License     struct {
			Type  string `xml:"type,attr"`
			Value string `xml:",chardata"`
		} `xml:"license"`
		Authors string `xml:"authors"`
		Owners  string `xml:"owners"`
		Tags    string   `xml:"tags"`
		Dependencies struct {
			Dependency []nuspecDependency `xml:"dependency"`
			Groups     []struct {
				Dependency []nuspecDependency `xml:"dependency"`
			} `xml:"group"`
		} `xml:"dependencies"`
	} `xml:"metadata"`
}

type nuspecDependency struct {
	ID      string `xml:"id,attr"`
	Version string `xml:"version,attr"`
	Include string `xml:"include,attr"`
}

type nuspecParser struct{}

func (nuspecParser) IsMatch(path string) bool { return true }

func (nuspecParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/nuget")
	const datasourceID = "nuget_nuspec"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable nuspec")
		return []*packagedcode.PackageData{packagedcode.Default("nuget", datasourceID)}
	}
	var doc nuspecXML
	if err := xml.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed nuspec")
		return []*packagedcode.PackageData{packagedcode.Default("nuget", datasourceID)}
	}

	md := doc.Metadata
	pd := packagedcode.Default("nuget", datasourceID)
	pd.PrimaryLanguage = "C#"
	pd.Name = md.ID
	pd.Version = md.Version
	pd.Description = md.Description
	pd.HomepageURL = md.ProjectURL

	switch {
	case md.License.Value != "":
		pd.DeclaredLicenseExpression = md.License.Value
	case md.LicenseURL != "":
		pd.DeclaredLicenseExpression = md.LicenseURL
	}

	pd.Keywords = splitTags(md.Tags)

	for _, a := range splitCommaList(md.Authors) {
		pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleAuthor, Name: a})
	}
	for _, o := range splitCommaList(md.Owners) {
		pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleMaintainer, Name: o})
	}

	if pd.Name != "" {
		pd.Purl = purl.Build("nuget", "", pd.Name, pd.Version, nil, "")
	}

	addNugetDeps(pd, md.Dependencies.Dependency)
	for _, group := range md.Dependencies.Groups {
		addNugetDeps(pd, group.Dependency)
	}

	return []*packagedcode.PackageData{pd}
}

func addNugetDeps(pd *packagedcode.PackageData, deps []nuspecDependency) {
	for _, d := range deps {
		if d.ID == "" {
			continue
		}
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("nuget", "", d.ID, d.Version, nil, ""),
			ExtractedRequirement: d.Version,
			Scope:                packagedcode.ScopeDependencies,
			IsRuntime:            true,
			IsDirect:             true,
			IsPinned:             d.Version != "",
		})
	}
}

// splitCommaList splits a nuspec "authors"/"owners" field, a single
// element holding a comma-separated list of names (unlike tags, names may
// contain internal spaces).
func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func splitTags(tags string) []string {
	var out []string
	var cur []rune
	for _, r := range tags {
		if r == ' ' || r == ',' {
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = nil
			}
			continue
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}
