// Package maven extracts PackageData from Maven pom.xml files using the
// standard library's encoding/xml; no XML library appears in the example
// corpus's dependency surface, so this is a deliberate stdlib-only choice
// (documented in DESIGN.md) rather than a default.
package maven

import (
	"context"
	"encoding/xml"
	"os"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "Maven project object model",
		PathPatterns:     []string{"**/pom.xml"},
		PackageType:      "maven",
		PrimaryLanguage:  "Java",
		DocumentationURL: "https://maven.apache.org/pom.html",
		Parser:           pomParser{},
	})
}

type pomXML struct {
	XMLName    xml.Name `xml:"project"`
	GroupID    string   `xml:"groupId"`
	ArtifactID string   `xml:"artifactId"`
	Version    string   `xml:"version"`
	Name       string   `xml:"name"`
	Description string  `xml:"description"`
	URL        string   `xml:"url"`
	Parent     struct {
		GroupID    string `xml:"groupId"`
		ArtifactID string `xml:"artifactId"`
		Version    string `xml:"version"`
	} `xml:"parent"`
	Licenses struct {
		License []struct {
			Name string `xml:"name"`
		} `xml:"license"`
	} `xml:"licenses"`
	Developers struct {
		Developer []struct {
			Name  string `xml:"name"`
			Email string `xml:"email"`
		} `xml:"developer"`
	} `xml:"developers"`
	Dependencies struct {
		Dependency []pomDependency `xml:"dependency"`
	} `xml:"dependencies"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
	Optional   bool   `xml:"optional"`
}

type pomParser struct{}

func (pomParser) IsMatch(path string) bool { return true }

func (pomParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/maven")
	const datasourceID = "maven_pom"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable pom.xml")
		return []*packagedcode.PackageData{packagedcode.Default("maven", datasourceID)}
	}
	var doc pomXML
	if err := xml.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed pom.xml")
		return []*packagedcode.PackageData{packagedcode.Default("maven", datasourceID)}
	}

	pd := packagedcode.Default("maven", datasourceID)
	pd.PrimaryLanguage = "Java"

	groupID := doc.GroupID
	if groupID == "" {
		groupID = doc.Parent.GroupID
	}
	version := doc.Version
	if version == "" {
		version = doc.Parent.Version
	}
	pd.Namespace = groupID
	pd.Name = doc.ArtifactID
	pd.Version = version
	pd.Description = doc.Description
	pd.HomepageURL = doc.URL

	var licenses []string
	for _, l := range doc.Licenses.License {
		if l.Name != "" {
			licenses = append(licenses, l.Name)
		}
	}
	if len(licenses) > 0 {
		pd.DeclaredLicenseExpression = joinLicenses(licenses)
	}

	for _, d := range doc.Developers.Developer {
		pd.Parties = append(pd.Parties, packagedcode.Party{
			Type: packagedcode.PartyPerson, Role: packagedcode.RoleContributor,
			Name: d.Name, Email: d.Email,
		})
	}

	if pd.Name != "" {
		pd.Purl = purl.Build("maven", pd.Namespace, pd.Name, pd.Version, nil, "")
	}

	for _, d := range doc.Dependencies.Dependency {
		scope := d.Scope
		if scope == "" {
			scope = packagedcode.ScopeDependencies
		}
		dep := packagedcode.Dependency{
			Purl:                 purl.Build("maven", d.GroupID, d.ArtifactID, d.Version, nil, ""),
			ExtractedRequirement: d.Version,
			Scope:                scope,
			IsRuntime:            scope == "compile" || scope == "runtime" || scope == packagedcode.ScopeDependencies,
			IsOptional:           d.Optional,
			IsDirect:             true,
			IsPinned:             d.Version != "",
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}

	return []*packagedcode.PackageData{pd}
}

func joinLicenses(licenses []string) string {
	out := licenses[0]
	for _, l := range licenses[1:] {
		out += " OR " + l
	}
	return out
}
