// Package chef extracts PackageData from Chef cookbook metadata.json and
// metadata.rb.
package chef

import (
	"bufio"
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
		Description:      "Chef cookbook metadata (JSON form)",
		PathPatterns:     []string{"**/metadata.json"},
		PackageType:      "chef",
		PrimaryLanguage:  "Ruby",
		DocumentationURL: "https://docs.chef.io/config_rb_metadata/",
		Parser:           metadataJSONParser{},
	})
	parser.Register(parser.Registration{
		Description:      "Chef cookbook metadata (DSL form)",
		PathPatterns:     []string{"**/metadata.rb"},
		PackageType:      "chef",
		PrimaryLanguage:  "Ruby",
		DocumentationURL: "https://docs.chef.io/config_rb_metadata/",
		Parser:           metadataRbParser{},
	})
}

type metadataJSON struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	License     string            `json:"license"`
	Maintainer  string            `json:"maintainer"`
	MaintainerEmail string        `json:"maintainer_email"`
	Source      string            `json:"source_url"`
	Depends     map[string]string `json:"dependencies"`
}

type metadataJSONParser struct{}

func (metadataJSONParser) IsMatch(path string) bool { return true }

func (metadataJSONParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/chef")
	const datasourceID = "chef_metadata_json"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable metadata.json")
		return []*packagedcode.PackageData{packagedcode.Default("chef", datasourceID)}
	}
	var doc metadataJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed metadata.json")
		return []*packagedcode.PackageData{packagedcode.Default("chef", datasourceID)}
	}

	pd := packagedcode.Default("chef", datasourceID)
	pd.PrimaryLanguage = "Ruby"
	pd.Name = doc.Name
	pd.Version = doc.Version
	pd.Description = doc.Description
	pd.DeclaredLicenseExpression = doc.License
	pd.HomepageURL = doc.Source
	if doc.Maintainer != "" {
		pd.Parties = append(pd.Parties, packagedcode.Party{
			Type: packagedcode.PartyPerson, Role: packagedcode.RoleMaintainer,
			Name: doc.Maintainer, Email: doc.MaintainerEmail,
		})
	}
	if pd.Name != "" {
		pd.Purl = purl.Build("chef", "", pd.Name, pd.Version, nil, "")
	}
	for name, constraint := range doc.Depends {
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("chef", "", name, "", nil, ""),
			ExtractedRequirement: constraint,
			Scope:                packagedcode.ScopeDependencies,
			IsRuntime:            true,
			IsDirect:             true,
		})
	}

	return []*packagedcode.PackageData{pd}
}

var (
	chefAssignRe  = regexp.MustCompile(`^\s*(name|version|description|license|maintainer|maintainer_email|source_url)\s+(.+?)\s*$`)
	chefDependsRe = regexp.MustCompile(`^\s*depends\s+(.+?)\s*$`)
)

type metadataRbParser struct{}

func (metadataRbParser) IsMatch(path string) bool { return true }

func (metadataRbParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/chef")
	const datasourceID = "chef_metadata_rb"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable metadata.rb")
		return []*packagedcode.PackageData{packagedcode.Default("chef", datasourceID)}
	}

	pd := packagedcode.Default("chef", datasourceID)
	pd.PrimaryLanguage = "Ruby"

	var maintainer, maintainerEmail string
	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		line := sc.Text()
		if m := chefAssignRe.FindStringSubmatch(line); m != nil {
			val := unquote(m[2])
			switch m[1] {
			case "name":
				pd.Name = val
			case "version":
				pd.Version = val
			case "description":
				pd.Description = val
			case "license":
				pd.DeclaredLicenseExpression = val
			case "source_url":
				pd.HomepageURL = val
			case "maintainer":
				maintainer = val
			case "maintainer_email":
				maintainerEmail = val
			}
			continue
		}
		if m := chefDependsRe.FindStringSubmatch(line); m != nil {
			parts := splitArgs(m[1])
			if len(parts) == 0 {
				continue
			}
			name := unquote(parts[0])
			dep := packagedcode.Dependency{
				Purl:      purl.Build("chef", "", name, "", nil, ""),
				Scope:     packagedcode.ScopeDependencies,
				IsRuntime: true,
				IsDirect:  true,
			}
			if len(parts) > 1 {
				var reqs []string
				for _, p := range parts[1:] {
					reqs = append(reqs, unquote(p))
				}
				dep.ExtractedRequirement = strings.Join(reqs, ",")
			}
			pd.Dependencies = append(pd.Dependencies, dep)
		}
	}
	if maintainer != "" {
		pd.Parties = append(pd.Parties, packagedcode.Party{
			Type: packagedcode.PartyPerson, Role: packagedcode.RoleMaintainer,
			Name: maintainer, Email: maintainerEmail,
		})
	}
	if pd.Name != "" {
		pd.Purl = purl.Build("chef", "", pd.Name, pd.Version, nil, "")
	}

	return []*packagedcode.PackageData{pd}
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
