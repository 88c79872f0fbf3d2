package pypi

import (
	"context"

	"github.com/BurntSushi/toml"
	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/pep508"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "PEP 621 Python project manifest",
		PathPatterns:     []string{"**/pyproject.toml"},
		PackageType:      "pypi",
		PrimaryLanguage:  "Python",
		DocumentationURL: "https://packaging.python.org/en/latest/specifications/pyproject-toml/",
		Parser:           pyprojectParser{},
	})
}

type pyprojectTOML struct {
	Project struct {
		Name            string   `toml:"name"`
		Version         string   `toml:"version"`
		Description     string   `toml:"description"`
		Keywords        []string `toml:"keywords"`
		Dependencies    []string `toml:"dependencies"`
		License         any      `toml:"license"`
		OptionalDeps    map[string][]string `toml:"optional-dependencies"`
		Urls            map[string]string   `toml:"urls"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name         string            `toml:"name"`
			Version      string            `toml:"version"`
			Description  string            `toml:"description"`
			Dependencies map[string]any    `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

type pyprojectParser struct{}

func (pyprojectParser) IsMatch(path string) bool { return true }

func (pyprojectParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pypi")
	const datasourceID = "pypi_pyproject_toml"

	var doc pyprojectTOML
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable or malformed pyproject.toml")
		return []*packagedcode.PackageData{packagedcode.Default("pypi", datasourceID)}
	}

	pd := packagedcode.Default("pypi", datasourceID)
	pd.PrimaryLanguage = "Python"

	switch {
	case doc.Project.Name != "":
		pd.Name = normalizePyPIName(doc.Project.Name)
		pd.Version = doc.Project.Version
		pd.Description = doc.Project.Description
		pd.Keywords = doc.Project.Keywords
		if lic, ok := doc.Project.License.(string); ok {
			pd.DeclaredLicenseExpression = lic
		} else if licMap, ok := doc.Project.License.(map[string]any); ok {
			if t, ok := licMap["text"].(string); ok {
				pd.DeclaredLicenseExpression = t
			}
		}
		if home, ok := doc.Project.Urls["Homepage"]; ok {
			pd.HomepageURL = home
		}
		for _, reqLine := range doc.Project.Dependencies {
			addPEP508Dep(pd, reqLine, packagedcode.ScopeDependencies, true, false)
		}
		for group, reqs := range doc.Project.OptionalDeps {
			for _, reqLine := range reqs {
				addPEP508Dep(pd, reqLine, group, true, true)
			}
		}
	case doc.Tool.Poetry.Name != "":
		pd.Name = normalizePyPIName(doc.Tool.Poetry.Name)
		pd.Version = doc.Tool.Poetry.Version
		pd.Description = doc.Tool.Poetry.Description
		for name, spec := range doc.Tool.Poetry.Dependencies {
			if name == "python" {
				continue
			}
			requirement := ""
			if s, ok := spec.(string); ok {
				requirement = s
			}
			pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
				Purl:                 purl.Build("pypi", "", normalizePyPIName(name), "", nil, ""),
				ExtractedRequirement: requirement,
				Scope:                packagedcode.ScopeDependencies,
				IsRuntime:            true,
				IsDirect:             true,
			})
		}
	}

	if pd.Name != "" {
		pd.Purl = purl.Build("pypi", "", pd.Name, pd.Version, nil, "")
	}

	return []*packagedcode.PackageData{pd}
}

func addPEP508Dep(pd *packagedcode.PackageData, line, scope string, isRuntime, isOptional bool) {
	req, ok := pep508.Parse(line)
	if !ok {
		return
	}
	pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
		Purl:                 purl.Build("pypi", "", normalizePyPIName(req.Name), "", nil, ""),
		ExtractedRequirement: req.Specifier,
		Scope:                scope,
		IsRuntime:             isRuntime,
		IsOptional:            isOptional,
		IsDirect:              true,
	})
}
