package pypi

import (
	"context"

	"github.com/BurntSushi/toml"
	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "Poetry resolved lockfile",
		PathPatterns:     []string{"**/poetry.lock"},
		PackageType:      "pypi",
		PrimaryLanguage:  "Python",
		DocumentationURL: "https://python-poetry.org/docs/libraries/#locking",
		Parser:           poetryLockParser{},
	})
}

type poetryLockTOML struct {
	Package []struct {
		Name     string `toml:"name"`
		Version  string `toml:"version"`
		Category string `toml:"category"`
		Optional bool   `toml:"optional"`
	} `toml:"package"`
}

type poetryLockParser struct{}

func (poetryLockParser) IsMatch(path string) bool { return true }

func (poetryLockParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pypi")
	const datasourceID = "poetry_lock"

	var doc poetryLockTOML
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable or malformed poetry.lock")
		return []*packagedcode.PackageData{packagedcode.Default("pypi", datasourceID)}
	}

	pd := packagedcode.Default("pypi", datasourceID)
	pd.PrimaryLanguage = "Python"

	for _, p := range doc.Package {
		scope := packagedcode.ScopeDependencies
		isRuntime := true
		if p.Category == "dev" {
			scope = packagedcode.ScopeDevelopment
			isRuntime = false
		}
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("pypi", "", normalizePyPIName(p.Name), p.Version, nil, ""),
			ExtractedRequirement: p.Version,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           p.Optional,
			IsPinned:             true,
		})
	}

	return []*packagedcode.PackageData{pd}
}
