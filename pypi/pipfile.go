package pypi

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "pipenv Pipfile",
		PathPatterns:     []string{"**/Pipfile"},
		PackageType:      "pypi",
		PrimaryLanguage:  "Python",
		DocumentationURL: "https://pipenv.pypa.io/en/latest/pipfile.html",
		Parser:           pipfileParser{},
	})
	parser.Register(parser.Registration{
		Description:      "pipenv Pipfile.lock",
		PathPatterns:     []string{"**/Pipfile.lock"},
		PackageType:      "pypi",
		PrimaryLanguage:  "Python",
		DocumentationURL: "https://pipenv.pypa.io/en/latest/pipfile.html#pipfile-lock",
		Parser:           pipfileLockParser{},
	})
}

type pipfileTOML struct {
	Packages    map[string]any `toml:"packages"`
	DevPackages map[string]any `toml:"dev-packages"`
}

type pipfileParser struct{}

func (pipfileParser) IsMatch(path string) bool { return true }

func (pipfileParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pypi")
	const datasourceID = "pypi_pipfile"

	var doc pipfileTOML
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable or malformed Pipfile")
		return []*packagedcode.PackageData{packagedcode.Default("pypi", datasourceID)}
	}

	pd := packagedcode.Default("pypi", datasourceID)
	pd.PrimaryLanguage = "Python"

	addPipfileDeps(pd, doc.Packages, packagedcode.ScopeDependencies, true, false)
	addPipfileDeps(pd, doc.DevPackages, packagedcode.ScopeDevelopment, false, true)

	return []*packagedcode.PackageData{pd}
}

func addPipfileDeps(pd *packagedcode.PackageData, pkgs map[string]any, scope string, isRuntime, isOptional bool) {
	for name, spec := range pkgs {
		requirement := ""
		switch v := spec.(type) {
		case string:
			if v != "*" {
				requirement = v
			}
		case map[string]any:
			if ver, ok := v["version"].(string); ok && ver != "*" {
				requirement = ver
			}
		}
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("pypi", "", normalizePyPIName(name), "", nil, ""),
			ExtractedRequirement: requirement,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           isOptional,
			IsDirect:             true,
			IsPinned:             requirement != "" && !strings.ContainsAny(requirement, "<>*"),
		})
	}
}

type pipfileLock struct {
	Default map[string]pipfileLockEntry `json:"default"`
	Develop map[string]pipfileLockEntry `json:"develop"`
}

type pipfileLockEntry struct {
	Version string `json:"version"`
	Hashes  []string `json:"hashes"`
}

type pipfileLockParser struct{}

func (pipfileLockParser) IsMatch(path string) bool { return true }

func (pipfileLockParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pypi")
	const datasourceID = "pypi_pipfile_lock"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable Pipfile.lock")
		return []*packagedcode.PackageData{packagedcode.Default("pypi", datasourceID)}
	}
	var lock pipfileLock
	if err := json.Unmarshal(raw, &lock); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed Pipfile.lock")
		return []*packagedcode.PackageData{packagedcode.Default("pypi", datasourceID)}
	}

	pd := packagedcode.Default("pypi", datasourceID)
	addPipfileLockDeps(pd, lock.Default, packagedcode.ScopeDependencies, true, false)
	addPipfileLockDeps(pd, lock.Develop, packagedcode.ScopeDevelopment, false, true)
	return []*packagedcode.PackageData{pd}
}

func addPipfileLockDeps(pd *packagedcode.PackageData, entries map[string]pipfileLockEntry, scope string, isRuntime, isOptional bool) {
	for name, e := range entries {
		version := strings.TrimPrefix(e.Version, "==")
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("pypi", "", normalizePyPIName(name), version, nil, ""),
			ExtractedRequirement: e.Version,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           isOptional,
			IsPinned:             version != "",
		})
	}
}
