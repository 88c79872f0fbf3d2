// Package dart extracts PackageData from Dart/Flutter pubspec.yaml and
// pubspec.lock files.
package dart

import (
	"context"
	"os"

	"github.com/quay/zlog"
	"gopkg.in/yaml.v3"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "Dart/Flutter package manifest",
		PathPatterns:     []string{"**/pubspec.yaml"},
		PackageType:      "pub",
		PrimaryLanguage:  "Dart",
		DocumentationURL: "https://dart.dev/tools/pub/pubspec",
		Parser:           pubspecParser{},
	})
	parser.Register(parser.Registration{
		Description:      "Dart/Flutter resolved lockfile",
		PathPatterns:     []string{"**/pubspec.lock"},
		PackageType:      "pub",
		PrimaryLanguage:  "Dart",
		DocumentationURL: "https://dart.dev/tools/pub/glossary#lockfile",
		Parser:           pubspecLockParser{},
	})
}

type pubspecYAML struct {
	Name        string            `yaml:"name"`
	Version     string            `yaml:"version"`
	Description string            `yaml:"description"`
	Homepage    string            `yaml:"homepage"`
	Repository  string            `yaml:"repository"`
	Environment map[string]string `yaml:"environment"`
	Dependencies    map[string]any `yaml:"dependencies"`
	DevDependencies map[string]any `yaml:"dev_dependencies"`
}

type pubspecParser struct{}

func (pubspecParser) IsMatch(path string) bool { return true }

func (pubspecParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/dart")
	const datasourceID = "pubspec_yaml"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable pubspec.yaml")
		return []*packagedcode.PackageData{packagedcode.Default("pub", datasourceID)}
	}
	var doc pubspecYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed pubspec.yaml")
		return []*packagedcode.PackageData{packagedcode.Default("pub", datasourceID)}
	}

	pd := packagedcode.Default("pub", datasourceID)
	pd.PrimaryLanguage = "Dart"
	pd.Name = doc.Name
	pd.Version = doc.Version
	pd.Description = doc.Description
	pd.HomepageURL = doc.Homepage
	if pd.HomepageURL == "" {
		pd.HomepageURL = doc.Repository
	}
	pd.VCSUrl = doc.Repository
	if pd.Name != "" {
		pd.Purl = purl.Build("pub", "", pd.Name, pd.Version, nil, "")
	}

	addPubDeps(pd, doc.Dependencies, packagedcode.ScopeDependencies, true, false)
	addPubDeps(pd, doc.DevDependencies, packagedcode.ScopeDevelopment, false, true)

	return []*packagedcode.PackageData{pd}
}

func addPubDeps(pd *packagedcode.PackageData, deps map[string]any, scope string, isRuntime, isOptional bool) {
	for name, spec := range deps {
		requirement := ""
		switch v := spec.(type) {
		case string:
			requirement = v
		case map[string]any:
			if ver, ok := v["version"].(string); ok {
				requirement = ver
			}
		}
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("pub", "", name, "", nil, ""),
			ExtractedRequirement: requirement,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           isOptional,
			IsDirect:             true,
		})
	}
}

type pubspecLockYAML struct {
	Packages map[string]pubspecLockEntry `yaml:"packages"`
}

type pubspecLockEntry struct {
	Version     string `yaml:"version"`
	Dependency  string `yaml:"dependency"`
	Description any    `yaml:"description"`
	Source      string `yaml:"source"`
}

type pubspecLockParser struct{}

func (pubspecLockParser) IsMatch(path string) bool { return true }

func (pubspecLockParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/dart")
	const datasourceID = "pubspec_lock"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable pubspec.lock")
		return []*packagedcode.PackageData{packagedcode.Default("pub", datasourceID)}
	}
	var doc pubspecLockYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed pubspec.lock")
		return []*packagedcode.PackageData{packagedcode.Default("pub", datasourceID)}
	}

	pd := packagedcode.Default("pub", datasourceID)
	pd.PrimaryLanguage = "Dart"

	for name, entry := range doc.Packages {
		isDev := entry.Dependency == "direct dev"
		isTransitive := entry.Dependency == "transitive"
		dep := packagedcode.Dependency{
			Purl:                 purl.Build("pub", "", name, entry.Version, nil, ""),
			ExtractedRequirement: entry.Version,
			IsPinned:             entry.Version != "",
			IsDirect:             !isTransitive,
			IsRuntime:            !isDev,
			IsOptional:           isDev,
		}
		if isDev {
			dep.Scope = packagedcode.ScopeDevelopment
		} else {
			dep.Scope = packagedcode.ScopeDependencies
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}

	return []*packagedcode.PackageData{pd}
}
