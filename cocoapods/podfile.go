package cocoapods

import (
	"bufio"
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/quay/zlog"
	"gopkg.in/yaml.v3"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

var podLineRe = regexp.MustCompile(`^\s*pod\s+(.+)$`)

type podfileParser struct{}

func (podfileParser) IsMatch(path string) bool { return true }

// ExtractPackages reads a Podfile's top-level pod "name", "requirement"
// lines. It does not evaluate target blocks; every pod call anywhere in the
// file becomes a dependency of the single synthetic package this file
// stands for, matching the manifest-per-file reading used elsewhere.
func (podfileParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/cocoapods")
	const datasourceID = "cocoapods_podfile"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable Podfile")
		return []*packagedcode.PackageData{packagedcode.Default("cocoapods", datasourceID)}
	}

	pd := packagedcode.Default("cocoapods", datasourceID)
	pd.PrimaryLanguage = "Objective-C"

	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		line := sc.Text()
		m := podLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		dep := dependencyFromDependencyCall(m[1])
		if dep.Purl != "" {
			pd.Dependencies = append(pd.Dependencies, dep)
		}
	}

	return []*packagedcode.PackageData{pd}
}

type podfileLockYAML struct {
	Pods         []any          `yaml:"PODS"`
	Dependencies []string       `yaml:"DEPENDENCIES"`
	SpecChecksums map[string]string `yaml:"SPEC CHECKSUMS"`
}

type podfileLockParser struct{}

func (podfileLockParser) IsMatch(path string) bool { return true }

func (podfileLockParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/cocoapods")
	const datasourceID = "cocoapods_podfile_lock"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable Podfile.lock")
		return []*packagedcode.PackageData{packagedcode.Default("cocoapods", datasourceID)}
	}
	var doc podfileLockYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed Podfile.lock")
		return []*packagedcode.PackageData{packagedcode.Default("cocoapods", datasourceID)}
	}

	pd := packagedcode.Default("cocoapods", datasourceID)
	pd.PrimaryLanguage = "Objective-C"

	for _, entry := range doc.Pods {
		name, version := podEntryNameVersion(entry)
		if name == "" {
			continue
		}
		dep := packagedcode.Dependency{
			Purl:                 purl.Build("cocoapods", "", name, version, nil, ""),
			ExtractedRequirement: version,
			Scope:                packagedcode.ScopeDependencies,
			IsRuntime:            true,
			IsPinned:             version != "",
		}
		if sum, ok := doc.SpecChecksums[name]; ok {
			dep.ResolvedPackage = &packagedcode.PackageData{PackageType: "cocoapods", Name: name, Version: version, SHA1: sum}
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}

	return []*packagedcode.PackageData{pd}
}

// podEntryNameVersion parses a PODS-section entry, which is either a bare
// "Name (1.2.3)" string or a mapping whose single key is that same string
// with its own nested sub-dependency list.
func podEntryNameVersion(entry any) (name, version string) {
	var text string
	switch t := entry.(type) {
	case string:
		text = t
	case map[string]any:
		for k := range t {
			text = k
			break
		}
	default:
		return "", ""
	}
	before, paren, ok := strings.Cut(text, "(")
	name = strings.TrimSpace(before)
	if ok {
		version = strings.TrimSuffix(strings.TrimSpace(paren), ")")
	}
	return name, version
}
