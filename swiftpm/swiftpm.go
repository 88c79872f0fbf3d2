// Package swiftpm extracts PackageData from Swift Package Manager's
// dumped-manifest JSON (Package.swift.json, produced by `swift package
// dump-package`, since Package.swift itself is executable Swift source
// with no static parse) and Package.resolved.
package swiftpm

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
		Description:      "Swift Package Manager dumped manifest",
		PathPatterns:     []string{"**/Package.swift.json"},
		PackageType:      "swift",
		PrimaryLanguage:  "Swift",
		DocumentationURL: "https://github.com/apple/swift-package-manager",
		Parser:           manifestParser{},
	})
	parser.Register(parser.Registration{
		Description:      "Swift Package Manager resolved lockfile",
		PathPatterns:     []string{"**/Package.resolved"},
		PackageType:      "swift",
		PrimaryLanguage:  "Swift",
		DocumentationURL: "https://github.com/apple/swift-package-manager/blob/main/Documentation/Usage.md#resolved-versions-file",
		Parser:           resolvedParser{},
	})
}

type dumpedPackage struct {
	Name         string `json:"name"`
	Dependencies []struct {
		Identity    string `json:"identity"`
		URL         string `json:"url"`
		Requirement struct {
			Range []struct {
				LowerBound string `json:"lowerBound"`
			} `json:"range"`
			Exact []string `json:"exact"`
		} `json:"requirement"`
	} `json:"dependencies"`
}

type manifestParser struct{}

func (manifestParser) IsMatch(path string) bool { return true }

func (manifestParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/swiftpm")
	const datasourceID = "swift_package_dump"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable Package.swift.json")
		return []*packagedcode.PackageData{packagedcode.Default("swift", datasourceID)}
	}
	var doc dumpedPackage
	if err := json.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed Package.swift.json")
		return []*packagedcode.PackageData{packagedcode.Default("swift", datasourceID)}
	}

	pd := packagedcode.Default("swift", datasourceID)
	pd.PrimaryLanguage = "Swift"
	pd.Name = doc.Name
	if pd.Name != "" {
		pd.Purl = purl.Build("swift", "", pd.Name, "", nil, "")
	}

	for _, d := range doc.Dependencies {
		name := d.Identity
		requirement := ""
		if len(d.Requirement.Exact) > 0 {
			requirement = d.Requirement.Exact[0]
		} else if len(d.Requirement.Range) > 0 {
			requirement = d.Requirement.Range[0].LowerBound
		}
		dep := packagedcode.Dependency{
			Purl:                 purl.Build("swift", "", name, "", nil, ""),
			ExtractedRequirement: requirement,
			Scope:                packagedcode.ScopeDependencies,
			IsRuntime:            true,
			IsDirect:             true,
			IsPinned:             len(d.Requirement.Exact) > 0,
		}
		if d.URL != "" {
			dep.ExtraData = map[string]any{"url": d.URL}
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}

	return []*packagedcode.PackageData{pd}
}

type resolvedFile struct {
	Object struct {
		Pins []resolvedPin `json:"pins"`
	} `json:"object"`
	Pins    []resolvedPin `json:"pins"`
	Version int           `json:"version"`
}

type resolvedPin struct {
	Identity string `json:"identity"`
	Package  string `json:"package"`
	Location string `json:"location"`
	Repo     string `json:"repositoryURL"`
	State    struct {
		Version  string `json:"version"`
		Revision string `json:"revision"`
	} `json:"state"`
}

type resolvedParser struct{}

func (resolvedParser) IsMatch(path string) bool { return true }

// ExtractPackages handles both the v1 ("object.pins") and v2 (top-level
// "pins") Package.resolved shapes.
func (resolvedParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/swiftpm")
	const datasourceID = "swift_package_resolved"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable Package.resolved")
		return []*packagedcode.PackageData{packagedcode.Default("swift", datasourceID)}
	}
	var doc resolvedFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed Package.resolved")
		return []*packagedcode.PackageData{packagedcode.Default("swift", datasourceID)}
	}

	pd := packagedcode.Default("swift", datasourceID)
	pd.PrimaryLanguage = "Swift"

	pins := doc.Pins
	if len(pins) == 0 {
		pins = doc.Object.Pins
	}
	for _, p := range pins {
		name := p.Identity
		if name == "" {
			name = p.Package
		}
		version := p.State.Version
		if version == "" {
			version = p.State.Revision
		}
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("swift", "", name, version, nil, ""),
			ExtractedRequirement: version,
			Scope:                packagedcode.ScopeDependencies,
			IsRuntime:            true,
			IsPinned:             version != "",
		})
	}

	return []*packagedcode.PackageData{pd}
}
