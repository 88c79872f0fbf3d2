// Package conan extracts PackageData from Conan C/C++ package recipes:
// conanfile.txt, conanfile.py, conan.lock, and conandata.yml.
package conan

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
		Description:      "Conan package recipe (ini form)",
		PathPatterns:     []string{"**/conanfile.txt"},
		PackageType:      "conan",
		PrimaryLanguage:  "C++",
		DocumentationURL: "https://docs.conan.io/2/reference/conanfile_txt.html",
		Parser:           conanfileTxtParser{},
	})
	parser.Register(parser.Registration{
		Description:      "Conan package recipe (Python form)",
		PathPatterns:     []string{"**/conanfile.py"},
		PackageType:      "conan",
		PrimaryLanguage:  "C++",
		DocumentationURL: "https://docs.conan.io/2/reference/conanfile.html",
		Parser:           conanfilePyParser{},
	})
	parser.Register(parser.Registration{
		Description:      "Conan resolved lockfile",
		PathPatterns:     []string{"**/conan.lock"},
		PackageType:      "conan",
		PrimaryLanguage:  "C++",
		DocumentationURL: "https://docs.conan.io/2/reference/commands/lock.html",
		Parser:           conanLockParser{},
	})
}

var conanRefRe = regexp.MustCompile(`^([^/@]+)/([^@]+)(?:@(.*))?$`)

type conanfileTxtParser struct{}

func (conanfileTxtParser) IsMatch(path string) bool { return true }

// ExtractPackages reads conanfile.txt's [requires]/[build_requires]/
// [tool_requires] sections, each line a "name/version[@user/channel]"
// reference.
func (conanfileTxtParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/conan")
	const datasourceID = "conan_conanfile_txt"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable conanfile.txt")
		return []*packagedcode.PackageData{packagedcode.Default("conan", datasourceID)}
	}

	pd := packagedcode.Default("conan", datasourceID)
	pd.PrimaryLanguage = "C++"

	section := ""
	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			continue
		}
		switch section {
		case "requires", "build_requires", "tool_requires":
			dep := dependencyFromConanRef(line)
			if dep.Purl == "" {
				continue
			}
			if section != "requires" {
				dep.Scope = packagedcode.ScopeDevelopment
				dep.IsOptional = true
				dep.IsRuntime = false
			}
			pd.Dependencies = append(pd.Dependencies, dep)
		}
	}

	return []*packagedcode.PackageData{pd}
}

func dependencyFromConanRef(ref string) packagedcode.Dependency {
	m := conanRefRe.FindStringSubmatch(ref)
	if m == nil {
		return packagedcode.Dependency{}
	}
	name, version := m[1], m[2]
	qualifiers := map[string]string{}
	if m[3] != "" {
		if user, channel, ok := strings.Cut(m[3], "/"); ok {
			qualifiers["user"] = user
			qualifiers["channel"] = channel
		}
	}
	if len(qualifiers) == 0 {
		qualifiers = nil
	}
	return packagedcode.Dependency{
		Purl:                 purl.Build("conan", "", name, version, qualifiers, ""),
		ExtractedRequirement: version,
		Scope:                packagedcode.ScopeDependencies,
		IsRuntime:            true,
		IsDirect:             true,
		IsPinned:             version != "",
	}
}

var (
	conanAssignRe  = regexp.MustCompile(`(?m)^\s*(name|version|description|homepage|license|url)\s*=\s*(.+?)\s*$`)
	conanRequiresRe = regexp.MustCompile(`(?m)^\s*requires\s*=\s*\(?\s*(.+?)\s*\)?\s*$`)
)

type conanfilePyParser struct{}

func (conanfilePyParser) IsMatch(path string) bool { return true }

// ExtractPackages regex-extracts the class-level "name = \"...\"" style
// attributes and "requires = (\"a/1.0\", \"b/2.0\")" tuples out of a Python
// conanfile.py without evaluating it.
func (conanfilePyParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/conan")
	const datasourceID = "conan_conanfile_py"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable conanfile.py")
		return []*packagedcode.PackageData{packagedcode.Default("conan", datasourceID)}
	}
	text := string(raw)

	pd := packagedcode.Default("conan", datasourceID)
	pd.PrimaryLanguage = "C++"

	for _, m := range conanAssignRe.FindAllStringSubmatch(text, -1) {
		val := unquote(m[2])
		switch m[1] {
		case "name":
			pd.Name = val
		case "version":
			pd.Version = val
		case "description":
			pd.Description = val
		case "homepage":
			pd.HomepageURL = val
		case "license":
			pd.DeclaredLicenseExpression = val
		case "url":
			if pd.HomepageURL == "" {
				pd.HomepageURL = val
			}
		}
	}
	if pd.Name != "" {
		pd.Purl = purl.Build("conan", "", pd.Name, pd.Version, nil, "")
	}

	if m := conanRequiresRe.FindStringSubmatch(text); m != nil {
		for _, ref := range strings.Split(m[1], ",") {
			ref = unquote(strings.TrimSpace(ref))
			dep := dependencyFromConanRef(ref)
			if dep.Purl != "" {
				pd.Dependencies = append(pd.Dependencies, dep)
			}
		}
	}

	return []*packagedcode.PackageData{pd}
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

type conanLockJSON struct {
	GraphLock struct {
		Nodes map[string]struct {
			Ref string `json:"ref"`
		} `json:"nodes"`
	} `json:"graph_lock"`
}

type conanLockParser struct{}

func (conanLockParser) IsMatch(path string) bool { return true }

func (conanLockParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/conan")
	const datasourceID = "conan_lock"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable conan.lock")
		return []*packagedcode.PackageData{packagedcode.Default("conan", datasourceID)}
	}
	var doc conanLockJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed conan.lock")
		return []*packagedcode.PackageData{packagedcode.Default("conan", datasourceID)}
	}

	pd := packagedcode.Default("conan", datasourceID)
	pd.PrimaryLanguage = "C++"

	for _, node := range doc.GraphLock.Nodes {
		if node.Ref == "" {
			continue
		}
		dep := dependencyFromConanRef(node.Ref)
		if dep.Purl != "" {
			dep.IsPinned = true
			pd.Dependencies = append(pd.Dependencies, dep)
		}
	}

	return []*packagedcode.PackageData{pd}
}
