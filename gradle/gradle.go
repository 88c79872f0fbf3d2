// Package gradle extracts PackageData from Gradle build scripts, both the
// Groovy (build.gradle) and Kotlin (build.gradle.kts) DSLs. Both forms are
// regex-scanned for dependency-declaration calls rather than evaluated,
// the same "don't execute the build language, pattern-match its calls"
// approach the setup.py/gemspec/conanfile.py parsers take.
package gradle

import (
	"context"
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
		Description:      "Gradle build script (Groovy DSL)",
		PathPatterns:     []string{"**/build.gradle"},
		PackageType:      "maven",
		PrimaryLanguage:  "Java",
		DocumentationURL: "https://docs.gradle.org/current/userguide/declaring_dependencies.html",
		Parser:           scriptParser{},
	})
	parser.Register(parser.Registration{
		Description:      "Gradle build script (Kotlin DSL)",
		PathPatterns:     []string{"**/build.gradle.kts"},
		PackageType:      "maven",
		PrimaryLanguage:  "Java",
		DocumentationURL: "https://docs.gradle.org/current/userguide/declaring_dependencies.html",
		Parser:           scriptParser{},
	})
}

// gradleCoordRe matches `<configuration>("group:artifact:version")` and
// `<configuration> 'group:artifact:version'` (Kotlin and Groovy DSL alike);
// gradleMapRe matches `<configuration>(group: "g", name: "n", version: "v")`.
// All reduce to a coordinate string or a group/name/version map literal.
var (
	gradleCoordRe = regexp.MustCompile(`\b(implementation|api|compile|runtimeOnly|testImplementation|testCompile|compileOnly|annotationProcessor|kapt)\s*[\(\s]\s*["']([^"':]+):([^"':]+):([^"']+)["']`)
	gradleMapRe   = regexp.MustCompile(`\b(implementation|api|compile|runtimeOnly|testImplementation|testCompile|compileOnly|annotationProcessor|kapt)\s*\(?\s*group\s*:\s*["']([^"']+)["']\s*,\s*name\s*:\s*["']([^"']+)["']\s*,\s*version\s*:\s*["']([^"']+)["']`)
)

var devConfigs = map[string]bool{
	"testImplementation": true,
	"testCompile":        true,
}

type scriptParser struct{}

func (scriptParser) IsMatch(path string) bool { return true }

func (scriptParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/gradle")
	const datasourceID = "gradle_build_script"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable gradle build script")
		return []*packagedcode.PackageData{packagedcode.Default("maven", datasourceID)}
	}
	text := string(raw)

	pd := packagedcode.Default("maven", datasourceID)
	pd.PrimaryLanguage = "Java"

	for _, m := range gradleCoordRe.FindAllStringSubmatch(text, -1) {
		addGradleDep(pd, m[1], m[2], m[3], m[4])
	}
	for _, m := range gradleMapRe.FindAllStringSubmatch(text, -1) {
		addGradleDep(pd, m[1], m[2], m[3], m[4])
	}

	return []*packagedcode.PackageData{pd}
}

func addGradleDep(pd *packagedcode.PackageData, configuration, group, artifact, version string) {
	isDev := devConfigs[configuration]
	dep := packagedcode.Dependency{
		Purl:                 purl.Build("maven", group, artifact, version, nil, ""),
		ExtractedRequirement: version,
		Scope:                strings.ToLower(configuration),
		IsRuntime:            !isDev,
		IsOptional:           isDev || configuration == "compileOnly",
		IsDirect:             true,
		IsPinned:             version != "" && !strings.ContainsAny(version, "+[](),"),
	}
	pd.Dependencies = append(pd.Dependencies, dep)
}
