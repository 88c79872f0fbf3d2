// Package bazel extracts a nominal PackageData from Bazel/Buck BUILD files:
// the name of the first cc_binary/cc_library/java_binary/java_library/
// py_binary/py_library rule, falling back to the containing directory's
// name when no such rule is found.
package bazel

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "Bazel build file",
		PathPatterns:     []string{"**/BUILD", "**/BUILD.bazel"},
		PackageType:      "bazel",
		PrimaryLanguage:  "",
		DocumentationURL: "https://bazel.build/concepts/build-files",
		Parser:           buildParser{},
	})
	parser.Register(parser.Registration{
		Description:      "Buck build file",
		PathPatterns:     []string{"**/BUCK"},
		PackageType:      "buck",
		PrimaryLanguage:  "",
		DocumentationURL: "https://buck.build/concept/build_file.html",
		Parser:           buckParser{},
	})
}

var ruleRe = regexp.MustCompile(`(?s)\b(cc|java|py)_(binary|library)\s*\(\s*name\s*=\s*"([^"]+)"`)

func extractRuleName(text string) string {
	m := ruleRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[3]
}

type buildParser struct{}

func (buildParser) IsMatch(path string) bool { return true }

func (buildParser) ExtractPackages(path string) []*packagedcode.PackageData {
	return extractBuildPackages(path, "bazel", "bazel_build")
}

type buckParser struct{}

func (buckParser) IsMatch(path string) bool { return true }

func (buckParser) ExtractPackages(path string) []*packagedcode.PackageData {
	return extractBuildPackages(path, "buck", "buck_build")
}

func extractBuildPackages(path, packageType, datasourceID string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/bazel")

	pd := packagedcode.Default(packageType, datasourceID)

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable build file")
		return []*packagedcode.PackageData{pd}
	}

	name := extractRuleName(string(raw))
	if name == "" {
		name = filepath.Base(filepath.Dir(path))
	}
	pd.Name = name

	return []*packagedcode.PackageData{pd}
}
