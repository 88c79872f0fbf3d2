package pypi

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
		Description:      "distutils/setuptools setup.py call",
		PathPatterns:     []string{"**/setup.py"},
		PackageType:      "pypi",
		PrimaryLanguage:  "Python",
		DocumentationURL: "https://setuptools.pypa.io/en/latest/references/keywords.html",
		Parser:           setupPyParser{},
	})
}

// setupKwRe matches a single `keyword="value"` or `keyword='value'` argument
// to setup(...). Like the gemspec and conanfile.py parsers, this scans the
// source text for the shape of the call rather than executing it.
var (
	setupKwRe      = regexp.MustCompile(`\b(name|version|description|url|license|author)\s*=\s*["']([^"']*)["']`)
	setupListKwRe  = regexp.MustCompile(`(?s)\b(install_requires|keywords)\s*=\s*\[([^\]]*)\]`)
	setupStringsRe = regexp.MustCompile(`["']([^"']+)["']`)
)

type setupPyParser struct{}

func (setupPyParser) IsMatch(path string) bool { return true }

// ExtractPackages regex-scans setup.py for the keyword arguments passed to
// setup(...). It cannot follow computed values (a name built from a
// variable, a version read from a file), only literal strings -- the same
// limitation the spec's conanfile.py and gemspec parsers accept.
func (setupPyParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pypi")
	const datasourceID = "pypi_setup_py"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable setup.py")
		return []*packagedcode.PackageData{packagedcode.Default("pypi", datasourceID)}
	}
	text := string(raw)

	pd := packagedcode.Default("pypi", datasourceID)
	pd.PrimaryLanguage = "Python"

	for _, m := range setupKwRe.FindAllStringSubmatch(text, -1) {
		key, value := m[1], m[2]
		switch key {
		case "name":
			pd.Name = normalizePyPIName(value)
		case "version":
			pd.Version = value
		case "description":
			pd.Description = value
		case "url":
			pd.HomepageURL = value
		case "license":
			pd.DeclaredLicenseExpression = value
		case "author":
			pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleAuthor, Name: value})
		}
	}

	for _, m := range setupListKwRe.FindAllStringSubmatch(text, -1) {
		key, body := m[1], m[2]
		for _, s := range setupStringsRe.FindAllStringSubmatch(body, -1) {
			item := strings.TrimSpace(s[1])
			if item == "" {
				continue
			}
			switch key {
			case "install_requires":
				addPEP508Dep(pd, item, packagedcode.ScopeDependencies, true, false)
			case "keywords":
				pd.Keywords = append(pd.Keywords, item)
			}
		}
	}

	if pd.Name != "" {
		pd.Purl = purl.Build("pypi", "", pd.Name, pd.Version, nil, "")
	}

	return []*packagedcode.PackageData{pd}
}
