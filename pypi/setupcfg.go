package pypi

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "setuptools declarative configuration",
		PathPatterns:     []string{"**/setup.cfg"},
		PackageType:      "pypi",
		PrimaryLanguage:  "Python",
		DocumentationURL: "https://setuptools.pypa.io/en/latest/userguide/declarative_config.html",
		Parser:           setupCfgParser{},
	})
}

type setupCfgParser struct{}

func (setupCfgParser) IsMatch(path string) bool { return true }

// ExtractPackages reads the [metadata]/[options] sections of an ini-style
// setup.cfg. Multi-line list values (one item per indented continuation
// line) are supported for install_requires; everything else is a scalar
// "key = value" read from its section.
func (setupCfgParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pypi")
	const datasourceID = "pypi_setup_cfg"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable setup.cfg")
		return []*packagedcode.PackageData{packagedcode.Default("pypi", datasourceID)}
	}

	pd := packagedcode.Default("pypi", datasourceID)
	pd.PrimaryLanguage = "Python"

	section := ""
	key := ""
	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")
			key = ""
			continue
		}
		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && key == "install_requires" && section == "options" {
			addPEP508Dep(pd, trimmed, packagedcode.ScopeDependencies, true, false)
			continue
		}
		name, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		switch {
		case section == "metadata" && key == "name":
			pd.Name = normalizePyPIName(value)
		case section == "metadata" && key == "version":
			pd.Version = value
		case section == "metadata" && key == "description":
			pd.Description = value
		case section == "metadata" && key == "url":
			pd.HomepageURL = value
		case section == "metadata" && key == "license":
			pd.DeclaredLicenseExpression = value
		case section == "metadata" && key == "author":
			pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleAuthor, Name: value})
		case section == "metadata" && key == "keywords":
			for _, kw := range strings.Split(value, ",") {
				kw = strings.TrimSpace(kw)
				if kw != "" {
					pd.Keywords = append(pd.Keywords, kw)
				}
			}
		case section == "options" && key == "install_requires" && value != "":
			addPEP508Dep(pd, value, packagedcode.ScopeDependencies, true, false)
		}
	}

	if pd.Name != "" {
		pd.Purl = purl.Build("pypi", "", pd.Name, pd.Version, nil, "")
	}

	return []*packagedcode.PackageData{pd}
}
