package pypi

import (
	"context"
	"os"
	"strings"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/pep508"
	"github.com/quay/packagedcode/purl"
	"github.com/quay/packagedcode/rfc822"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "Python wheel/sdist core metadata",
		PathPatterns:     []string{"**/PKG-INFO", "**/METADATA", "**/*.dist-info/METADATA", "**/*.egg-info/PKG-INFO"},
		PackageType:      "pypi",
		PrimaryLanguage:  "Python",
		DocumentationURL: "https://packaging.python.org/en/latest/specifications/core-metadata/",
		Parser:           metadataParser{},
	})
}

type metadataParser struct{}

func (metadataParser) IsMatch(path string) bool { return true }

func (metadataParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pypi")
	const datasourceID = "pypi_sdist_pkginfo"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable core metadata file")
		return []*packagedcode.PackageData{packagedcode.Default("pypi", datasourceID)}
	}

	headers, body := rfc822.ParseHeadersAndBody(string(raw))

	pd := packagedcode.Default("pypi", datasourceID)
	pd.PrimaryLanguage = "Python"
	name, _ := rfc822.First(headers, "Name")
	pd.Name = normalizePyPIName(name)
	pd.Version, _ = rfc822.First(headers, "Version")
	pd.Description, _ = rfc822.First(headers, "Summary")
	if pd.Description == "" {
		pd.Description = strings.TrimSpace(body)
	}
	pd.HomepageURL, _ = rfc822.First(headers, "Home-page")
	if pd.HomepageURL == "" {
		pd.HomepageURL, _ = rfc822.First(headers, "Project-URL")
	}
	pd.DeclaredLicenseExpression, _ = rfc822.First(headers, "License")

	if author, ok := rfc822.First(headers, "Author"); ok && author != "" {
		email, _ := rfc822.First(headers, "Author-email")
		pd.Parties = append(pd.Parties, packagedcode.Party{
			Type:  packagedcode.PartyPerson,
			Role:  packagedcode.RoleAuthor,
			Name:  author,
			Email: email,
		})
	}
	for _, maintainer := range rfc822.All(headers, "Maintainer") {
		pd.Parties = append(pd.Parties, packagedcode.Party{
			Type: packagedcode.PartyPerson,
			Role: packagedcode.RoleMaintainer,
			Name: maintainer,
		})
	}
	keywordsRaw, _ := rfc822.First(headers, "Keywords")
	for _, keyword := range strings.Split(keywordsRaw, ",") {
		keyword = strings.TrimSpace(keyword)
		if keyword != "" {
			pd.Keywords = append(pd.Keywords, keyword)
		}
	}

	if pd.Name != "" {
		pd.Purl = purl.Build("pypi", "", pd.Name, pd.Version, nil, "")
	}

	for _, req := range rfc822.All(headers, "Requires-Dist") {
		addMetadataRequiresDist(pd, req)
	}

	return []*packagedcode.PackageData{pd}
}

// addMetadataRequiresDist parses a Requires-Dist header value, which is a
// PEP 508 requirement optionally followed by an environment marker already
// embedded by pep508.Parse; the "extra == ..." marker form designates an
// optional dependency group that this adapter folds into ScopeOptional.
func addMetadataRequiresDist(pd *packagedcode.PackageData, line string) {
	req, ok := pep508.Parse(line)
	if !ok {
		return
	}
	dep := packagedcode.Dependency{
		Purl:                 purl.Build("pypi", "", normalizePyPIName(req.Name), "", nil, ""),
		ExtractedRequirement: req.Specifier,
		IsRuntime:            true,
		IsDirect:             true,
	}
	if strings.Contains(req.Marker, "extra ==") {
		dep.Scope = packagedcode.ScopeOptional
		dep.IsOptional = true
	} else {
		dep.Scope = packagedcode.ScopeDependencies
	}
	pd.Dependencies = append(pd.Dependencies, dep)
}
