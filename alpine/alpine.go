// Package alpine extracts PackageData from Alpine's APK installed-packages
// database (/lib/apk/db/installed), whose single-letter "P:name" record
// shape is still an rfc822 paragraph block, reusing the same reader the
// Debian parser does.
package alpine

import (
	"context"
	"os"
	"strings"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
	"github.com/quay/packagedcode/rfc822"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "Alpine APK installed-package database",
		PathPatterns:     []string{"**/lib/apk/db/installed"},
		PackageType:      "alpine",
		PrimaryLanguage:  "",
		DocumentationURL: "https://wiki.alpinelinux.org/wiki/Alpine_Package_Keeper",
		Parser:           installedDBParser{},
	})
}

type installedDBParser struct{}

func (installedDBParser) IsMatch(path string) bool { return true }

// ExtractPackages parses the installed-db's single-letter-keyed paragraphs
// (P:name, V:version, A:arch, L:license, D:depend, ...) — one paragraph per
// installed package, separated by a blank line. Each paragraph becomes one
// PackageData; the db typically describes many packages, all emitted in a
// single pass so the assembler/registry sees them as one file's records.
func (installedDBParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/alpine")
	const datasourceID = "alpine_installed_db"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable apk installed db")
		return []*packagedcode.PackageData{packagedcode.Default("alpine", datasourceID)}
	}

	paragraphs := rfc822.ParseParagraphs(string(raw))
	out := make([]*packagedcode.PackageData, 0, len(paragraphs))
	for _, para := range paragraphs {
		pd := packageDataFromParagraph(para)
		if pd != nil {
			out = append(out, pd)
		}
	}
	if len(out) == 0 {
		out = append(out, packagedcode.Default("alpine", datasourceID))
	}
	return out
}

func packageDataFromParagraph(para rfc822.Headers) *packagedcode.PackageData {
	const datasourceID = "alpine_installed_db"
	name, ok := rfc822.First(para, "p")
	if !ok || name == "" {
		return nil
	}
	pd := packagedcode.Default("alpine", datasourceID)
	pd.Name = name
	pd.Version, _ = rfc822.First(para, "v")
	pd.DeclaredLicenseExpression, _ = rfc822.First(para, "l")
	pd.HomepageURL, _ = rfc822.First(para, "u")
	pd.Description, _ = rfc822.First(para, "t")

	arch, _ := rfc822.First(para, "a")
	var qualifiers map[string]string
	if arch != "" {
		qualifiers = map[string]string{"arch": arch}
	}
	pd.Purl = purl.Build("alpine", "", pd.Name, pd.Version, qualifiers, "")

	if maintainer, ok := rfc822.First(para, "m"); ok && maintainer != "" {
		pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleMaintainer, Name: maintainer})
	}

	for _, depend := range rfc822.All(para, "d") {
		for _, name := range strings.Fields(depend) {
			name = strings.TrimPrefix(name, "!")
			if name == "" || strings.HasPrefix(name, "so:") || strings.HasPrefix(name, "pc:") {
				continue
			}
			pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
				Purl:      purl.Build("alpine", "", name, "", nil, ""),
				Scope:     packagedcode.ScopeDependencies,
				IsRuntime: true,
				IsDirect:  true,
			})
		}
	}

	return pd
}
