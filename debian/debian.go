// Package debian extracts PackageData from Debian control files and dpkg
// status databases, grounded on spec.md §4.5.1 and built on the rfc822
// paragraph reader.
package debian

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
	"github.com/quay/packagedcode/rfc822"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "Debian source control file",
		PathPatterns:     []string{"**/debian/control"},
		PackageType:      "deb",
		DocumentationURL: "https://www.debian.org/doc/debian-policy/ch-controlfields.html",
		Parser:           controlParser{},
	})
	parser.Register(parser.Registration{
		Description:      "dpkg installed-package status database",
		PathPatterns:     []string{"**/var/lib/dpkg/status"},
		PackageType:      "deb",
		DocumentationURL: "https://www.debian.org/doc/debian-policy/ch-controlfields.html",
		Parser:           statusParser{},
	})
	parser.Register(parser.Registration{
		Description:      "distroless dpkg per-package status fragment",
		PathPatterns:     []string{"**/var/lib/dpkg/status.d/*"},
		PackageType:      "deb",
		DocumentationURL: "https://www.debian.org/doc/debian-policy/ch-controlfields.html",
		Parser:           statusDParser{},
	})
}

var dependencyFields = []string{
	"depends", "pre-depends", "recommends", "suggests", "breaks",
	"conflicts", "replaces", "provides",
	"build-depends", "build-depends-indep", "build-conflicts",
}

// dependencyConstraintRe matches "name (op version)" with an optional
// architecture qualifier "[...]" and optional "${...}" substitution
// variables skipped entirely.
var dependencyConstraintRe = regexp.MustCompile(`^([A-Za-z0-9.+_-]+)(?:\s*\(([<>=]+)\s*([^)]+)\))?`)

type controlParser struct{}

func (controlParser) IsMatch(path string) bool { return true }

func (controlParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/debian")
	const datasourceID = "debian_control"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable debian/control")
		return []*packagedcode.PackageData{packagedcode.Default("deb", datasourceID)}
	}

	paragraphs := rfc822.ParseParagraphs(string(raw))
	if len(paragraphs) == 0 {
		return []*packagedcode.PackageData{packagedcode.Default("deb", datasourceID)}
	}

	var source rfc822.Headers
	start := 0
	if _, ok := rfc822.First(paragraphs[0], "Source"); ok {
		source = paragraphs[0]
		start = 1
	}

	var out []*packagedcode.PackageData
	for _, para := range paragraphs[start:] {
		pd := packageDataFromBinaryParagraph(para, source, datasourceID)
		out = append(out, pd)
	}
	if len(out) == 0 {
		return []*packagedcode.PackageData{packagedcode.Default("deb", datasourceID)}
	}
	return out
}

func packageDataFromBinaryParagraph(para, source rfc822.Headers, datasourceID string) *packagedcode.PackageData {
	pd := packagedcode.Default("deb", datasourceID)

	pd.Name, _ = rfc822.First(para, "Package")
	version, _ := rfc822.First(para, "Version")
	pd.Version = version
	pd.Description, _ = rfc822.First(para, "Description")

	maintainer, maintainerOK := rfc822.First(para, "Maintainer")
	if !maintainerOK && source != nil {
		maintainer, _ = rfc822.First(source, "Maintainer")
	}
	if homepage, ok := rfc822.First(para, "Homepage"); ok {
		pd.HomepageURL = homepage
	} else if source != nil {
		pd.HomepageURL, _ = rfc822.First(source, "Homepage")
	}
	if vcs, ok := rfc822.First(para, "Vcs-Browser"); ok {
		pd.VCSUrl = vcs
	} else if source != nil {
		pd.VCSUrl, _ = rfc822.First(source, "Vcs-Browser")
	}

	if maintainer != "" {
		pd.Parties = append(pd.Parties, partyFromMaintainer(maintainer, packagedcode.RoleMaintainer))
	}
	uploaderSrc := para
	if _, ok := rfc822.First(para, "Uploaders"); !ok && source != nil {
		uploaderSrc = source
	}
	if uploaders, ok := rfc822.First(uploaderSrc, "Uploaders"); ok {
		for _, u := range splitUnescapedComma(uploaders) {
			u = strings.TrimSpace(u)
			if u != "" {
				pd.Parties = append(pd.Parties, partyFromMaintainer(u, packagedcode.RoleUploader))
			}
		}
	}

	arch, _ := rfc822.First(para, "Architecture")
	namespace := purl.DebianNamespace(version, maintainer)
	if pd.Name != "" {
		pd.Purl = purl.BuildDeb(namespace, pd.Name, version, arch)
		pd.Namespace = namespace
		if arch != "" {
			pd.Qualifiers = map[string]string{"arch": arch}
		}
	}

	extra := map[string]any{}
	if ma, ok := rfc822.First(para, "Multi-Arch"); ok {
		extra["multi_arch"] = ma
	}
	if size, ok := rfc822.First(para, "Installed-Size"); ok {
		extra["installed_size"] = size
	}
	if len(extra) > 0 {
		pd.ExtraData = extra
	}

	for _, field := range dependencyFields {
		if val, ok := rfc822.First(para, field); ok {
			pd.Dependencies = append(pd.Dependencies, parseDependencyField(field, val)...)
		}
	}

	return pd
}

// parseDependencyField splits a comma-separated conjunction of Debian
// dependency groups, each of which may itself be a "|"-separated
// disjunction of alternatives. Every alternative of a group with more than
// one alternative is marked is_optional=true.
func parseDependencyField(field, val string) []packagedcode.Dependency {
	var out []packagedcode.Dependency
	for _, group := range splitUnescapedComma(val) {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		alternatives := strings.Split(group, "|")
		for _, alt := range alternatives {
			alt = strings.TrimSpace(alt)
			if alt == "" {
				continue
			}
			name, constraint := parseDependencyAtom(alt)
			if name == "" {
				continue
			}
			dep := packagedcode.Dependency{
				ExtractedRequirement: constraint,
				Scope:                field,
				IsOptional:           len(alternatives) > 1,
				IsRuntime:            isRuntimeField(field),
				IsPinned:             constraint != "" && strings.Contains(constraint, "="),
			}
			out = append(out, dep)
		}
	}
	return out
}

func isRuntimeField(field string) bool {
	switch field {
	case "depends", "pre-depends", "recommends":
		return true
	}
	return false
}

// parseDependencyAtom parses one "name (op version) [arch]" atom, skipping
// "${...}" substitution variables and "[...]" architecture qualifiers.
func parseDependencyAtom(atom string) (name, constraint string) {
	atom = stripArchQualifier(atom)
	atom = strings.TrimSpace(atom)
	if strings.Contains(atom, "${") {
		return "", ""
	}
	m := dependencyConstraintRe.FindStringSubmatch(atom)
	if m == nil {
		return "", ""
	}
	name = m[1]
	if m[2] != "" && m[3] != "" {
		constraint = m[2] + " " + strings.TrimSpace(m[3])
	}
	return name, constraint
}

func stripArchQualifier(atom string) string {
	if idx := strings.Index(atom, "["); idx >= 0 {
		if end := strings.Index(atom[idx:], "]"); end >= 0 {
			return atom[:idx] + atom[idx+end+1:]
		}
	}
	return atom
}

// splitUnescapedComma splits on "," without attempting RFC2822 quoted-string
// awareness; Debian control fields never quote commas within a name/email.
func splitUnescapedComma(s string) []string {
	return strings.Split(s, ",")
}

var nameEmailRe = regexp.MustCompile(`^(.*?)\s*<([^>]+)>\s*$`)

func partyFromMaintainer(s, role string) packagedcode.Party {
	if m := nameEmailRe.FindStringSubmatch(s); m != nil {
		return packagedcode.Party{Type: packagedcode.PartyPerson, Role: role, Name: strings.TrimSpace(m[1]), Email: m[2]}
	}
	return packagedcode.Party{Type: packagedcode.PartyPerson, Role: role, Name: s}
}

type statusParser struct{}

func (statusParser) IsMatch(path string) bool { return true }

func (statusParser) ExtractPackages(path string) []*packagedcode.PackageData {
	return extractStatus(path, "dpkg_status", false)
}

type statusDParser struct{}

func (statusDParser) IsMatch(path string) bool { return true }

func (statusDParser) ExtractPackages(path string) []*packagedcode.PackageData {
	return extractStatus(path, "dpkg_status_d", true)
}

func extractStatus(path, datasourceID string, firstOnly bool) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/debian")

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable dpkg status")
		return []*packagedcode.PackageData{packagedcode.Default("deb", datasourceID)}
	}

	paragraphs := rfc822.ParseParagraphs(string(raw))
	var out []*packagedcode.PackageData
	for _, para := range paragraphs {
		if firstOnly && len(out) > 0 {
			break
		}
		if !firstOnly {
			if status, ok := rfc822.First(para, "Status"); !ok || status != "install ok installed" {
				continue
			}
		}
		out = append(out, packageDataFromBinaryParagraph(para, nil, datasourceID))
	}
	if len(out) == 0 {
		return []*packagedcode.PackageData{packagedcode.Default("deb", datasourceID)}
	}
	return out
}
