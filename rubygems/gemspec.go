package rubygems

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
		Description:      "Ruby gem specification",
		PathPatterns:     []string{"**/*.gemspec"},
		PackageType:      "gem",
		PrimaryLanguage:  "Ruby",
		DocumentationURL: "https://guides.rubygems.org/specification-reference/",
		Parser:           gemspecParser{},
	})
}

var (
	gemspecAssignRe   = regexp.MustCompile(`(?m)^\s*\w+\.(name|version|summary|description|homepage|email)\s*=\s*(.+?)\s*$`)
	gemspecAuthorsRe  = regexp.MustCompile(`(?m)^\s*\w+\.authors\s*=\s*\[(.*?)\]`)
	gemspecLicensesRe = regexp.MustCompile(`(?m)^\s*\w+\.licenses\s*=\s*\[(.*?)\]`)
	gemspecDependsRe  = regexp.MustCompile(`(?m)^\s*\w+\.(add_dependency|add_development_dependency|add_runtime_dependency)\s*\(?\s*(.+?)\s*\)?\s*$`)
	gemspecVersionVar = regexp.MustCompile(`(\w+(?:::\w+)*)::VERSION`)
)

type gemspecParser struct{}

func (gemspecParser) IsMatch(path string) bool { return true }

func (gemspecParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/rubygems")
	const datasourceID = "gemspec"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable gemspec")
		return []*packagedcode.PackageData{packagedcode.Default("gem", datasourceID)}
	}
	text := string(raw)

	pd := packagedcode.Default("gem", datasourceID)
	pd.PrimaryLanguage = "Ruby"

	fields := map[string]string{}
	for _, m := range gemspecAssignRe.FindAllStringSubmatch(text, -1) {
		fields[m[1]] = unquote(m[2])
	}

	pd.Name = fields["name"]
	pd.Description = fields["summary"]
	if pd.Description == "" {
		pd.Description = fields["description"]
	}
	pd.HomepageURL = fields["homepage"]

	version := fields["version"]
	if version != "" && !isQuotedLiteral(version) {
		version = resolveVersionConstant(text, version)
	} else {
		version = unquote(version)
	}
	pd.Version = version

	if pd.Name != "" {
		pd.Purl = purl.Build("gem", "", pd.Name, pd.Version, nil, "")
	}

	if m := gemspecAuthorsRe.FindStringSubmatch(text); m != nil {
		for _, a := range strings.Split(m[1], ",") {
			name := unquote(strings.TrimSpace(a))
			if name != "" {
				pd.Parties = append(pd.Parties, packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleAuthor, Name: name})
			}
		}
	}
	if email := fields["email"]; email != "" && len(pd.Parties) > 0 {
		pd.Parties[0].Email = email
	}

	if m := gemspecLicensesRe.FindStringSubmatch(text); m != nil {
		var licenses []string
		for _, l := range strings.Split(m[1], ",") {
			l = unquote(strings.TrimSpace(l))
			if l != "" {
				licenses = append(licenses, l)
			}
		}
		pd.DeclaredLicenseExpression = strings.Join(licenses, " OR ")
	}

	for _, m := range gemspecDependsRe.FindAllStringSubmatch(text, -1) {
		pd.Dependencies = append(pd.Dependencies, dependencyFromAddCall(m[1], m[2]))
	}

	return []*packagedcode.PackageData{pd}
}

func dependencyFromAddCall(call, args string) packagedcode.Dependency {
	parts := splitArgs(args)
	dep := packagedcode.Dependency{IsDirect: true}
	if call == "add_development_dependency" {
		dep.Scope = packagedcode.ScopeDevelopment
		dep.IsRuntime = false
		dep.IsOptional = true
	} else {
		dep.Scope = packagedcode.ScopeDependencies
		dep.IsRuntime = true
	}
	if len(parts) == 0 {
		return dep
	}
	name := unquote(parts[0])
	dep.Purl = purl.Build("gem", "", name, "", nil, "")
	if len(parts) > 1 {
		var reqs []string
		for _, p := range parts[1:] {
			reqs = append(reqs, unquote(p))
		}
		dep.ExtractedRequirement = strings.Join(reqs, ",")
	}
	return dep
}

func splitArgs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isQuotedLiteral(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "'")
}

// resolveVersionConstant handles "spec.version = CSV::VERSION"-style
// indirection by searching the same file for a "VERSION = \"...\"" (plain
// or frozen-string-literal) assignment.
func resolveVersionConstant(text, expr string) string {
	m := gemspecVersionVar.FindStringSubmatch(expr)
	if m == nil {
		return ""
	}
	re := regexp.MustCompile(`VERSION\s*=\s*(.+?)(?:\.freeze)?\s*$`)
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "VERSION") && strings.Contains(line, "=") {
			if vm := re.FindStringSubmatch(strings.TrimSpace(line)); vm != nil {
				return unquote(vm[1])
			}
		}
	}
	return ""
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".freeze")
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
