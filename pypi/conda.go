package pypi

import (
	"bufio"
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/quay/zlog"
	"gopkg.in/yaml.v3"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "Conda recipe",
		PathPatterns:     []string{"**/meta.yaml"},
		PackageType:      "conda",
		PrimaryLanguage:  "Python",
		DocumentationURL: "https://docs.conda.io/projects/conda-build/en/stable/resources/define-metadata.html",
		Parser:           condaParser{},
	})
}

var (
	condaSetRe = regexp.MustCompile(`\{%\s*set\s+(\w+)\s*=\s*"([^"]*)"\s*%\}`)
	condaVarRe = regexp.MustCompile(`\{\{\s*([\w.]+?)(\s*\|\s*\w+)?\s*\}\}`)
)

type condaMetaYAML struct {
	Package struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"package"`
	About struct {
		Summary  string   `yaml:"summary"`
		Home     string   `yaml:"home"`
		License  string   `yaml:"license"`
	} `yaml:"about"`
	Requirements struct {
		Run   []string `yaml:"run"`
		Build []string `yaml:"build"`
		Host  []string `yaml:"host"`
	} `yaml:"requirements"`
}

type condaParser struct{}

func (condaParser) IsMatch(path string) bool { return true }

// ExtractPackages substitutes the small Jinja2 subset conda recipes rely on
// ({% set name = "value" %} definitions and {{ name }}/{{ name|lower }}
// references) before handing the result to the YAML decoder. A line whose
// {{ ... }} reference can't be resolved is dropped rather than passed
// through with the literal braces, which would not parse as YAML.
func (condaParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pypi")
	const datasourceID = "conda_meta_yaml"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable meta.yaml")
		return []*packagedcode.PackageData{packagedcode.Default("conda", datasourceID)}
	}

	rendered := renderCondaJinja(string(raw))

	var doc condaMetaYAML
	if err := yaml.Unmarshal([]byte(rendered), &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed meta.yaml after template substitution")
		return []*packagedcode.PackageData{packagedcode.Default("conda", datasourceID)}
	}

	pd := packagedcode.Default("conda", datasourceID)
	pd.PrimaryLanguage = "Python"
	pd.Name = doc.Package.Name
	pd.Version = doc.Package.Version
	pd.Description = doc.About.Summary
	pd.HomepageURL = doc.About.Home
	pd.DeclaredLicenseExpression = doc.About.License
	if pd.Name != "" {
		pd.Purl = purl.Build("conda", "", pd.Name, pd.Version, nil, "")
	}

	addCondaDeps(pd, doc.Requirements.Run, packagedcode.ScopeDependencies, true, false)
	addCondaDeps(pd, doc.Requirements.Build, packagedcode.ScopeDependencies, false, true)
	addCondaDeps(pd, doc.Requirements.Host, packagedcode.ScopeDependencies, false, true)

	return []*packagedcode.PackageData{pd}
}

func addCondaDeps(pd *packagedcode.PackageData, specs []string, scope string, isRuntime, isOptional bool) {
	for _, spec := range specs {
		fields := strings.Fields(spec)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		requirement := ""
		if len(fields) > 1 {
			requirement = strings.Join(fields[1:], " ")
		}
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:                 purl.Build("conda", "", name, "", nil, ""),
			ExtractedRequirement: requirement,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           isOptional,
			IsDirect:             true,
		})
	}
}

func renderCondaJinja(text string) string {
	vars := map[string]string{}
	for _, m := range condaSetRe.FindAllStringSubmatch(text, -1) {
		vars[m[1]] = m[2]
	}

	var out strings.Builder
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if condaSetRe.MatchString(line) {
			continue
		}
		resolved, ok := substituteCondaVars(line, vars)
		if !ok {
			continue
		}
		out.WriteString(resolved)
		out.WriteByte('\n')
	}
	return out.String()
}

// substituteCondaVars replaces every {{ name }} or {{ name|filter }}
// reference in line. ok is false if any reference names an undefined
// variable, signalling the caller should drop the whole line.
func substituteCondaVars(line string, vars map[string]string) (string, bool) {
	ok := true
	result := condaVarRe.ReplaceAllStringFunc(line, func(match string) string {
		sub := condaVarRe.FindStringSubmatch(match)
		name := strings.TrimSpace(sub[1])
		val, found := vars[name]
		if !found {
			ok = false
			return match
		}
		filter := strings.TrimSpace(strings.TrimPrefix(sub[2], "|"))
		switch filter {
		case "lower":
			return strings.ToLower(val)
		case "upper":
			return strings.ToUpper(val)
		default:
			return val
		}
	})
	return result, ok
}
