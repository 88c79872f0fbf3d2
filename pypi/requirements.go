// Package pypi extracts PackageData from Python's packaging surface:
// requirements.txt (with -r/-c include support and circular-include
// detection per spec.md §4.5.8), pyproject.toml, setup.cfg, and PKG-INFO/
// METADATA (via the rfc822 reader).
package pypi

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/pep508"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "Python pip requirements file",
		PathPatterns:     []string{"**/requirements.txt", "**/requirements/*.txt", "**/requirements-*.txt"},
		PackageType:      "pypi",
		PrimaryLanguage:  "Python",
		DocumentationURL: "https://pip.pypa.io/en/stable/reference/requirements-file-format/",
		Parser:           requirementsParser{},
	})
}

type requirementsParser struct{}

func (requirementsParser) IsMatch(path string) bool { return true }

func (requirementsParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pypi")
	const datasourceID = "pypi_requirements_txt"

	pd := packagedcode.Default("pypi", datasourceID)
	pd.PrimaryLanguage = "Python"

	visited := map[string]bool{}
	parseRequirementsFile(ctx, path, pd, visited)

	return []*packagedcode.PackageData{pd}
}

// parseRequirementsFile reads one requirements file, recursing into -r/-c
// includes while tracking visited paths to tolerate circular includes
// without infinite recursion.
func parseRequirementsFile(ctx context.Context, path string, pd *packagedcode.PackageData, visited map[string]bool) {
	abs, err := filepath.Abs(path)
	if err == nil {
		if visited[abs] {
			return
		}
		visited[abs] = true
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable requirements file")
		return
	}

	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	dir := filepath.Dir(path)
	for sc.Scan() {
		line := sc.Text()
		if idx := strings.Index(line, " #"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if rest, ok := includeTarget(line, "-r"); ok {
			parseRequirementsFile(ctx, filepath.Join(dir, rest), pd, visited)
			continue
		}
		if rest, ok := includeTarget(line, "-c"); ok {
			parseRequirementsFile(ctx, filepath.Join(dir, rest), pd, visited)
			continue
		}
		if strings.HasPrefix(line, "-") {
			continue
		}

		req, ok := pep508.Parse(line)
		if !ok {
			continue
		}
		dep := packagedcode.Dependency{
			ExtractedRequirement: req.Specifier,
			Scope:                packagedcode.ScopeDependencies,
			IsRuntime:            true,
			IsDirect:             true,
			IsPinned:             strings.HasPrefix(req.Specifier, "=="),
			Purl:                 purl.Build("pypi", "", normalizePyPIName(req.Name), "", nil, ""),
		}
		if req.IsNameAtURL {
			dep.ExtraData = map[string]any{"url": req.URL}
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}

func includeTarget(line, flag string) (string, bool) {
	if strings.HasPrefix(line, flag+" ") {
		return strings.TrimSpace(strings.TrimPrefix(line, flag+" ")), true
	}
	if strings.HasPrefix(line, flag+"=") {
		return strings.TrimSpace(strings.TrimPrefix(line, flag+"=")), true
	}
	return "", false
}

// normalizePyPIName lowercases and collapses runs of "-_." to a single "-",
// the PEP 503 normalization rule purl construction relies on.
func normalizePyPIName(name string) string {
	name = strings.ToLower(name)
	var sb strings.Builder
	lastDash := false
	for _, r := range name {
		if r == '-' || r == '_' || r == '.' {
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
			continue
		}
		sb.WriteRune(r)
		lastDash = false
	}
	return sb.String()
}
