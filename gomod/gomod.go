// Package gomod parses go.mod, go.sum, and Godeps/Godeps.json, grounded on
// spec.md §4.5.2: go.mod is a line-oriented state machine over block
// directives (require/exclude/replace/retract), which is the shape that
// needs hand-written parsing rather than a library decode.
package gomod

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

// isResolvedVersion reports whether a go.mod/go.sum version string (a
// release tag or a "v0.0.0-yyyymmddhhmmss-abcdef123456" pseudo-version) is
// a single resolved semantic version rather than a range -- go.mod never
// expresses ranges, so this is effectively a sanity check that the field
// parsed as a real version at all.
func isResolvedVersion(version string) bool {
	_, err := semver.NewVersion(version)
	return err == nil
}

func init() {
	parser.Register(parser.Registration{
		Description:      "Go module file",
		PathPatterns:     []string{"**/go.mod"},
		PackageType:      "golang",
		PrimaryLanguage:  "Go",
		DocumentationURL: "https://go.dev/ref/mod#go-mod-file",
		Parser:           modParser{},
	})
	parser.Register(parser.Registration{
		Description:      "Go module checksum file",
		PathPatterns:     []string{"**/go.sum"},
		PackageType:      "golang",
		PrimaryLanguage:  "Go",
		DocumentationURL: "https://go.dev/ref/mod#go-sum-files",
		Parser:           sumParser{},
	})
	parser.Register(parser.Registration{
		Description:      "Godeps legacy dependency manifest",
		PathPatterns:     []string{"**/Godeps/Godeps.json"},
		PackageType:      "golang",
		PrimaryLanguage:  "Go",
		DocumentationURL: "https://github.com/tools/godep",
		Parser:           godepsParser{},
	})
}

// blockState is which directive block a go.mod line-scanner is currently
// inside. Closing any block with a bare ")" returns to blockNone;
// blockState must never carry over from one block kind to the next.
type blockState int

const (
	blockNone blockState = iota
	blockRequire
	blockExclude
	blockReplace
	blockRetract
)

type modParser struct{}

func (modParser) IsMatch(path string) bool { return true }

func (modParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/gomod")
	const datasourceID = "go_mod"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable go.mod")
		return []*packagedcode.PackageData{packagedcode.Default("golang", datasourceID)}
	}

	pd := packagedcode.Default("golang", datasourceID)
	pd.PrimaryLanguage = "Go"
	pd.ExtraData = map[string]any{}
	var retracted []string

	state := blockNone
	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		line := stripComment(sc.Text())
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if trimmed == ")" {
			state = blockNone
			continue
		}

		if state != blockNone {
			handleBlockLine(pd, state, trimmed, &retracted)
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "module":
			if len(fields) >= 2 {
				ns, name := splitLastSlash(fields[1])
				pd.Namespace = ns
				pd.Name = name
			}
		case "go":
			if len(fields) >= 2 {
				pd.ExtraData["go_version"] = fields[1]
			}
		case "toolchain":
			if len(fields) >= 2 {
				pd.ExtraData["toolchain"] = fields[1]
			}
		case "require":
			handleRequireOpenOrLine(pd, fields[1:], trimmed, &state, blockRequire)
		case "exclude":
			handleExcludeOpenOrLine(pd, fields[1:], trimmed, &state, blockExclude)
		case "replace":
			handleReplaceOpenOrLine(pd, strings.TrimSpace(strings.TrimPrefix(trimmed, fields[0])), &state, blockReplace)
		case "retract":
			handleRetractOpenOrLine(strings.TrimSpace(strings.TrimPrefix(trimmed, fields[0])), &state, blockRetract, &retracted)
		}
	}

	if pd.Name != "" {
		pd.Purl = purl.BuildGo(joinModulePath(pd.Namespace, pd.Name), "")
	}
	if len(retracted) > 0 {
		pd.ExtraData["retracted_versions"] = retracted
	}
	if len(pd.ExtraData) == 0 {
		pd.ExtraData = nil
	}

	return []*packagedcode.PackageData{pd}
}

func handleBlockLine(pd *packagedcode.PackageData, state blockState, line string, retracted *[]string) {
	switch state {
	case blockRequire:
		addRequireLine(pd, line)
	case blockExclude:
		addExcludeLine(pd, line)
	case blockReplace:
		addReplaceLine(pd, line)
	case blockRetract:
		addRetractEntry(line, retracted)
	}
}

// handleRequireOpenOrLine handles both "require (" block openers and
// single-line "require path version [// indirect]" directives.
func handleRequireOpenOrLine(pd *packagedcode.PackageData, rest []string, trimmed string, state *blockState, block blockState) {
	if strings.HasSuffix(trimmed, "(") {
		*state = block
		return
	}
	addRequireLine(pd, strings.Join(rest, " "))
}

func handleExcludeOpenOrLine(pd *packagedcode.PackageData, rest []string, trimmed string, state *blockState, block blockState) {
	if strings.HasSuffix(trimmed, "(") {
		*state = block
		return
	}
	addExcludeLine(pd, strings.Join(rest, " "))
}

func handleReplaceOpenOrLine(pd *packagedcode.PackageData, rest string, state *blockState, block blockState) {
	if rest == "(" {
		*state = block
		return
	}
	addReplaceLine(pd, rest)
}

func handleRetractOpenOrLine(rest string, state *blockState, block blockState, retracted *[]string) {
	if rest == "(" {
		*state = block
		return
	}
	addRetractEntry(rest, retracted)
}

// addRequireLine parses "<path> <version> [// indirect]". The trailing
// comment has already been removed by stripComment, which leaves an
// "// indirect" comment behind as the "indirectMARKER" token that this
// function detects and drops.
func addRequireLine(pd *packagedcode.PackageData, line string) {
	indirect := strings.Contains(line, "indirectMARKER")
	line = strings.ReplaceAll(line, "indirectMARKER", "")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	path, version := fields[0], fields[1]
	dep := packagedcode.Dependency{
		ExtractedRequirement: version,
		Scope:                packagedcode.ScopeRequire,
		IsRuntime:            true,
		IsDirect:             !indirect,
		IsPinned:             isResolvedVersion(version),
		Purl:                 purl.BuildGo(path, version),
	}
	pd.Dependencies = append(pd.Dependencies, dep)
}

func addExcludeLine(pd *packagedcode.PackageData, line string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	path, version := fields[0], fields[1]
	pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
		ExtractedRequirement: version,
		Scope:                packagedcode.ScopeExclude,
		Purl:                 purl.BuildGo(path, version),
	})
}

// addReplaceLine parses "<old>[ <oldver>] => <new>[ <newver>]". Malformed
// lines (missing "=>", empty either side) are silently skipped.
func addReplaceLine(pd *packagedcode.PackageData, line string) {
	old, new, ok := strings.Cut(line, "=>")
	if !ok {
		return
	}
	old, new = strings.TrimSpace(old), strings.TrimSpace(new)
	if old == "" || new == "" {
		return
	}

	oldFields := strings.Fields(old)
	newFields := strings.Fields(new)
	if len(oldFields) == 0 || len(newFields) == 0 {
		return
	}

	extra := map[string]any{"replace_old": oldFields[0], "replace_new": newFields[0]}
	if len(oldFields) >= 2 {
		extra["replace_old_version"] = oldFields[1]
	}
	isLocal := strings.HasPrefix(newFields[0], ".") || strings.HasPrefix(newFields[0], "/")
	if len(newFields) >= 2 && !isLocal {
		extra["replace_version"] = newFields[1]
	}

	version := ""
	if len(newFields) >= 2 {
		version = newFields[1]
	}
	dep := packagedcode.Dependency{
		Scope:     packagedcode.ScopeReplace,
		ExtraData: extra,
	}
	if !isLocal {
		dep.Purl = purl.BuildGo(newFields[0], version)
	}
	pd.Dependencies = append(pd.Dependencies, dep)
}

// addRetractEntry parses a retract directive's spec: either a single
// version or a "[v1, v2]" range.
func addRetractEntry(spec string, retracted *[]string) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return
	}
	if strings.HasPrefix(spec, "[") && strings.HasSuffix(spec, "]") {
		inner := strings.TrimSuffix(strings.TrimPrefix(spec, "["), "]")
		parts := strings.Split(inner, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		*retracted = append(*retracted, strings.Join(parts, ","))
		return
	}
	*retracted = append(*retracted, spec)
}

// stripComment removes a "// ..." trailing comment, except it preserves an
// "// indirect" marker as the literal substring "indirectMARKER" so the
// require-line parser can detect it as a flag rather than commentary.
func stripComment(line string) string {
	idx := strings.Index(line, "//")
	if idx < 0 {
		return line
	}
	comment := strings.TrimSpace(line[idx+2:])
	if comment == "indirect" {
		return line[:idx] + " indirectMARKER"
	}
	return line[:idx]
}

func splitLastSlash(p string) (namespace, name string) {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return "", p
	}
	return p[:idx], p[idx+1:]
}

func joinModulePath(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "/" + name
}

type sumParser struct{}

func (sumParser) IsMatch(path string) bool { return true }

func (sumParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/gomod")
	const datasourceID = "go_sum"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable go.sum")
		return []*packagedcode.PackageData{packagedcode.Default("golang", datasourceID)}
	}

	pd := packagedcode.Default("golang", datasourceID)
	seen := make(map[string]bool)
	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			continue
		}
		module, version := fields[0], strings.TrimSuffix(fields[1], "/go.mod")
		key := module + "@" + version
		if seen[key] {
			continue
		}
		seen[key] = true
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			ExtractedRequirement: version,
			Scope:                "dependency",
			IsPinned:             true,
			IsRuntime:            true,
			Purl:                 purl.BuildGo(module, version),
		})
	}
	return []*packagedcode.PackageData{pd}
}

type godepsFile struct {
	ImportPath string `json:"ImportPath"`
	GoVersion  string `json:"GoVersion"`
	Deps       []struct {
		ImportPath string `json:"ImportPath"`
		Rev        string `json:"Rev"`
	} `json:"Deps"`
}

type godepsParser struct{}

func (godepsParser) IsMatch(path string) bool { return true }

func (godepsParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/gomod")
	const datasourceID = "godeps_json"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable Godeps.json")
		return []*packagedcode.PackageData{packagedcode.Default("golang", datasourceID)}
	}
	var gf godepsFile
	if err := json.Unmarshal(raw, &gf); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed Godeps.json")
		return []*packagedcode.PackageData{packagedcode.Default("golang", datasourceID)}
	}

	pd := packagedcode.Default("golang", datasourceID)
	if gf.ImportPath != "" {
		pd.Namespace, pd.Name = splitLastSlash(gf.ImportPath)
		pd.Purl = purl.BuildGo(gf.ImportPath, "")
	}
	if gf.GoVersion != "" {
		pd.ExtraData = map[string]any{"go_version": gf.GoVersion}
	}
	for _, d := range gf.Deps {
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			ExtractedRequirement: d.Rev,
			Scope:                "Deps",
			IsPinned:             d.Rev != "",
			IsRuntime:            true,
			Purl:                 purl.BuildGo(d.ImportPath, d.Rev),
		})
	}
	return []*packagedcode.PackageData{pd}
}
