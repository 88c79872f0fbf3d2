// Package rubygems extracts PackageData from Gemfile.lock, .gemspec, and
// .gem archives, grounded on spec.md §4.5.4-4.5.6. Gemfile.lock is the hard
// case: a section-dispatch state machine keyed by indentation level.
package rubygems

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
		Description:      "Bundler resolved lockfile",
		PathPatterns:     []string{"**/Gemfile.lock"},
		PackageType:      "gem",
		PrimaryLanguage:  "Ruby",
		DocumentationURL: "https://bundler.io/v2.5/man/gemfile.5.html",
		Parser:           lockParser{},
	})
}

type section int

const (
	sectionNone section = iota
	sectionGem
	sectionGit
	sectionPath
	sectionSVN
	sectionPlatforms
	sectionDependencies
	sectionBundledWith
)

func sectionFor(header string) section {
	switch header {
	case "GEM":
		return sectionGem
	case "GIT":
		return sectionGit
	case "PATH":
		return sectionPath
	case "SVN":
		return sectionSVN
	case "PLATFORMS":
		return sectionPlatforms
	case "DEPENDENCIES":
		return sectionDependencies
	case "BUNDLED WITH":
		return sectionBundledWith
	}
	return sectionNone
}

// sourceMeta accumulates one GIT/PATH/SVN section's remote/revision/branch
// metadata, keyed from the 2-column attribute lines that precede the
// section's "specs:" spec entries.
type sourceMeta struct {
	remote, revision, branch, ref, tag string
}

type lockParser struct{}

func (lockParser) IsMatch(path string) bool { return true }

func (lockParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/rubygems")
	const datasourceID = "gemfile_lock"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable Gemfile.lock")
		return []*packagedcode.PackageData{packagedcode.Default("gem", datasourceID)}
	}

	pd := packagedcode.Default("gem", datasourceID)
	extra := map[string]any{}

	cur := sectionNone
	var meta sourceMeta
	var primaryName, primaryVersion string
	var havePrimary bool
	var platforms []string
	var bundlerNext bool

	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		raw := sc.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		indent := leadingSpaces(raw)
		content := strings.TrimRight(raw, " \t")

		if indent == 0 {
			header := strings.TrimSpace(content)
			if header == "specs:" {
				continue
			}
			cur = sectionFor(header)
			meta = sourceMeta{}
			havePrimary = false
			bundlerNext = cur == sectionBundledWith
			continue
		}

		switch cur {
		case sectionGem, sectionGit, sectionPath, sectionSVN:
			handleSourceSectionLine(pd, cur, indent, content, &meta, &havePrimary, &primaryName, &primaryVersion)
		case sectionPlatforms:
			platforms = append(platforms, strings.TrimSpace(content))
		case sectionDependencies:
			handleDependencyLine(pd, content)
		case sectionBundledWith:
			if bundlerNext {
				extra["bundler_version"] = strings.TrimSpace(content)
				bundlerNext = false
			}
		}
	}

	if len(platforms) > 0 {
		extra["platforms"] = platforms
	}
	if havePrimary {
		pd.Name = primaryName
		pd.Version = primaryVersion
		pd.Purl = purl.Build("gem", "", primaryName, primaryVersion, nil, "")
		pd.RepositoryHomepageURL = "https://rubygems.org/gems/" + primaryName + "/versions/" + primaryVersion
		pd.DownloadURL = "https://rubygems.org/downloads/" + primaryName + "-" + primaryVersion + ".gem"
		pd.RepositoryDownloadURL = pd.DownloadURL
		pd.APIDataURL = "https://rubygems.org/api/v2/rubygems/" + primaryName + "/versions/" + primaryVersion + ".json"
	}
	if len(extra) > 0 {
		pd.ExtraData = extra
	}

	return []*packagedcode.PackageData{pd}
}

func leadingSpaces(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' {
			break
		}
		n++
	}
	return n
}

func handleSourceSectionLine(pd *packagedcode.PackageData, cur section, indent int, content string, meta *sourceMeta, havePrimary *bool, primaryName, primaryVersion *string) {
	trimmed := strings.TrimSpace(content)
	switch {
	case indent == 2:
		key, val, ok := strings.Cut(trimmed, ":")
		if !ok {
			return
		}
		val = strings.TrimSpace(val)
		switch strings.TrimSpace(key) {
		case "remote":
			meta.remote = val
		case "revision":
			meta.revision = val
		case "branch":
			meta.branch = val
		case "ref":
			meta.ref = val
		case "tag":
			meta.tag = val
		}
	case indent == 4:
		name, version := parseSpecEntry(trimmed)
		if name == "" {
			return
		}
		if cur == sectionPath && !*havePrimary {
			// A PATH section's primary spec is promoted to the package
			// itself; it must not also appear as a dependency.
			*havePrimary = true
			*primaryName = name
			*primaryVersion = version
			return
		}
		dep := packagedcode.Dependency{
			ExtractedRequirement: version,
			IsRuntime:            true,
			IsPinned:             true,
			Purl:                 purl.Build("gem", "", name, version, nil, ""),
		}
		if cur == sectionGit {
			extra := map[string]any{
				"source_type": "GIT",
				"remote":      meta.remote,
				"revision":    meta.revision,
			}
			if meta.tag != "" {
				extra["tag"] = meta.tag
			} else if meta.branch != "" {
				extra["branch"] = meta.branch
			}
			if meta.ref != "" {
				extra["ref"] = meta.ref
			}
			dep.ExtraData = extra
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}

// parseSpecEntry parses "name (version)" at column 4, stripping a trailing
// ".freeze" (Ruby's literal-freezing call, which appears verbatim in some
// Gemfile.lock generators) wherever it occurs.
func parseSpecEntry(s string) (name, version string) {
	s = strings.TrimSuffix(s, ".freeze")
	open := strings.Index(s, "(")
	if open < 0 {
		return strings.TrimSpace(s), ""
	}
	name = strings.TrimSpace(s[:open])
	close := strings.Index(s[open:], ")")
	if close < 0 {
		return name, ""
	}
	version = strings.TrimSuffix(strings.TrimSpace(s[open+1:open+close]), ".freeze")
	return name, version
}

// handleDependencyLine parses one DEPENDENCIES-section line: "name", "name
// (version)", or either form with a trailing "!" marking is_pinned.
func handleDependencyLine(pd *packagedcode.PackageData, content string) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(content), ".freeze")
	isPinned := strings.HasSuffix(trimmed, "!")
	trimmed = strings.TrimSuffix(trimmed, "!")
	before, after, hasVersion := strings.Cut(trimmed, "(")

	before = strings.TrimSpace(before)
	isPinned = isPinned || strings.HasSuffix(before, "!")
	before = strings.TrimSuffix(before, "!")

	name := strings.TrimSpace(before)
	if name == "" {
		return
	}

	version := ""
	if hasVersion {
		if close := strings.Index(after, ")"); close >= 0 {
			version = strings.TrimSuffix(strings.TrimSpace(after[:close]), ".freeze")
		}
	}

	pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
		ExtractedRequirement: version,
		IsDirect:             true,
		IsRuntime:            true,
		IsPinned:             isPinned,
		Purl:                 purl.Build("gem", "", name, "", nil, ""),
	})
}
