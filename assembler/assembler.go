package assembler

import (
	"path"
	"sort"

	"github.com/quay/packagedcode"
	ourpath "github.com/quay/packagedcode/pkg/path"
)

// AssembleFiles runs the full directory-scoped sibling merge over every
// scanned file's PackageData, mutating each FileInfo's ForPackages
// back-links in place and returning the built packages and hoisted
// top-level dependencies.
//
// Files with no PackageData are ignored. Within one directory, a
// PackageData whose DatasourceID matches no row of Assemblers is dropped
// silently (an unregistered datasource produces no package and no
// dependency, by design). Each remaining group, partitioned by which
// Config's datasource set it belongs to, is merged into one Package via
// assembleSiblings.
func AssembleFiles(files []*packagedcode.FileInfo) *packagedcode.AssemblyResult {
	result := &packagedcode.AssemblyResult{}

	byDir := groupByDirectory(files)
	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		assembleDirectory(byDir[dir], result)
	}
	return result
}

// contribution pairs one PackageData record with the FileInfo it came from,
// since the assembler needs both the data to merge and the file to
// back-link.
type contribution struct {
	file *packagedcode.FileInfo
	data *packagedcode.PackageData
}

// groupByDirectory canonicalizes each file's path before taking its
// directory, so a "./go.mod" and a "go.mod" produced by different walkers
// land in the same group.
func groupByDirectory(files []*packagedcode.FileInfo) map[string][]contribution {
	byDir := make(map[string][]contribution)
	for _, f := range files {
		if f == nil || len(f.PackageData) == 0 {
			continue
		}
		dir := path.Dir(ourpath.CanonicalizeFileName(f.Path))
		for _, pd := range f.PackageData {
			byDir[dir] = append(byDir[dir], contribution{file: f, data: pd})
		}
	}
	return byDir
}

// assembleDirectory partitions one directory's contributions by config key
// (the matching row of Assemblers; contributions whose datasource ID matches
// no row fall into no partition) and merges each partition into a Package.
func assembleDirectory(contribs []contribution, result *packagedcode.AssemblyResult) {
	seen := make(map[string]bool, len(Assemblers))
	for _, cfg := range Assemblers {
		if seen[cfg.Key] {
			continue
		}
		seen[cfg.Key] = true
		group := filterByConfig(contribs, cfg)
		if len(group) == 0 {
			continue
		}
		assembleSiblings(group, cfg, result)
	}
}

func filterByConfig(contribs []contribution, cfg Config) []contribution {
	var out []contribution
	for _, c := range contribs {
		if cfg.DatasourceIDs[c.data.DatasourceID] {
			out = append(out, c)
		}
	}
	return out
}

// siblingPriority ranks a contribution by the position of its file's base
// name within cfg.SiblingFilePatterns, lowest index first; contributions
// matching no pattern sort last. Ties keep original order (stable sort).
func siblingPriority(c contribution, cfg Config) int {
	base := path.Base(ourpath.CanonicalizeFileName(c.file.Path))
	for i, pat := range cfg.SiblingFilePatterns {
		if matchesPattern(pat, base) {
			return i
		}
	}
	return len(cfg.SiblingFilePatterns)
}

// assembleSiblings fuses one directory's same-config contributions into a
// single Package, in sibling-pattern priority order, then hoists every
// contributing PackageData's Dependencies into TopLevelDependency records
// and back-links every contributing file to the resulting package_uid.
//
// The empty-Purl check only gates construction: a contribution with no Purl
// is skipped until some sibling (in priority order) supplies one, at which
// point a Package is built from that contribution. Once a Package exists,
// every remaining sibling is merged into it via Update regardless of its
// own Purl (spec.md §4.6) -- a later sibling's empty Purl never drops it
// from the merge, it just can't be the one that originates the Package. If
// no contribution in the group ever carries a Purl, no Package is built at
// all (spec.md §8 S3/S6: no identity, no package), and dependencies are not
// hoisted either, since ForPackageUID would have nothing to point to.
func assembleSiblings(group []contribution, cfg Config, result *packagedcode.AssemblyResult) {
	sort.SliceStable(group, func(i, j int) bool {
		return siblingPriority(group[i], cfg) < siblingPriority(group[j], cfg)
	})

	var pkg *packagedcode.Package
	for _, c := range group {
		if pkg == nil {
			if c.data.Purl == "" {
				continue
			}
			pkg = packagedcode.FromPackageData(c.data, c.file.Path)
		} else {
			pkg.Update(c.data, c.file.Path)
		}
	}
	if pkg == nil {
		return
	}
	result.Packages = append(result.Packages, pkg)

	for _, c := range group {
		c.file.AddForPackage(pkg.PackageUID)
		for _, dep := range c.data.Dependencies {
			if dep.Purl == "" {
				continue
			}
			result.Dependencies = append(result.Dependencies, &packagedcode.TopLevelDependency{
				Dependency:    dep,
				DatafilePath:  c.file.Path,
				DatasourceID:  c.data.DatasourceID,
				ForPackageUID: pkg.PackageUID,
			})
		}
	}
}
