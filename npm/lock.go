package npm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"strings"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/purl"
)

type lockFile struct {
	Name            string                    `json:"name"`
	Version         string                    `json:"version"`
	LockfileVersion int                       `json:"lockfileVersion"`
	Dependencies    map[string]lockDependency `json:"dependencies"`
	Packages        map[string]lockPackage    `json:"packages"`
}

type lockDependency struct {
	Version      string                    `json:"version"`
	Resolved     string                    `json:"resolved"`
	Integrity    string                    `json:"integrity"`
	Dev          bool                      `json:"dev"`
	Optional     bool                      `json:"optional"`
	Requires     map[string]string         `json:"requires"`
	Dependencies map[string]lockDependency `json:"dependencies"`
}

type lockPackage struct {
	Version      string            `json:"version"`
	Resolved     string            `json:"resolved"`
	Integrity    string            `json:"integrity"`
	Dev          bool              `json:"dev"`
	Optional     bool              `json:"optional"`
	Dependencies map[string]string `json:"dependencies"`
}

type lockParser struct{}

func (lockParser) IsMatch(path string) bool { return true }

func (lockParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/npm")
	datasourceID := "npm_package_lock_json"
	if strings.HasSuffix(path, "npm-shrinkwrap.json") {
		datasourceID = "npm_shrinkwrap_json"
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable npm lockfile")
		return []*packagedcode.PackageData{packagedcode.Default("npm", datasourceID)}
	}
	var lf lockFile
	if err := json.Unmarshal(raw, &lf); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed npm lockfile")
		return []*packagedcode.PackageData{packagedcode.Default("npm", datasourceID)}
	}

	pd := packagedcode.Default("npm", datasourceID)
	pd.Name = lf.Name
	pd.Version = lf.Version
	if lf.Name != "" {
		pd.Purl = purl.BuildNPM(lf.Name, lf.Version)
	}

	switch {
	case len(lf.Packages) > 0:
		walkPackagesV2(pd, lf.Packages)
	case len(lf.Dependencies) > 0:
		walkDependenciesV1(pd, lf.Dependencies)
	}

	return []*packagedcode.PackageData{pd}
}

// walkDependenciesV1 walks lockfileVersion 1's recursive "dependencies" tree.
func walkDependenciesV1(pd *packagedcode.PackageData, deps map[string]lockDependency) {
	for name, d := range deps {
		pd.Dependencies = append(pd.Dependencies, dependencyFromLockEntry(name, d.Version, d.Resolved, d.Integrity, d.Dev, d.Optional))
		if len(d.Dependencies) > 0 {
			walkDependenciesV1(pd, d.Dependencies)
		}
	}
}

// walkPackagesV2 walks lockfileVersion 2+'s flat "packages" map, keyed by
// "node_modules/<name>" (with nested "node_modules/" segments for
// transitive deps); the root entry has key "".
func walkPackagesV2(pd *packagedcode.PackageData, packages map[string]lockPackage) {
	for key, p := range packages {
		if key == "" {
			continue
		}
		name := packageNameFromNodeModulesKey(key)
		if name == "" {
			continue
		}
		pd.Dependencies = append(pd.Dependencies, dependencyFromLockEntry(name, p.Version, p.Resolved, p.Integrity, p.Dev, p.Optional))
	}
}

// packageNameFromNodeModulesKey extracts the package name from a
// node_modules/-prefixed key, taking the last scope/name pair and
// preserving a leading "@scope/" if present.
func packageNameFromNodeModulesKey(key string) string {
	segs := strings.Split(key, "node_modules/")
	last := segs[len(segs)-1]
	if strings.HasPrefix(last, "@") && len(segs) >= 2 {
		scopeSeg := segs[len(segs)-2]
		if strings.HasSuffix(scopeSeg, "node_modules/") || scopeSeg == "" {
			return last
		}
	}
	return last
}

func dependencyFromLockEntry(name, version, resolved, integrity string, dev, optional bool) packagedcode.Dependency {
	dep := packagedcode.Dependency{
		ExtractedRequirement: version,
		IsPinned:             true,
		IsDirect:             false,
	}
	switch {
	case dev:
		dep.Scope = packagedcode.ScopeDev
		dep.IsRuntime = false
		dep.IsOptional = false
	case optional:
		dep.Scope = packagedcode.ScopeOptional
		dep.IsRuntime = true
		dep.IsOptional = true
	default:
		dep.IsRuntime = true
	}
	if name != "" {
		dep.Purl = purl.BuildNPM(name, version)
	}
	if resolved != "" || integrity != "" {
		resolvedPD := &packagedcode.PackageData{PackageType: "npm", Name: name, Version: version}
		if resolved != "" {
			if base, frag, ok := strings.Cut(resolved, "#"); ok {
				resolvedPD.DownloadURL = base
				resolvedPD.SHA1 = frag
			} else {
				resolvedPD.DownloadURL = resolved
			}
		}
		if integrity != "" {
			alg, hash := decodeIntegrity(integrity)
			switch alg {
			case "sha1":
				resolvedPD.SHA1 = hash
			case "sha512":
				resolvedPD.SHA512 = hash
			}
		}
		dep.ResolvedPackage = resolvedPD
	}
	return dep
}

// decodeIntegrity decodes a Subresource Integrity string "<alg>-<base64>"
// into (algorithm, hex digest).
func decodeIntegrity(integrity string) (alg, hexDigest string) {
	alg, b64, ok := strings.Cut(integrity, "-")
	if !ok {
		return "", ""
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", ""
	}
	const hextable = "0123456789abcdef"
	var sb strings.Builder
	sb.Grow(len(raw) * 2)
	for _, b := range raw {
		sb.WriteByte(hextable[b>>4])
		sb.WriteByte(hextable[b&0x0f])
	}
	return alg, sb.String()
}
