package pnpm

import (
	"context"
	"os"

	"github.com/quay/zlog"
	"gopkg.in/yaml.v3"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "pnpm workspace package glob list",
		PathPatterns:     []string{"**/pnpm-workspace.yaml"},
		PackageType:      "npm",
		PrimaryLanguage:  "JavaScript",
		DocumentationURL: "https://pnpm.io/pnpm-workspace_yaml",
		Parser:           workspaceParser{},
	})
}

type workspaceYAML struct {
	Packages []string `yaml:"packages"`
}

type workspaceParser struct{}

func (workspaceParser) IsMatch(path string) bool { return true }

// ExtractPackages carries the workspace's member-package globs as
// ExtraData; a pnpm-workspace.yaml names no package itself, only the
// layout of a monorepo whose member package.json files are parsed
// independently.
func (workspaceParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/pnpm")
	const datasourceID = "pnpm_workspace_yaml"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable pnpm-workspace.yaml")
		return []*packagedcode.PackageData{packagedcode.Default("npm", datasourceID)}
	}
	var doc workspaceYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed pnpm-workspace.yaml")
		return []*packagedcode.PackageData{packagedcode.Default("npm", datasourceID)}
	}

	pd := packagedcode.Default("npm", datasourceID)
	pd.PrimaryLanguage = "JavaScript"
	if len(doc.Packages) > 0 {
		pd.ExtraData = map[string]any{"workspace_packages": doc.Packages}
	}

	return []*packagedcode.PackageData{pd}
}
