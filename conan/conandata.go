package conan

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
		Description:      "Conan per-version source metadata",
		PathPatterns:     []string{"**/conandata.yml"},
		PackageType:      "conan",
		PrimaryLanguage:  "C++",
		DocumentationURL: "https://docs.conan.io/2/reference/conanfile/attributes.html#version",
		Parser:           conandataParser{},
	})
}

type conandataYAML struct {
	Sources map[string]struct {
		URL    any `yaml:"url"`
		SHA256 string `yaml:"sha256"`
	} `yaml:"sources"`
}

type conandataParser struct{}

func (conandataParser) IsMatch(path string) bool { return true }

// ExtractPackages carries conandata.yml's per-version download URL/sha256
// as download metadata on a purl-less PackageData; it never supplies
// identity, so by itself it can't make a sibling group viable, only
// contribute a checksum once conanfile.py/.txt has supplied a name.
func (conandataParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/conan")
	const datasourceID = "conan_conandata_yml"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable conandata.yml")
		return []*packagedcode.PackageData{packagedcode.Default("conan", datasourceID)}
	}
	var doc conandataYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("malformed conandata.yml")
		return []*packagedcode.PackageData{packagedcode.Default("conan", datasourceID)}
	}

	pd := packagedcode.Default("conan", datasourceID)
	pd.PrimaryLanguage = "C++"

	for version, src := range doc.Sources {
		if url, ok := src.URL.(string); ok && pd.DownloadURL == "" {
			pd.DownloadURL = url
			pd.Version = version
		}
		if src.SHA256 != "" && pd.SHA256 == "" {
			pd.SHA256 = src.SHA256
		}
	}

	return []*packagedcode.PackageData{pd}
}
