package rubygems

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"strings"

	"github.com/quay/zlog"
	"gopkg.in/yaml.v3"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "built RubyGems package archive",
		PathPatterns:     []string{"**/*.gem"},
		PackageType:      "gem",
		PrimaryLanguage:  "Ruby",
		DocumentationURL: "https://guides.rubygems.org/gems-with-extensions/",
		Parser:           gemArchiveParser{},
	})
}

type gemMetadata struct {
	Name        string   `yaml:"name"`
	Version     any      `yaml:"version"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description"`
	Homepage    string   `yaml:"homepage"`
	Licenses    []string `yaml:"licenses"`
	Authors     []string `yaml:"authors"`
	Email       any      `yaml:"email"`
	Platform    string   `yaml:"platform"`
}

type gemArchiveParser struct{}

func (gemArchiveParser) IsMatch(path string) bool { return true }

func (gemArchiveParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/rubygems")
	const datasourceID = "gem_archive"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable .gem archive")
		return []*packagedcode.PackageData{packagedcode.Default("gem", datasourceID)}
	}

	meta, err := readGemMetadata(raw)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("could not extract metadata.gz from .gem archive")
		return []*packagedcode.PackageData{packagedcode.Default("gem", datasourceID)}
	}

	pd := packagedcode.Default("gem", datasourceID)
	pd.PrimaryLanguage = "Ruby"
	pd.Name = meta.Name
	pd.Version = versionString(meta.Version)
	pd.Description = meta.Summary
	if pd.Description == "" {
		pd.Description = meta.Description
	}
	pd.HomepageURL = meta.Homepage
	pd.DeclaredLicenseExpression = strings.Join(meta.Licenses, " OR ")

	for i, author := range meta.Authors {
		p := packagedcode.Party{Type: packagedcode.PartyPerson, Role: packagedcode.RoleAuthor, Name: author}
		if i == 0 {
			p.Email = firstString(meta.Email)
		}
		pd.Parties = append(pd.Parties, p)
	}

	var qualifiers map[string]string
	filename := pd.Name + "-" + pd.Version
	if meta.Platform != "" && meta.Platform != "ruby" {
		qualifiers = map[string]string{"platform": meta.Platform}
		filename += "-" + meta.Platform
	}
	if pd.Name != "" {
		pd.Purl = purl.Build("gem", "", pd.Name, pd.Version, qualifiers, "")
	}
	pd.DownloadURL = "https://rubygems.org/downloads/" + filename + ".gem"

	return []*packagedcode.PackageData{pd}
}

// readGemMetadata reads only metadata.gz out of the .gem POSIX tar archive
// and decompresses/decodes it; data.tar.gz (the payload) is never read.
func readGemMetadata(raw []byte) (*gemMetadata, error) {
	tr := tar.NewReader(bytes.NewReader(raw))
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		if hdr.Name != "metadata.gz" {
			continue
		}
		gz, err := gzip.NewReader(tr)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		var meta gemMetadata
		if err := yaml.NewDecoder(gz).Decode(&meta); err != nil {
			return nil, err
		}
		return &meta, nil
	}
}

func versionString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if vs, ok := t["version"].(string); ok {
			return vs
		}
	}
	return ""
}

func firstString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
