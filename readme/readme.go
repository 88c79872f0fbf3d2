// Package readme extracts a nominal third-party-inventory PackageData from
// README.chromium/android/facebook/google/thirdparty-style files, a
// convention several large C++/Android/Chromium-adjacent codebases use to
// document a vendored third-party component next to its source.
package readme

import (
	"bufio"
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "third-party component README manifest",
		PathPatterns:     []string{"**/README.chromium", "**/README.android", "**/README.facebook", "**/README.google", "**/README.thirdparty"},
		PackageType:      "readme",
		PrimaryLanguage:  "",
		DocumentationURL: "https://chromium.googlesource.com/chromium/src/+/HEAD/docs/adding_to_third_party.md",
		CaseInsensitive:  true,
		Parser:           thirdPartyParser{},
	})
}

var fieldRe = regexp.MustCompile(`(?i)^(name|short name|url|version|revision|license|license file|security critical)\s*:\s*(.*)$`)

type thirdPartyParser struct{}

func (thirdPartyParser) IsMatch(path string) bool { return true }

// ExtractPackages reads the convention's "Key: value" lines (not RFC822 —
// no continuation-line or duplicate-key semantics, just the first colon on
// each line) until the first blank line, which by convention starts free
// text "Description"/"Local Modifications" prose this parser doesn't need.
func (thirdPartyParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/readme")
	const datasourceID = "readme_thirdparty"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable third-party README")
		return []*packagedcode.PackageData{packagedcode.Default("readme", datasourceID)}
	}

	pd := packagedcode.Default("readme", datasourceID)

	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		m := fieldRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := strings.ToLower(m[1])
		val := strings.TrimSpace(m[2])
		switch key {
		case "name", "short name":
			if pd.Name == "" {
				pd.Name = val
			}
		case "url":
			pd.HomepageURL = val
		case "version", "revision":
			if pd.Version == "" {
				pd.Version = val
			}
		case "license":
			pd.DeclaredLicenseExpression = val
		}
	}

	return []*packagedcode.PackageData{pd}
}
