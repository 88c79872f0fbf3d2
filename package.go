package packagedcode

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Package is the assembly output: one or more sibling PackageData records
// fused into a single top-level record, carrying the provenance of every
// file that contributed to it.
type Package struct {
	PackageUID string `json:"package_uid"`

	// DatafilePaths and DatasourceIDs are parallel: index i gives which
	// source file produced which contribution. Both always have equal
	// length.
	DatafilePaths []string `json:"datafile_paths"`
	DatasourceIDs []string `json:"datasource_ids"`

	PackageType string            `json:"package_type,omitempty"`
	Purl        string            `json:"purl,omitempty"`
	Namespace   string            `json:"namespace,omitempty"`
	Name        string            `json:"name,omitempty"`
	Version     string            `json:"version,omitempty"`
	Qualifiers  map[string]string `json:"qualifiers,omitempty"`
	Subpath     string            `json:"subpath,omitempty"`

	PrimaryLanguage string `json:"primary_language,omitempty"`
	Description     string `json:"description,omitempty"`
	ReleaseDate     string `json:"release_date,omitempty"`
	HomepageURL     string `json:"homepage_url,omitempty"`
	DownloadURL     string `json:"download_url,omitempty"`
	VCSUrl          string `json:"vcs_url,omitempty"`
	CodeViewURL     string `json:"code_view_url,omitempty"`
	BugTrackingURL  string `json:"bug_tracking_url,omitempty"`
	APIDataURL      string `json:"api_data_url,omitempty"`

	RepositoryHomepageURL string `json:"repository_homepage_url,omitempty"`
	RepositoryDownloadURL string `json:"repository_download_url,omitempty"`

	Parties  []Party  `json:"parties,omitempty"`
	Keywords []string `json:"keywords,omitempty"`

	SHA1   string `json:"sha1,omitempty"`
	MD5    string `json:"md5,omitempty"`
	SHA256 string `json:"sha256,omitempty"`
	SHA512 string `json:"sha512,omitempty"`
	Size   int64  `json:"size,omitempty"`

	DeclaredLicenseExpression string `json:"declared_license_expression,omitempty"`
	ExtractedLicenseStatement string `json:"extracted_license_statement,omitempty"`
	NoticeText                string `json:"notice_text,omitempty"`
	Copyright                 string `json:"copyright,omitempty"`
	Holder                    string `json:"holder,omitempty"`

	FileReferences []FileReference `json:"file_references,omitempty"`

	IsPrivate bool           `json:"is_private,omitempty"`
	IsVirtual bool           `json:"is_virtual,omitempty"`
	ExtraData map[string]any `json:"extra_data,omitempty"`
}

// TopLevelDependency is a Dependency hoisted out of a contributing
// PackageData, tagged with which file and package it came from.
type TopLevelDependency struct {
	Dependency

	DatafilePath  string `json:"datafile_path"`
	DatasourceID  string `json:"datasource_id"`
	ForPackageUID string `json:"for_package_uid"`
}

// AssemblyResult is the serialized output of one assembly run.
type AssemblyResult struct {
	Packages     []*Package             `json:"packages"`
	Dependencies []*TopLevelDependency  `json:"dependencies"`
}

// newUUID is overridable in tests so assembly output is deterministic.
var newUUID = func() string { return uuid.NewString() }

// mintPackageUID builds a package_uid: purl is appended with a uuid
// qualifier, using "&" if the purl already carries qualifiers and "?"
// otherwise.
func mintPackageUID(purl string) string {
	if purl == "" {
		return ""
	}
	sep := "?"
	if strings.Contains(purl, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%suuid=%s", purl, sep, newUUID())
}

// FromPackageData constructs the first contribution to a new Package. The
// caller must have already confirmed pd.Purl is non-empty; that's the
// precondition the assembler checks before calling this.
func FromPackageData(pd *PackageData, datafilePath string) *Package {
	p := &Package{
		PackageUID:                mintPackageUID(pd.Purl),
		DatafilePaths:             []string{datafilePath},
		DatasourceIDs:             []string{pd.DatasourceID},
		PackageType:               pd.PackageType,
		Purl:                      pd.Purl,
		Namespace:                 pd.Namespace,
		Name:                      pd.Name,
		Version:                   pd.Version,
		Subpath:                   pd.Subpath,
		PrimaryLanguage:           pd.PrimaryLanguage,
		Description:               pd.Description,
		ReleaseDate:               pd.ReleaseDate,
		HomepageURL:               pd.HomepageURL,
		DownloadURL:               pd.DownloadURL,
		VCSUrl:                    pd.VCSUrl,
		CodeViewURL:               pd.CodeViewURL,
		BugTrackingURL:            pd.BugTrackingURL,
		APIDataURL:                pd.APIDataURL,
		RepositoryHomepageURL:     pd.RepositoryHomepageURL,
		RepositoryDownloadURL:     pd.RepositoryDownloadURL,
		SHA1:                      pd.SHA1,
		MD5:                       pd.MD5,
		SHA256:                    pd.SHA256,
		SHA512:                    pd.SHA512,
		Size:                      pd.Size,
		DeclaredLicenseExpression: pd.DeclaredLicenseExpression,
		ExtractedLicenseStatement: pd.ExtractedLicenseStatement,
		NoticeText:                pd.NoticeText,
		Copyright:                 pd.Copyright,
		Holder:                    pd.Holder,
		IsPrivate:                 pd.IsPrivate,
		IsVirtual:                 pd.IsVirtual,
	}
	if len(pd.Qualifiers) > 0 {
		p.Qualifiers = make(map[string]string, len(pd.Qualifiers))
		for k, v := range pd.Qualifiers {
			p.Qualifiers[k] = v
		}
	}
	p.Parties = append(p.Parties, pd.Parties...)
	p.Keywords = appendUnique(p.Keywords, pd.Keywords...)
	p.FileReferences = append(p.FileReferences, pd.FileReferences...)
	if len(pd.ExtraData) > 0 {
		p.ExtraData = make(map[string]any, len(pd.ExtraData))
		for k, v := range pd.ExtraData {
			p.ExtraData[k] = v
		}
	}
	return p
}

// Update fuses a sibling contribution into an already-built Package:
// datafile_paths/datasource_ids are extended, scalar fields are filled only
// when currently empty (first-wins), and collections are appended.
func (p *Package) Update(pd *PackageData, datafilePath string) {
	p.DatafilePaths = append(p.DatafilePaths, datafilePath)
	p.DatasourceIDs = append(p.DatasourceIDs, pd.DatasourceID)

	fillString(&p.PackageType, pd.PackageType)
	fillString(&p.Purl, pd.Purl)
	fillString(&p.Namespace, pd.Namespace)
	fillString(&p.Name, pd.Name)
	fillString(&p.Version, pd.Version)
	fillString(&p.Subpath, pd.Subpath)
	fillString(&p.PrimaryLanguage, pd.PrimaryLanguage)
	fillString(&p.Description, pd.Description)
	fillString(&p.ReleaseDate, pd.ReleaseDate)
	fillString(&p.HomepageURL, pd.HomepageURL)
	fillString(&p.DownloadURL, pd.DownloadURL)
	fillString(&p.VCSUrl, pd.VCSUrl)
	fillString(&p.CodeViewURL, pd.CodeViewURL)
	fillString(&p.BugTrackingURL, pd.BugTrackingURL)
	fillString(&p.APIDataURL, pd.APIDataURL)
	fillString(&p.RepositoryHomepageURL, pd.RepositoryHomepageURL)
	fillString(&p.RepositoryDownloadURL, pd.RepositoryDownloadURL)
	fillString(&p.SHA1, pd.SHA1)
	fillString(&p.MD5, pd.MD5)
	fillString(&p.SHA256, pd.SHA256)
	fillString(&p.SHA512, pd.SHA512)
	fillString(&p.DeclaredLicenseExpression, pd.DeclaredLicenseExpression)
	fillString(&p.ExtractedLicenseStatement, pd.ExtractedLicenseStatement)
	fillString(&p.NoticeText, pd.NoticeText)
	fillString(&p.Copyright, pd.Copyright)
	fillString(&p.Holder, pd.Holder)
	if p.Size == 0 {
		p.Size = pd.Size
	}

	if len(pd.Qualifiers) > 0 {
		if p.Qualifiers == nil {
			p.Qualifiers = make(map[string]string, len(pd.Qualifiers))
		}
		for k, v := range pd.Qualifiers {
			if _, ok := p.Qualifiers[k]; !ok {
				p.Qualifiers[k] = v
			}
		}
	}

	p.Parties = append(p.Parties, pd.Parties...)
	p.Keywords = appendUnique(p.Keywords, pd.Keywords...)
	p.FileReferences = append(p.FileReferences, pd.FileReferences...)
	if len(pd.ExtraData) > 0 {
		if p.ExtraData == nil {
			p.ExtraData = make(map[string]any, len(pd.ExtraData))
		}
		for k, v := range pd.ExtraData {
			if _, ok := p.ExtraData[k]; !ok {
				p.ExtraData[k] = v
			}
		}
	}
}

func fillString(dst *string, src string) {
	if *dst == "" {
		*dst = src
	}
}

func appendUnique(dst []string, src ...string) []string {
	for _, s := range src {
		found := false
		for _, d := range dst {
			if d == s {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, s)
		}
	}
	return dst
}
