package packagedcode

// PackageData is the record a single parser emits from a single input
// file. It's immutable once parsed: the assembler never mutates a
// PackageData, it only reads from one to build or update a Package.
type PackageData struct {
	// PackageType is the short ecosystem tag, e.g. "npm", "cargo", "deb".
	PackageType string `json:"package_type,omitempty"`
	// DatasourceID names the parser that produced this record, e.g.
	// "npm_package_json", "cargo_lock". Every PackageData has one.
	DatasourceID string `json:"datasource_id"`
	Purl         string `json:"purl,omitempty"`

	Namespace       string            `json:"namespace,omitempty"`
	Name            string            `json:"name,omitempty"`
	Version         string            `json:"version,omitempty"`
	Qualifiers      map[string]string `json:"qualifiers,omitempty"`
	Subpath         string            `json:"subpath,omitempty"`
	PrimaryLanguage string            `json:"primary_language,omitempty"`

	Description             string `json:"description,omitempty"`
	ReleaseDate             string `json:"release_date,omitempty"`
	HomepageURL             string `json:"homepage_url,omitempty"`
	DownloadURL             string `json:"download_url,omitempty"`
	VCSUrl                  string `json:"vcs_url,omitempty"`
	CodeViewURL             string `json:"code_view_url,omitempty"`
	BugTrackingURL          string `json:"bug_tracking_url,omitempty"`
	APIDataURL              string `json:"api_data_url,omitempty"`
	RepositoryHomepageURL   string `json:"repository_homepage_url,omitempty"`
	RepositoryDownloadURL   string `json:"repository_download_url,omitempty"`

	Parties  []Party  `json:"parties,omitempty"`
	Keywords []string `json:"keywords,omitempty"`

	SHA1   string `json:"sha1,omitempty"`
	MD5    string `json:"md5,omitempty"`
	SHA256 string `json:"sha256,omitempty"`
	SHA512 string `json:"sha512,omitempty"`
	Size   int64  `json:"size,omitempty"`

	DeclaredLicenseExpression     string `json:"declared_license_expression,omitempty"`
	DeclaredLicenseExpressionSPDX string `json:"declared_license_expression_spdx,omitempty"`
	LicenseDetections             []any  `json:"license_detections,omitempty"`
	OtherLicenseExpression        string `json:"other_license_expression,omitempty"`
	OtherLicenseExpressionSPDX    string `json:"other_license_expression_spdx,omitempty"`
	ExtractedLicenseStatement     string `json:"extracted_license_statement,omitempty"`
	NoticeText                    string `json:"notice_text,omitempty"`
	Copyright                     string `json:"copyright,omitempty"`
	Holder                        string `json:"holder,omitempty"`

	SourcePackages []string         `json:"source_packages,omitempty"`
	FileReferences []FileReference  `json:"file_references,omitempty"`
	Dependencies   []Dependency     `json:"dependencies,omitempty"`

	IsPrivate bool           `json:"is_private,omitempty"`
	IsVirtual bool           `json:"is_virtual,omitempty"`
	ExtraData map[string]any `json:"extra_data,omitempty"`
}

// Default returns the minimal PackageData a parser emits on read or parse
// failure: just enough to identify which parser ran. Parsers must never
// panic; this is what extract_first_package falls back to.
func Default(packageType, datasourceID string) *PackageData {
	return &PackageData{PackageType: packageType, DatasourceID: datasourceID}
}

// First returns data[0], or a Default record carrying only packageType and
// datasourceID if data is empty. This mirrors extract_first_package: every
// parser that only ever wants a single record from a file funnels through
// here so empty-input handling is centralized.
func First(data []*PackageData, packageType, datasourceID string) *PackageData {
	if len(data) > 0 {
		return data[0]
	}
	return Default(packageType, datasourceID)
}
