// Package refine normalizes and cleans up raw copyright, holder, and author
// text captured by a manifest or notice-file parser before it's attached to
// a PackageData. The pipeline mirrors the battle-tested ScanCode Toolkit
// rules: decode the dozen ways source trees spell the copyright symbol,
// strip HTML/markup leakage, and filter out the boilerplate phrases that
// parsers mistake for a holder name.
package refine

import (
	"regexp"
	"strings"
)

var (
	printfFormatRe      = regexp.MustCompile(` [#%][a-zA-Z] `)
	punctuationRe       = regexp.MustCompile(`[*#"%\[\]{}` + "`" + `]+`)
	consecutiveQuotesRe = regexp.MustCompile(`'{2,}`)
	weirdCommentRe      = regexp.MustCompile(`(?i)^(@?rem|dnl)\s+`)
	manCommentRe        = regexp.MustCompile(`\."`)
	htmlTagRe           = regexp.MustCompile(`<[^>@]+>`)
	cssMeasurementRe    = regexp.MustCompile(`\b\d+pt\b`)
	mailtoRe            = regexp.MustCompile(`mailto:\S+`)

	// htmlTagMalformedRe covers the common HTML5 elements without requiring
	// a closing '>', so truncated tags like "<b " or "</a " still strip.
	htmlTagMalformedRe = regexp.MustCompile(`(?i)<\s*/?\s*(?:a|abbr|address|area|article|aside|audio|b|base|bdi|bdo|blockquote|body|br|button|canvas|caption|cite|code|col|colgroup|data|datalist|dd|del|details|dfn|dialog|div|dl|dt|em|embed|fieldset|figcaption|figure|font|footer|form|h[1-6]|head|header|hgroup|hr|html|i|iframe|img|input|ins|kbd|label|legend|li|link|main|map|mark|menu|meta|meter|nav|noscript|object|ol|optgroup|option|output|p|param|picture|pre|progress|q|rp|rt|ruby|s|samp|script|section|select|slot|small|source|span|strong|style|sub|summary|sup|table|tbody|td|template|textarea|tfoot|th|thead|time|title|tr|track|u|ul|var|video|wbr)\b\s*/?\s*>?`)

	// htmlAttrRe strips attribute tokens ("href=...") that leak into text
	// once the surrounding tag has already been stripped.
	htmlAttrRe = regexp.MustCompile(`(?i)\b(?:href|class|width|style|xmlns|xml|lang|type|rel|src|alt|id|name|action|method|target|value|placeholder)=\S*`)
)

var copySignReplacer = strings.NewReplacer(
	"|copy|", " (c) ",
	"|", " ",
	`"Copyright`, `" Copyright`,
	"( C)", " (c) ",
	"(C)", " (c) ",
	"(c)", " (c) ",
	"( © )", " (c) ",
	"(©)", " (c) ",
	"(© )", " (c) ",
	"( ©)", " (c) ",
	"©", " (c) ",
	"&copy;", " (c) ",
	"&copy", " (c) ",
	"&#169;", " (c) ",
	"&#xa9;", " (c) ",
	"&#xA9;", " (c) ",
	"&#Xa9;", " (c) ",
	"&#XA9;", " (c) ",
	"u00A9", " (c) ",
	"u00a9", " (c) ",
	`\XA9`, " (c) ",
	`\A9`, " (c) ",
	`\a9`, " (c) ",
	"<A9>", " (c) ",
	"XA9;", " (c) ",
	"Xa9;", " (c) ",
	"xA9;", " (c) ",
	"xa9;", " (c) ",
	"Â", "",
	`\xc2`, "",
)

var htmlEntityReplacer = strings.NewReplacer(
	"–", "-",
	"&#13;&#10;", " ",
	"&#13;", " ",
	"&#10;", " ",
	"&ensp;", " ",
	"&emsp;", " ",
	"&thinsp;", " ",
	"&quot;", `"`,
	"&#34;", `"`,
	"&amp;", "&",
	"&#38;", "&",
	"&gt;", ">",
	"&gt", ">",
	"&#62;", ">",
	"&lt;", "<",
	"&lt", "<",
	"&#60;", "<",
)

var quoteNormalizeReplacer = strings.NewReplacer(
	"`", "'",
	`"`, "'",
	" u'", " '",
	"§", " ",
	"<http", " http",
	"<insert ", " ",
	"year>", " ",
	"<year>", " ",
	"<name>", " ",
)

var escapeReplacer = strings.NewReplacer(
	`\t`, " ",
	`\n`, " ",
	`\r`, " ",
	`\0`, " ",
	`\`, " ",
	"('", " ",
	"')", " ",
	"],", " ",
)

var debianMarkupReplacer = strings.NewReplacer(
	"</s>", "",
	"<s>", "",
	"<s/>", "",
)

// PrepareTextLine normalizes a raw text line before copyright or author
// detection runs on it: copyright-symbol variants collapse to "(c)", HTML
// entities and tags are decoded or stripped (preserving any tag whose text
// mentions copyright/author/legal), comment markers and escape sequences
// are removed, and whitespace is collapsed to single spaces.
func PrepareTextLine(line string) string {
	s := line

	s = strings.ReplaceAll(s, `\\ co`, " ")
	s = strings.ReplaceAll(s, `\ co`, " ")
	s = strings.ReplaceAll(s, "(co ", " ")

	s = printfFormatRe.ReplaceAllString(s, " ")
	s = weirdCommentRe.ReplaceAllString(s, " ")
	s = manCommentRe.ReplaceAllString(s, " ")

	s = strings.ReplaceAll(s, "/*", " ")
	s = strings.ReplaceAll(s, "*/", " ")

	s = copySignReplacer.Replace(s)
	s = htmlEntityReplacer.Replace(s)

	s = strings.Map(func(r rune) rune {
		switch r {
		case '*', '#', '%':
			return ' '
		}
		return r
	}, s)
	s = strings.Trim(s, ` \/*#%;`)

	s = quoteNormalizeReplacer.Replace(s)
	s = consecutiveQuotesRe.ReplaceAllString(s, "'")
	s = escapeReplacer.Replace(s)
	s = debianMarkupReplacer.Replace(s)

	s = replaceTagsPreservingCopyright(s, htmlTagRe)
	s = replaceTagsPreservingCopyright(s, htmlTagMalformedRe)

	s = htmlAttrRe.ReplaceAllString(s, " ")
	s = mailtoRe.ReplaceAllString(s, " ")
	s = cssMeasurementRe.ReplaceAllString(s, " ")
	s = punctuationRe.ReplaceAllString(s, " ")

	s = strings.ReplaceAll(s, " , ", ", ")
	s = strings.ReplaceAll(s, ">", "> ")
	s = strings.ReplaceAll(s, "<", " <")

	s = strings.Trim(s, " *")

	return strings.Join(strings.Fields(s), " ")
}

// replaceTagsPreservingCopyright blanks out every match of re, except a
// match whose text mentions copyright, author, or legal -- those carry
// signal the detector still needs.
func replaceTagsPreservingCopyright(text string, re *regexp.Regexp) string {
	return re.ReplaceAllStringFunc(text, func(m string) string {
		lower := strings.ToLower(m)
		if strings.Contains(lower, "copyright") || strings.Contains(lower, "author") || strings.Contains(lower, "legal") {
			return m
		}
		return " "
	})
}
