package refine

import "strings"

// RefineCopyright cleans up a raw detected copyright string: collapsing
// whitespace, dropping unbalanced brackets and boilerplate suffixes, and
// folding duplicate "Copyright Copyright"-style markup artifacts. It
// returns ok=false if nothing usable survives.
func RefineCopyright(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	c := normalizeWhitespace(s)
	c = stripSomePunct(c)
	c = stripSoloQuotes(c)
	c = strings.Trim(c, "/ ~")
	c = stripAllUnbalancedParens(c)
	c = removeSomeExtraWordsAndPunct(c)
	c = normalizeWhitespace(c)
	c = removeDupeCopyrightWords(c)
	c = stripPrefixWords(c, set("by", "c"))
	c = strings.TrimSpace(c)
	c = strings.Trim(c, "+")
	c = stripBalancedEdgeParens(c)
	c = stripSuffixWords(c, copyrightSuffixes)
	c = stripTrailingPeriod(c)
	c = strings.Trim(c, "'")
	c = stripTrailingURLSlash(c)
	c = truncateLongWords(c)
	c = strings.TrimSpace(c)
	if c == "" {
		return "", false
	}
	return c, true
}

// RefineHolder cleans up a raw detected holder name, stripping the verbs
// and "all rights reserved" boilerplate that wrap it, and rejects the
// result if it's a known junk phrase.
func RefineHolder(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	prefixes := holderPrefixes
	if strings.Contains(strings.ToLower(s), "reserved") {
		prefixes = holderPrefixesWithAll
	}

	h := strings.ReplaceAll(s, "build.year", " ")

	if sp := strings.IndexByte(h, ' '); sp >= 0 {
		prefix := h[:sp]
		if prefix != "" && isDateLikePrefix(prefix) {
			h = h[sp+1:]
		}
	}

	h = removeSomeExtraWordsAndPunct(h)
	h = strings.Trim(h, "/ ~")
	h = refineNames(h, prefixes)
	h = stripSuffixWords(h, holderSuffixes)
	h = strings.Trim(h, "/ ~")
	h = stripSoloQuotes(h)
	h = strings.ReplaceAll(h, "( ", " ")
	h = strings.ReplaceAll(h, " )", " ")
	h = strings.Trim(h, "+- ")
	h = stripTrailingPeriod(h)
	h = strings.Trim(h, "+- ")
	h = removeDupeHolder(h)
	h = normalizeWhitespace(h)
	h = stripTrailingURL(h)
	h = strings.Trim(h, ", ")
	h = normalizeWhitespace(h)
	h = truncateLongWords(h)
	h = strings.TrimSpace(h)

	if h == "" || holderJunk[strings.ToLower(h)] || isJunkHolder(h) {
		return "", false
	}
	return h, true
}

// RefineAuthor cleans up a raw detected author name the same way
// RefineHolder does, using the author-specific prefix and junk lists.
func RefineAuthor(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	a := removeSomeExtraWordsAndPunct(s)
	a = refineNames(a, authorPrefixes)
	a = strings.TrimSpace(a)
	a = stripTrailingPeriod(a)
	a = strings.TrimSpace(a)
	a = stripBalancedEdgeParens(a)
	a = strings.TrimSpace(a)
	a = stripSoloQuotes(a)
	a = refineNames(a, authorPrefixes)
	a = strings.TrimSpace(a)
	a = strings.Trim(a, "+-")

	if a == "" || authorJunk[strings.ToLower(a)] || strings.HasPrefix(a, authorJunkPrefix) || isJunkAuthor(a) {
		return "", false
	}
	return a, true
}

// refineNames applies the shared name-cleanup steps used by both
// RefineHolder and RefineAuthor: punctuation and leading-number stripping,
// unbalanced-paren removal, and prefix-word stripping.
func refineNames(s string, prefixes map[string]bool) string {
	r := stripSomePunct(s)
	r = stripLeadingNumbers(r)
	r = stripAllUnbalancedParens(r)
	r = stripSomePunct(r)
	r = strings.TrimSpace(r)
	r = stripBalancedEdgeParens(r)
	r = strings.TrimSpace(r)
	r = stripPrefixWords(r, prefixes)
	r = stripSomePunct(r)
	return strings.TrimSpace(r)
}

func isDateLikePrefix(s string) bool {
	for _, r := range s {
		if !(r >= '0' && r <= '9') && r != '-' && r != '/' {
			return false
		}
	}
	return true
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var copyrightWordReplacer = strings.NewReplacer(
	"SPDX-FileCopyrightText", "Copyright",
	"SPDX-SnippetCopyrightText", "Copyright",
	"Bundle-Copyright", "Copyright",
	"AssemblyCopyright", "Copyright",
	"AppCopyright", "Copyright",
	"Cppyright", "Copyright",
	"cppyright", "Copyright",
	"BCopyright", "Copyright",
	"ECopyright", "Copyright",
	"FCopyright", "Copyright",
	"JCopyright", "Copyright",
	"MCopyright", "Copyright",
	"mCopyright", "Copyright",
	"rCopyright", "Copyright",
	"VCopyright", "Copyright",
	"JCOPYRIGHT", "Copyright",
	"COPYRIGHT Copyright", "Copyright",
	"Copyright Copyright", "Copyright",
	"Copyright copyright", "Copyright",
	"copyright copyright", "Copyright",
	"copyright Copyright", "Copyright",
	"copyright'Copyright", "Copyright",
	`copyright"Copyright`, "Copyright",
	"copyright' Copyright", "Copyright",
	`copyright" Copyright`, "Copyright",
	"Copyright @copyright", "Copyright",
	"copyright @copyright", "Copyright",
	"(c) opyrighted", "Copyright (c)",
	"(c) opyrights", "Copyright (c)",
	"(c) opyright", "Copyright (c)",
	"(c) opyleft", "Copyleft (c)",
	"(c) opylefted", "Copyleft (c)",
	"copyright'", "Copyright",
	"and later", " ",
	"build.year", " ",
)

// removeDupeCopyrightWords folds markup-artifact duplicates like
// "Copyright Copyright" and OCR/binary mangling like "Cppyright" back to
// the single canonical word "Copyright".
func removeDupeCopyrightWords(c string) string {
	return copyrightWordReplacer.Replace(c)
}

var extraWordsReplacer = strings.NewReplacer(
	"<p>", " ",
	"<a href", " ",
	"date-of-software", " ",
	"date-of-document", " ",
	" $ ", " ",
	" ? ", " ",
	"</a>", " ",
	"</p>", " ",
	"( )", " ",
	"()", " ",
	"__", " ",
	"--", "-",
	".com'", ".com",
	".org'", ".org",
	".net'", ".net",
	"mailto:", "",
	"@see", "",
)

// removeSomeExtraWordsAndPunct drops a grab bag of markup leftovers and
// trailing "as represented by" attributions.
func removeSomeExtraWordsAndPunct(c string) string {
	c = extraWordsReplacer.Replace(c)
	if idx := strings.Index(c, "as represented by"); idx >= 0 && strings.HasSuffix(c, "as represented by") {
		c = c[:idx]
	}
	return strings.TrimSpace(c)
}

func stripPrefixWords(s string, prefixes map[string]bool) string {
	words := strings.Fields(s)
	i := 0
	for i < len(words) && prefixes[strings.ToLower(words[i])] {
		i++
	}
	return strings.Join(words[i:], " ")
}

func stripSuffixWords(s string, suffixes map[string]bool) string {
	words := strings.Fields(s)
	n := len(words)
	for n > 0 && suffixes[strings.ToLower(words[n-1])] {
		n--
	}
	return strings.Join(words[:n], " ")
}

// stripTrailingPeriod removes a single trailing '.', except where it's
// part of an acronym (U.S.A.), an initialed surname (e.V.), or a company
// suffix (Inc., Corp., Ltd., ...).
func stripTrailingPeriod(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !strings.HasSuffix(s, ".") || len(s) < 3 {
		return s
	}

	isSingleWord := len(strings.Fields(s)) == 1
	n := len(s)

	if isUpper(s[n-2]) && !isSingleWord {
		return s
	}
	if n >= 3 && s[n-3] == '.' {
		return s
	}

	lower := strings.ToLower(s)
	for _, suf := range []string{"inc.", "corp.", "ltd.", "llc.", "co.", "llp."} {
		if strings.HasSuffix(lower, suf) {
			return s
		}
	}

	return strings.TrimSuffix(s, ".")
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func stripLeadingNumbers(s string) string {
	words := strings.Fields(s)
	i := 0
	for i < len(words) && isAllDigits(words[i]) {
		i++
	}
	return strings.Join(words[i:], " ")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func stripSomePunct(s string) string {
	if s == "" {
		return s
	}
	s = strings.Trim(s, `,'"}{-_:;&@!`)
	s = strings.TrimLeft(s, `.>)]\/`)
	s = strings.TrimRight(s, `<([\/`)
	return s
}

// stripUnbalancedParens replaces every unmatched occurrence of open/close
// with a space, leaving correctly nested pairs untouched.
func stripUnbalancedParens(s string, open, close rune) string {
	if !strings.ContainsRune(s, open) && !strings.ContainsRune(s, close) {
		return s
	}

	runes := []rune(s)
	var stack []int
	unbalanced := make(map[int]bool)

	for i, r := range runes {
		switch r {
		case open:
			stack = append(stack, i)
		case close:
			if len(stack) == 0 {
				unbalanced[i] = true
			} else {
				stack = stack[:len(stack)-1]
			}
		}
	}
	for _, i := range stack {
		unbalanced[i] = true
	}
	if len(unbalanced) == 0 {
		return s
	}

	out := make([]rune, len(runes))
	copy(out, runes)
	for i := range unbalanced {
		out[i] = ' '
	}
	return string(out)
}

func stripAllUnbalancedParens(s string) string {
	s = stripUnbalancedParens(s, '(', ')')
	s = stripUnbalancedParens(s, '<', '>')
	s = stripUnbalancedParens(s, '[', ']')
	s = stripUnbalancedParens(s, '{', '}')
	return s
}

// stripBalancedEdgeParens removes a single matching pair of brackets that
// wraps the whole string, e.g. "(Jane Doe)" -> "Jane Doe".
func stripBalancedEdgeParens(s string) string {
	pairs := map[byte]byte{'(': ')', '[': ']', '{': '}'}
	for {
		if len(s) < 2 {
			return s
		}
		closeCh, ok := pairs[s[0]]
		if !ok || s[len(s)-1] != closeCh {
			return s
		}
		inner := s[1 : len(s)-1]
		depth := 0
		wraps := true
		for i := 0; i < len(inner); i++ {
			switch inner[i] {
			case s[0]:
				depth++
			case closeCh:
				depth--
				if depth < 0 {
					wraps = false
				}
			}
		}
		if !wraps || depth != 0 {
			return s
		}
		s = strings.TrimSpace(inner)
	}
}

var soloQuoteReplacer = strings.NewReplacer(
	"/'", "/",
	")'", ")",
	":'", ":",
	"':", ":",
	"',", ",",
)

func stripSoloQuotes(s string) string {
	return soloQuoteReplacer.Replace(s)
}

func stripTrailingURL(s string) string {
	idx := strings.Index(s, "http://")
	if idx < 0 {
		idx = strings.Index(s, "https://")
	}
	if idx < 0 {
		return s
	}
	before := strings.TrimRight(s[:idx], ", ;")
	if before == "" {
		return s
	}
	return before
}

func stripTrailingURLSlash(s string) string {
	if strings.HasSuffix(s, "/") && (strings.Contains(s, "http://") || strings.Contains(s, "https://")) {
		return strings.TrimSuffix(s, "/")
	}
	return s
}

func removeDupeHolder(h string) string {
	return strings.ReplaceAll(h, "the Initial Developer the Initial Developer", "the Initial Developer")
}

// truncateLongWords drops a trailing word (and everything after it) once
// it exceeds 80 characters -- garbled binary data picked up by a greedy
// detector, not a name.
func truncateLongWords(s string) string {
	words := strings.Fields(s)
	out := words[:0:0]
	for _, w := range words {
		if len(w) > 80 {
			break
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}
