// Package pep508 parses Python requirement strings as described in PEP 508:
// "name[extra1,extra2] <specifiers>; <marker>" or "name @ <url>; <marker>".
// It's used by the requirements.txt and METADATA parsers.
package pep508

import (
	"regexp"
	"strings"
)

// Requirement is one parsed PEP 508 requirement line.
type Requirement struct {
	Name         string
	Extras       []string
	Specifier    string // comma-joined version specifiers, e.g. ">=1.0,<2.0"
	URL          string
	Marker       string
	IsNameAtURL  bool
}

var (
	nameRe      = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)`)
	extrasRe    = regexp.MustCompile(`^\s*\[([^\]]*)\]`)
	atURLRe     = regexp.MustCompile(`^\s*@\s*(\S+)`)
	specifierRe = regexp.MustCompile(`^[~!=<>]=?|^===`)
)

// Parse parses a single requirement line. It returns ok=false if the line
// doesn't start with a recognizable distribution name (e.g. it's blank, a
// comment, or a bare "-r other.txt" include directive -- callers handle
// those before reaching here).
func Parse(line string) (Requirement, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Requirement{}, false
	}

	var req Requirement
	var marker string
	if idx := splitUnquoted(line, ';'); idx >= 0 {
		marker = strings.TrimSpace(line[idx+1:])
		line = strings.TrimSpace(line[:idx])
	}
	req.Marker = marker

	m := nameRe.FindStringIndex(line)
	if m == nil {
		return Requirement{}, false
	}
	req.Name = line[m[0]:m[1]]
	rest := line[m[1]:]

	if em := extrasRe.FindStringSubmatch(rest); em != nil {
		for _, e := range strings.Split(em[1], ",") {
			e = strings.TrimSpace(e)
			if e != "" {
				req.Extras = append(req.Extras, e)
			}
		}
		rest = rest[len(em[0]):]
	}

	rest = strings.TrimSpace(rest)
	if um := atURLRe.FindStringSubmatch(rest); um != nil {
		req.URL = um[1]
		req.IsNameAtURL = true
		return req, true
	}

	req.Specifier = parseSpecifiers(rest)
	return req, true
}

// parseSpecifiers joins a comma-separated run of version specifiers
// ("<op><version>") back into a normalized, comma-joined string. Anything
// that doesn't look like a specifier clause is ignored rather than
// rejecting the whole line -- parsers must tolerate malformed input.
func parseSpecifiers(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "()")
	if s == "" {
		return ""
	}
	var clauses []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if specifierRe.MatchString(part) {
			clauses = append(clauses, part)
		}
	}
	return strings.Join(clauses, ",")
}

// splitUnquoted finds the index of the first occurrence of sep that isn't
// inside a quoted marker string, or -1.
func splitUnquoted(s string, sep byte) int {
	inQuote := byte(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote != 0:
			if c == inQuote {
				inQuote = 0
			}
		case c == '\'' || c == '"':
			inQuote = c
		case c == sep:
			return i
		}
	}
	return -1
}
