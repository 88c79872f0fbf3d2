// Package rfc822 reads the Key: Value header blocks used by Debian control
// files, dpkg status files, and Python PKG-INFO/METADATA files.
//
// There are two entry points rather than one conditional because the two
// shapes diverge in a way that matters: Python METADATA has a free-text
// body after the first blank line, while Debian-style files have no body at
// all and instead treat every blank line as the start of a new paragraph,
// using a " ." continuation line to represent a literal blank line inside a
// multi-line field value.
package rfc822

import (
	"strings"
)

// Headers maps a lower-cased header name to every value seen for it, in
// the order they appeared.
type Headers map[string][]string

// First returns the first, trimmed value for key, or "", false if key
// wasn't present.
func First(h Headers, key string) (string, bool) {
	vs := h[strings.ToLower(key)]
	if len(vs) == 0 {
		return "", false
	}
	return strings.TrimSpace(vs[0]), true
}

// All returns every non-empty, trimmed value recorded for key.
func All(h Headers, key string) []string {
	vs := h[strings.ToLower(key)]
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ParseHeadersAndBody scans text line by line. A line starting with a
// space or tab is a continuation of the previous header's value, joined
// with a single space. The first blank line ends the headers; everything
// after it (with trailing newlines stripped) is the body. Headers whose
// value is empty or all-whitespace are dropped. Keys are lower-cased;
// duplicate keys accumulate in Headers in the order seen.
func ParseHeadersAndBody(text string) (Headers, string) {
	headers := Headers{}
	lines := splitLines(text)

	var lastKey string
	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			break
		}
		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && lastKey != "" {
			cont := strings.TrimSpace(line)
			if cont != "" {
				addHeader(headers, lastKey, joinContinuation(headers, lastKey, cont))
			}
			continue
		}
		key, val, ok := splitHeaderLine(line)
		if !ok {
			continue
		}
		lastKey = key
		if strings.TrimSpace(val) == "" {
			// Recorded, but will be dropped below if it never gains a
			// continuation; placeholder lets the continuation case above
			// find lastKey.
			addHeader(headers, key, "")
			continue
		}
		addHeader(headers, key, val)
	}

	body := strings.Join(lines[min(i, len(lines)):], "\n")
	body = strings.TrimRight(body, "\n")

	dropEmpty(headers)
	return headers, body
}

// ParseParagraphs splits text on blank lines; each paragraph is parsed as
// a headers-only block (no body concept). Continuation lines within a
// paragraph are appended with a newline rather than a space, preserving a
// literal " .\n" marker so downstream code (Debian's blank-line-in-a-field
// convention) can still find it.
func ParseParagraphs(text string) []Headers {
	var out []Headers
	lines := splitLines(text)

	cur := Headers{}
	var lastKey string
	flush := func() {
		dropEmpty(cur)
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = Headers{}
		lastKey = ""
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && lastKey != "" {
			cont := strings.TrimRight(line, "\r")
			vs := cur[lastKey]
			if len(vs) == 0 {
				continue
			}
			vs[len(vs)-1] = vs[len(vs)-1] + "\n" + cont
			cur[lastKey] = vs
			continue
		}
		key, val, ok := splitHeaderLine(line)
		if !ok {
			continue
		}
		lastKey = key
		cur[key] = append(cur[key], val)
	}
	flush()
	return out
}

func splitHeaderLine(line string) (key, val string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(line[:idx]))
	if key == "" {
		return "", "", false
	}
	val = strings.TrimSpace(line[idx+1:])
	return key, val, true
}

func addHeader(h Headers, key, val string) {
	h[key] = append(h[key], val)
}

// joinContinuation joins a continuation line onto the most recently added
// value for key with a single space.
func joinContinuation(h Headers, key, cont string) string {
	vs := h[key]
	if len(vs) == 0 {
		return cont
	}
	last := vs[len(vs)-1]
	h[key] = vs[:len(vs)-1]
	if last == "" {
		return cont
	}
	return last + " " + cont
}

func dropEmpty(h Headers) {
	for k, vs := range h {
		kept := vs[:0]
		for _, v := range vs {
			if strings.TrimSpace(v) != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			delete(h, k)
		} else {
			h[k] = kept
		}
	}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
