package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareTextLineCopyrightSymbolUpperC(t *testing.T) {
	got := PrepareTextLine("(C) 2024 Acme")
	assert.Contains(t, got, "(c)")
	assert.Contains(t, got, "2024")
}

func TestPrepareTextLineCopyrightSymbolLowerC(t *testing.T) {
	assert.Contains(t, PrepareTextLine("(c) 2024 Acme"), "(c)")
}

func TestPrepareTextLineCopyrightSymbolSpaced(t *testing.T) {
	assert.Contains(t, PrepareTextLine("( C) 2024 Acme"), "(c)")
}

func TestPrepareTextLineCopyrightSymbolUnicode(t *testing.T) {
	assert.Contains(t, PrepareTextLine("© 2024 Acme"), "(c)")
}

func TestPrepareTextLineHTMLEntityNamed(t *testing.T) {
	assert.Contains(t, PrepareTextLine("&copy; 2024 Acme"), "(c)")
}

func TestPrepareTextLineHTMLEntityNumeric(t *testing.T) {
	assert.Contains(t, PrepareTextLine("&#169; 2024 Acme"), "(c)")
}

func TestPrepareTextLineHTMLEntityHex(t *testing.T) {
	assert.Contains(t, PrepareTextLine("&#xA9; 2024 Acme"), "(c)")
}

func TestPrepareTextLineCopyWithoutSemicolon(t *testing.T) {
	assert.Contains(t, PrepareTextLine("&copy 2024 Acme"), "(c)")
}

func TestPrepareTextLineRSTCopy(t *testing.T) {
	assert.Contains(t, PrepareTextLine("|copy| 2024 Acme"), "(c)")
}

func TestPrepareTextLineStripsHTMLTagButKeepsCopyright(t *testing.T) {
	got := PrepareTextLine("<span>Copyright 2024 Acme</span>")
	assert.Contains(t, got, "Copyright")
	assert.Contains(t, got, "Acme")
}

func TestPrepareTextLineStripsUnrelatedHTMLTag(t *testing.T) {
	got := PrepareTextLine("<div>Copyright 2024 Acme</div>")
	assert.NotContains(t, got, "<div>")
	assert.NotContains(t, got, "</div>")
}

func TestPrepareTextLineIdempotent(t *testing.T) {
	s := "Copyright (C) 2024 <b>Acme</b> &amp; Co. <http://acme.example>"
	once := PrepareTextLine(s)
	twice := PrepareTextLine(once)
	assert.Equal(t, once, twice)
}

func TestPrepareTextLineCollapsesWhitespace(t *testing.T) {
	got := PrepareTextLine("Copyright   2024    Acme")
	assert.Equal(t, "Copyright 2024 Acme", got)
}

func TestPrepareTextLineStripsMailto(t *testing.T) {
	got := PrepareTextLine("Copyright 2024 Jane Doe mailto:jane@example.com")
	assert.NotContains(t, got, "mailto:")
}
