package rfc822

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeadersAndBody(t *testing.T) {
	text := "Name: widget\n" +
		"Version: 1.0\n" +
		"Description: a widget\n" +
		" that does things\n" +
		"\n" +
		"This is the long\n" +
		"description body.\n"

	h, body := ParseHeadersAndBody(text)

	name, ok := First(h, "Name")
	require.True(t, ok)
	assert.Equal(t, "widget", name)

	desc, ok := First(h, "description")
	require.True(t, ok)
	assert.Equal(t, "a widget that does things", desc)

	assert.Equal(t, "This is the long\ndescription body.", body)
}

func TestParseHeadersAndBodyDropsEmptyValues(t *testing.T) {
	h, _ := ParseHeadersAndBody("Name: widget\nEmpty:   \n\n")
	_, ok := First(h, "Empty")
	assert.False(t, ok)
}

func TestParseHeadersAndBodyDuplicateKeys(t *testing.T) {
	h, _ := ParseHeadersAndBody("Key: one\nKey: two\n\n")
	all := All(h, "key")
	assert.Equal(t, []string{"one", "two"}, all)
}

func TestParseParagraphs(t *testing.T) {
	text := "Source: widget\n" +
		"Maintainer: A <a@example.com>\n" +
		"\n" +
		"Package: widget-bin\n" +
		"Description: does things\n" +
		" .\n" +
		" second paragraph of the description\n"

	paras := ParseParagraphs(text)
	require.Len(t, paras, 2)

	src, ok := First(paras[0], "Source")
	require.True(t, ok)
	assert.Equal(t, "widget", src)

	desc, ok := First(paras[1], "Description")
	require.True(t, ok)
	assert.Contains(t, desc, "\n .\n")
}

func TestParseParagraphsNoTrailingBlank(t *testing.T) {
	paras := ParseParagraphs("Package: a\nVersion: 1\n")
	require.Len(t, paras, 1)
	v, ok := First(paras[0], "version")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}
