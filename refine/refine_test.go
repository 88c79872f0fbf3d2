package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripSomePunctBasic(t *testing.T) {
	assert.Equal(t, "Acme", stripSomePunct("'Acme'"))
}

func TestStripSomePunctLeadingDot(t *testing.T) {
	assert.Equal(t, "Acme", stripSomePunct(".Acme"))
}

func TestStripSomePunctTrailingParen(t *testing.T) {
	assert.Equal(t, "Acme", stripSomePunct("Acme)"))
}

func TestStripSomePunctEmpty(t *testing.T) {
	assert.Equal(t, "", stripSomePunct(""))
}

func TestStripTrailingPeriodNormal(t *testing.T) {
	assert.Equal(t, "Acme", stripTrailingPeriod("Acme."))
}

func TestStripTrailingPeriodInc(t *testing.T) {
	assert.Equal(t, "Acme Inc.", stripTrailingPeriod("Acme Inc."))
}

func TestStripTrailingPeriodLtd(t *testing.T) {
	assert.Equal(t, "Acme Ltd.", stripTrailingPeriod("Acme Ltd."))
}

func TestStripTrailingPeriodAcronym(t *testing.T) {
	assert.Equal(t, "U.S.A.", stripTrailingPeriod("U.S.A."))
}

func TestStripTrailingPeriodNoPeriod(t *testing.T) {
	assert.Equal(t, "Acme", stripTrailingPeriod("Acme"))
}

func TestStripTrailingPeriodEmpty(t *testing.T) {
	assert.Equal(t, "", stripTrailingPeriod(""))
}

func TestStripLeadingNumbersBasic(t *testing.T) {
	assert.Equal(t, "Acme Corp", stripLeadingNumbers("2024 Acme Corp"))
}

func TestStripLeadingNumbersNoNumbers(t *testing.T) {
	assert.Equal(t, "Acme Corp", stripLeadingNumbers("Acme Corp"))
}

func TestStripLeadingNumbersAllNumbers(t *testing.T) {
	assert.Equal(t, "", stripLeadingNumbers("2024 2025"))
}

func TestStripPrefixWordsBasic(t *testing.T) {
	assert.Equal(t, "Acme Corp", stripPrefixWords("by Acme Corp", set("by")))
}

func TestStripSuffixWordsBasic(t *testing.T) {
	assert.Equal(t, "Acme Corp", stripSuffixWords("Acme Corp all rights reserved", holderSuffixes))
}

func TestStripUnbalancedParensBalanced(t *testing.T) {
	assert.Equal(t, "(Acme Corp)", stripAllUnbalancedParens("(Acme Corp)"))
}

func TestStripUnbalancedParensUnbalancedClose(t *testing.T) {
	got := stripAllUnbalancedParens("Acme Corp)")
	assert.NotContains(t, got, ")")
}

func TestStripUnbalancedParensLoneOpen(t *testing.T) {
	got := stripAllUnbalancedParens("(Acme Corp")
	assert.NotContains(t, got, "(")
}

func TestStripBalancedEdgeParensWraps(t *testing.T) {
	assert.Equal(t, "Jane Doe", stripBalancedEdgeParens("(Jane Doe)"))
}

func TestStripBalancedEdgeParensNoWrap(t *testing.T) {
	assert.Equal(t, "(Jane) and (Doe)", stripBalancedEdgeParens("(Jane) and (Doe)"))
}

func TestRemoveDupeCopyrightWordsSPDX(t *testing.T) {
	assert.Equal(t, "Copyright 2024 Acme", removeDupeCopyrightWords("SPDX-FileCopyrightText 2024 Acme"))
}

func TestRemoveDupeCopyrightWordsDoubleCopyright(t *testing.T) {
	assert.Equal(t, "Copyright 2024 Acme", removeDupeCopyrightWords("Copyright Copyright 2024 Acme"))
}

func TestRemoveDupeCopyrightWordsCppyright(t *testing.T) {
	assert.Equal(t, "Copyright 2024 Acme", removeDupeCopyrightWords("Cppyright 2024 Acme"))
}

func TestRemoveSomeExtraWordsHTML(t *testing.T) {
	got := removeSomeExtraWordsAndPunct("Copyright 2024 <p>Acme</p>")
	assert.NotContains(t, got, "<p>")
	assert.NotContains(t, got, "</p>")
}

func TestRemoveSomeExtraWordsMailto(t *testing.T) {
	got := removeSomeExtraWordsAndPunct("Jane Doe mailto:jane@example.com")
	assert.NotContains(t, got, "mailto:")
}

func TestIsJunkCopyrightBareC(t *testing.T) {
	assert.True(t, IsJunkCopyright("(c)"))
}

func TestIsJunkCopyrightNormal(t *testing.T) {
	assert.False(t, IsJunkCopyright("Copyright 2024 Jane Doe"))
}

func TestIsJunkCopyrightHolderOrSimply(t *testing.T) {
	assert.True(t, IsJunkCopyright("copyright holder or simply whatever"))
}

func TestRefineCopyrightBasic(t *testing.T) {
	got, ok := RefineCopyright("Copyright (c) 2024 Jane Doe, all rights reserved.")
	require.True(t, ok)
	assert.Contains(t, got, "Jane Doe")
}

func TestRefineCopyrightEmpty(t *testing.T) {
	_, ok := RefineCopyright("")
	assert.False(t, ok)
}

func TestRefineCopyrightStripsJunkPrefix(t *testing.T) {
	got, ok := RefineCopyright("by Jane Doe")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", got)
}

func TestRefineCopyrightURLTrailingSlash(t *testing.T) {
	got, ok := RefineCopyright("FSF http://fsf.org/")
	require.True(t, ok)
	assert.Equal(t, "FSF http://fsf.org", got)
}

func TestRefineHolderBasic(t *testing.T) {
	got, ok := RefineHolder("Jane Doe")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", got)
}

func TestRefineHolderEmpty(t *testing.T) {
	_, ok := RefineHolder("")
	assert.False(t, ok)
}

func TestRefineHolderJunk(t *testing.T) {
	_, ok := RefineHolder("the")
	assert.False(t, ok)
}

func TestRefineHolderStripsPrefix(t *testing.T) {
	got, ok := RefineHolder("holders Jane Doe")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", got)
}

func TestRefineHolderStripsTrailingPeriod(t *testing.T) {
	got, ok := RefineHolder("Jane Doe.")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", got)
}

func TestRefineAuthorBasic(t *testing.T) {
	got, ok := RefineAuthor("Jane Doe")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", got)
}

func TestRefineAuthorEmpty(t *testing.T) {
	_, ok := RefineAuthor("")
	assert.False(t, ok)
}

func TestRefineAuthorJunk(t *testing.T) {
	_, ok := RefineAuthor("company")
	assert.False(t, ok)
}

func TestRefineAuthorStripsAuthorPrefix(t *testing.T) {
	got, ok := RefineAuthor("author Jane Doe")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", got)
}

func TestRefineAuthorJunkPrefix(t *testing.T) {
	_, ok := RefineAuthor("httpProxySomething")
	assert.False(t, ok)
}

func TestStripAllUnbalancedParensMixed(t *testing.T) {
	got := stripAllUnbalancedParens("Jane (Doe] Corp")
	assert.NotContains(t, got, "(")
	assert.NotContains(t, got, "]")
}

func TestRefineCopyrightIdempotent(t *testing.T) {
	s := "Copyright (c) 2024 Jane Doe, all rights reserved."
	once, ok := RefineCopyright(s)
	require.True(t, ok)
	twice, ok2 := RefineCopyright(once)
	require.True(t, ok2)
	assert.Equal(t, once, twice)
}
