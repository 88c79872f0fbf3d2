package rpm

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntry struct {
	tag      int32
	typ      int32
	strs     []string // one element for typeString, many for typeStringArray
	isArray  bool
}

// buildHeaderBlock assembles one RPM header block (8-byte magic/version
// prefix, index table, data store) from a list of string-typed entries,
// which is all ExtractPackages ever reads in these tests.
func buildHeaderBlock(entries []fakeEntry) []byte {
	var data []byte
	type idx struct{ tag, typ, offset, count int32 }
	var idxs []idx
	for _, e := range entries {
		offset := int32(len(data))
		for _, s := range e.strs {
			data = append(data, []byte(s)...)
			data = append(data, 0)
		}
		count := int32(1)
		if e.isArray {
			count = int32(len(e.strs))
		}
		idxs = append(idxs, idx{e.tag, e.typ, offset, count})
	}

	buf := make([]byte, 8)
	buf[0], buf[1], buf[2] = 0x8e, 0xad, 0xe8
	buf[3] = 1
	nindex := make([]byte, 4)
	binary.BigEndian.PutUint32(nindex, uint32(len(idxs)))
	hsize := make([]byte, 4)
	binary.BigEndian.PutUint32(hsize, uint32(len(data)))
	buf = append(buf, nindex...)
	buf = append(buf, hsize...)

	for _, i := range idxs {
		entry := make([]byte, 16)
		binary.BigEndian.PutUint32(entry[0:4], uint32(i.tag))
		binary.BigEndian.PutUint32(entry[4:8], uint32(i.typ))
		binary.BigEndian.PutUint32(entry[8:12], uint32(i.offset))
		binary.BigEndian.PutUint32(entry[12:16], uint32(i.count))
		buf = append(buf, entry...)
	}
	buf = append(buf, data...)
	return buf
}

func pad8(b []byte) []byte {
	if r := len(b) % 8; r != 0 {
		b = append(b, make([]byte, 8-r)...)
	}
	return b
}

func buildFakeRPM(mainEntries []fakeEntry) []byte {
	lead := make([]byte, headerMagicLeadLen)
	sig := pad8(buildHeaderBlock(nil))
	main := buildHeaderBlock(mainEntries)

	var out []byte
	out = append(out, lead...)
	out = append(out, sig...)
	out = append(out, main...)
	return out
}

func TestArchiveParserExtractsHeaderFields(t *testing.T) {
	raw := buildFakeRPM([]fakeEntry{
		{tag: tagName, typ: typeString, strs: []string{"httpd"}},
		{tag: tagVersion, typ: typeString, strs: []string{"2.4.57"}},
		{tag: tagRelease, typ: typeString, strs: []string{"1.el9"}},
		{tag: tagSummary, typ: typeString, strs: []string{"Apache HTTP Server"}},
		{tag: tagLicense, typ: typeString, strs: []string{"ASL 2.0"}},
		{tag: tagURL, typ: typeString, strs: []string{"https://httpd.apache.org/"}},
		{tag: tagArch, typ: typeString, strs: []string{"x86_64"}},
		{tag: tagRequireName, typ: typeStringArray, isArray: true, strs: []string{
			"glibc", "/bin/sh", "rpmlib(CompressedFileNames)",
		}},
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "httpd-2.4.57-1.el9.x86_64.rpm")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	pds := archiveParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	pd := pds[0]
	assert.Equal(t, "httpd", pd.Name)
	assert.Equal(t, "2.4.57", pd.Version)
	assert.Equal(t, "Apache HTTP Server", pd.Description)
	assert.Equal(t, "ASL 2.0", pd.DeclaredLicenseExpression)
	assert.Equal(t, "pkg:rpm/httpd@2.4.57-1.el9?arch=x86_64", pd.Purl)

	require.Len(t, pd.Dependencies, 1)
	assert.Equal(t, "pkg:rpm/glibc", pd.Dependencies[0].Purl)
}

func TestArchiveParserUnreadableArchiveStillReturnsRecord(t *testing.T) {
	pds := archiveParser{}.ExtractPackages(filepath.Join(t.TempDir(), "missing.rpm"))
	require.Len(t, pds, 1)
	assert.Empty(t, pds[0].Name)
	assert.Equal(t, "rpm", pds[0].PackageType)
}

func TestArchiveParserTruncatedArchiveStillReturnsRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "truncated.rpm")
	require.NoError(t, os.WriteFile(path, make([]byte, 10), 0o644))

	pds := archiveParser{}.ExtractPackages(path)
	require.Len(t, pds, 1)
	assert.Empty(t, pds[0].Name)
}
