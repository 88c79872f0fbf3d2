// Package rpm extracts PackageData from RPM package archives by reading
// the lead, signature header, and main header directly, the same binary
// layout claircore's own RPM tooling (internal/rpm, rpm/rpmfmt.go) targets,
// without shelling out to rpm(8) or linking librpm.
package rpm

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/parser"
	"github.com/quay/packagedcode/purl"
)

func init() {
	parser.Register(parser.Registration{
		Description:      "built RPM package archive",
		PathPatterns:     []string{"**/*.rpm"},
		PackageType:      "rpm",
		PrimaryLanguage:  "",
		DocumentationURL: "https://rpm-software-management.github.io/rpm/manual/format.html",
		Parser:           archiveParser{},
	})
}

// RPM general header tag numbers, per the public RPM tag list (mirrored in
// claircore's rpm/sqlite/rpm_tag.go as an unexported enum).
const (
	tagName        = 1000
	tagVersion     = 1001
	tagRelease     = 1002
	tagEpoch       = 1003
	tagSummary     = 1004
	tagLicense     = 1014
	tagURL         = 1020
	tagArch        = 1022
	tagSourceRPM   = 1044
	tagProvideName = 1047
	tagRequireName = 1049
)

const (
	typeChar        = 1
	typeInt8        = 2
	typeInt16       = 3
	typeInt32       = 4
	typeInt64       = 5
	typeString      = 6
	typeBin         = 7
	typeStringArray = 8
	typeI18NString  = 9
)

const headerMagicLeadLen = 96

type headerEntry struct {
	Tag, Type, Offset, Count int32
}

type rpmHeader struct {
	strings map[int32]string
	arrays  map[int32][]string
	ints    map[int32]int64
}

type archiveParser struct{}

func (archiveParser) IsMatch(path string) bool { return true }

func (archiveParser) ExtractPackages(path string) []*packagedcode.PackageData {
	ctx := zlog.ContextWithValues(context.Background(), "component", "packagedcode/rpm")
	const datasourceID = "rpm_archive"

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("unreadable rpm archive")
		return []*packagedcode.PackageData{packagedcode.Default("rpm", datasourceID)}
	}

	pd := packagedcode.Default("rpm", datasourceID)

	hdr, err := readMainHeader(raw)
	if err != nil {
		zlog.Warn(ctx).Err(err).Str("path", path).Msg("could not read rpm header")
		return []*packagedcode.PackageData{pd}
	}

	pd.Name = hdr.strings[tagName]
	release := hdr.strings[tagRelease]
	version := hdr.strings[tagVersion]
	if epoch, ok := hdr.ints[tagEpoch]; ok && epoch > 0 {
		version = fmt.Sprintf("%d:%s", epoch, version)
	}
	pd.Version = version
	pd.Description = hdr.strings[tagSummary]
	pd.HomepageURL = hdr.strings[tagURL]
	pd.DeclaredLicenseExpression = hdr.strings[tagLicense]
	if src := hdr.strings[tagSourceRPM]; src != "" {
		pd.SourcePackages = []string{src}
	}

	arch := hdr.strings[tagArch]
	var qualifiers map[string]string
	if arch != "" {
		qualifiers = map[string]string{"arch": arch}
	}
	if pd.Name != "" {
		pd.Purl = purl.Build("rpm", "", pd.Name, version+"-"+release, qualifiers, "")
	}

	for _, req := range hdr.arrays[tagRequireName] {
		if req == "" || strings.HasPrefix(req, "/") || strings.HasPrefix(req, "rpmlib(") {
			continue
		}
		pd.Dependencies = append(pd.Dependencies, packagedcode.Dependency{
			Purl:      purl.Build("rpm", "", req, "", nil, ""),
			Scope:     packagedcode.ScopeDependencies,
			IsRuntime: true,
			IsDirect:  true,
		})
	}

	return []*packagedcode.PackageData{pd}
}

// readMainHeader walks past the 96-byte lead, skips the signature header
// (tag/data region, padded to an 8-byte boundary), then decodes the main
// header's index + data store.
func readMainHeader(raw []byte) (*rpmHeader, error) {
	if len(raw) < headerMagicLeadLen+16 {
		return nil, fmt.Errorf("rpm: archive too short")
	}
	off := headerMagicLeadLen

	sigEnd, err := headerExtent(raw, off)
	if err != nil {
		return nil, fmt.Errorf("rpm: signature header: %w", err)
	}
	off = sigEnd
	if pad := off % 8; pad != 0 {
		off += 8 - pad
	}

	return decodeHeader(raw, off)
}

// headerExtent returns the byte offset just past one header block (8-byte
// magic/reserved prefix, index table, data store) starting at off.
func headerExtent(raw []byte, off int) (int, error) {
	if off+16 > len(raw) {
		return 0, fmt.Errorf("truncated header prefix")
	}
	if raw[off] != 0x8e || raw[off+1] != 0xad || raw[off+2] != 0xe8 {
		return 0, fmt.Errorf("bad header magic")
	}
	nindex := int(binary.BigEndian.Uint32(raw[off+8 : off+12]))
	hsize := int(binary.BigEndian.Uint32(raw[off+12 : off+16]))
	end := off + 16 + nindex*16 + hsize
	if end > len(raw) {
		return 0, fmt.Errorf("header extends past archive")
	}
	return end, nil
}

func decodeHeader(raw []byte, off int) (*rpmHeader, error) {
	if off+16 > len(raw) {
		return nil, fmt.Errorf("truncated header prefix")
	}
	if raw[off] != 0x8e || raw[off+1] != 0xad || raw[off+2] != 0xe8 {
		return nil, fmt.Errorf("bad header magic")
	}
	nindex := int(binary.BigEndian.Uint32(raw[off+8 : off+12]))
	indexStart := off + 16
	dataStart := indexStart + nindex*16

	h := &rpmHeader{strings: map[int32]string{}, arrays: map[int32][]string{}, ints: map[int32]int64{}}
	for i := 0; i < nindex; i++ {
		entryOff := indexStart + i*16
		if entryOff+16 > len(raw) {
			break
		}
		e := headerEntry{
			Tag:    int32(binary.BigEndian.Uint32(raw[entryOff : entryOff+4])),
			Type:   int32(binary.BigEndian.Uint32(raw[entryOff+4 : entryOff+8])),
			Offset: int32(binary.BigEndian.Uint32(raw[entryOff+8 : entryOff+12])),
			Count:  int32(binary.BigEndian.Uint32(raw[entryOff+12 : entryOff+16])),
		}
		dataOff := dataStart + int(e.Offset)
		if dataOff < 0 || dataOff > len(raw) {
			continue
		}
		switch e.Type {
		case typeString, typeI18NString:
			h.strings[e.Tag] = readCString(raw, dataOff)
		case typeStringArray:
			h.arrays[e.Tag] = readCStringArray(raw, dataOff, int(e.Count))
		case typeInt8:
			if dataOff < len(raw) {
				h.ints[e.Tag] = int64(raw[dataOff])
			}
		case typeInt16:
			if dataOff+2 <= len(raw) {
				h.ints[e.Tag] = int64(binary.BigEndian.Uint16(raw[dataOff : dataOff+2]))
			}
		case typeInt32:
			if dataOff+4 <= len(raw) {
				h.ints[e.Tag] = int64(binary.BigEndian.Uint32(raw[dataOff : dataOff+4]))
			}
		case typeInt64:
			if dataOff+8 <= len(raw) {
				h.ints[e.Tag] = int64(binary.BigEndian.Uint64(raw[dataOff : dataOff+8]))
			}
		}
	}
	return h, nil
}

func readCString(raw []byte, off int) string {
	end := off
	for end < len(raw) && raw[end] != 0 {
		end++
	}
	return string(raw[off:end])
}

func readCStringArray(raw []byte, off, count int) []string {
	out := make([]string, 0, count)
	for i := 0; i < count && off < len(raw); i++ {
		s := readCString(raw, off)
		out = append(out, s)
		off += len(s) + 1
	}
	return out
}
