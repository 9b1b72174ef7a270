package xl

import (
	"bytes"
	"strings"

	"github.com/adnsv/srw/xml"
)

// sharedStrings is the workbook-wide string pool. Strings are keyed on their
// raw value; sanitizing happens only when the XML is written, so strings
// that differ only in stripped characters keep separate entries.
type sharedStrings struct {
	strings []string
	index   map[string]int // 0-based index into strings
	count   int            // total number of uses
}

func newSharedStrings() *sharedStrings {
	return &sharedStrings{index: map[string]int{}}
}

// Intern returns the index of s, adding it on first use.
func (ss *sharedStrings) Intern(s string) int {
	ss.count++
	if i, ok := ss.index[s]; ok {
		return i
	}
	i := len(ss.strings)
	ss.strings = append(ss.strings, s)
	ss.index[s] = i
	return i
}

func (ss *sharedStrings) Count() int {
	return ss.count
}

func (ss *sharedStrings) UniqueCount() int {
	return len(ss.strings)
}

func (ss *sharedStrings) marshal() []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("sst")
	x.Attr("xmlns", nsMain)
	x.Attr("count", ss.count)
	x.Attr("uniqueCount", len(ss.strings))

	for _, s := range ss.strings {
		s = sanitizeText(s)
		x.OTag("+si")
		x.OTag("t")
		if s != strings.TrimSpace(s) {
			x.Attr("xml:space", "preserve")
		}
		x.String(s)
		x.CTag()
		x.CTag()
	}

	x.CTag()
	return bb.Bytes()
}

// sanitizeText removes the control characters XML 1.0 can not carry. Other
// characters, including '&' and '<', are escaped by the XML writer.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, s)
}
