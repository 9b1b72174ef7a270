package xl

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/adnsv/srw/xml"
)

// indexed is an insertion-ordered set of comparable values. The first
// occurrence of a value fixes its index.
type indexed[T comparable] struct {
	items []T
	index map[T]int
}

func newIndexed[T comparable](seed ...T) *indexed[T] {
	t := &indexed[T]{index: map[T]int{}}
	for _, v := range seed {
		t.add(v)
	}
	return t
}

func (t *indexed[T]) add(v T) int {
	if i, ok := t.index[v]; ok {
		return i
	}
	i := len(t.items)
	t.items = append(t.items, v)
	t.index[v] = i
	return i
}

func (t *indexed[T]) lookup(v T) (int, bool) {
	i, ok := t.index[v]
	return i, ok
}

// styleTable collects the distinct cell styles of a workbook. Style i of the
// table is written as cellXfs entry i+1; entry 0 is the built-in default
// used by cells without an explicit style.
type styleTable struct {
	styles  *indexed[Style]
	fonts   *indexed[Font]
	fills   *indexed[Fill]
	borders *indexed[Border]
	formats *indexed[string] // custom number formats only
}

func newStyleTable() *styleTable {
	return &styleTable{
		styles:  newIndexed[Style](),
		fonts:   newIndexed(Font{}.normalized()),
		fills:   newIndexed(Fill{}, Fill{Pattern: PatternGray125}),
		borders: newIndexed(BorderNone),
		formats: newIndexed[string](),
	}
}

// add registers the style of a cell and returns its cellXfs index.
func (st *styleTable) add(s Style) int {
	s = s.normalized()
	st.fonts.add(s.Font)
	st.fills.add(s.Fill)
	st.borders.add(s.Border)
	if _, builtin := builtInFormats[s.Format]; !builtin {
		st.formats.add(s.Format)
	}
	return st.styles.add(s) + 1
}

// index returns the cellXfs index of a style previously passed to add, or 0.
func (st *styleTable) index(s Style) int {
	if i, ok := st.styles.lookup(s.normalized()); ok {
		return i + 1
	}
	return 0
}

func (st *styleTable) numFmtID(format string) int {
	if id, ok := builtInFormats[format]; ok {
		return id
	}
	i, _ := st.formats.lookup(format)
	return customFormatBase + i
}

func (st *styleTable) marshal() ([]byte, error) {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("styleSheet")
	x.Attr("xmlns", nsMain)

	if len(st.formats.items) > 0 {
		x.OTag("+numFmts").Attr("count", len(st.formats.items))
		for i, f := range st.formats.items {
			x.OTag("+numFmt")
			x.Attr("numFmtId", customFormatBase+i)
			x.Attr("formatCode", f)
			x.CTag()
		}
		x.CTag()
	}

	x.OTag("+fonts").Attr("count", len(st.fonts.items))
	for _, f := range st.fonts.items {
		if !f.Underline.valid() {
			return nil, fmt.Errorf("%w: underline %q", ErrUnsupportedStyleValue, f.Underline)
		}
		x.OTag("+font")
		if f.Bold {
			x.OTag("+b").CTag()
		}
		if f.Italic {
			x.OTag("+i").CTag()
		}
		if f.Strikethrough {
			x.OTag("+strike").CTag()
		}
		if f.Underline != UnderlineNone {
			x.OTag("+u")
			if f.Underline != UnderlineSingle {
				x.Attr("val", string(f.Underline))
			}
			x.CTag()
		}
		x.OTag("+sz").Attr("val", strconv.FormatFloat(f.Size, 'f', -1, 64)).CTag()
		if f.Color.IsZero() {
			x.OTag("+color").Attr("theme", 1).CTag()
		} else {
			x.OTag("+color").Attr("rgb", f.Color.String()).CTag()
		}
		x.OTag("+name").Attr("val", f.Name).CTag()
		x.OTag("+family").Attr("val", 2).CTag()
		x.CTag()
	}
	x.CTag()

	x.OTag("+fills").Attr("count", len(st.fills.items))
	for _, f := range st.fills.items {
		pt, err := f.Pattern.xmlValue()
		if err != nil {
			return nil, err
		}
		x.OTag("+fill")
		x.OTag("+patternFill").Attr("patternType", pt)
		fg := f.PatternColor
		if fg.IsZero() && f.Pattern == PatternSolid {
			// a solid fill is painted with the foreground color
			fg = f.BackgroundColor
		}
		if !fg.IsZero() {
			x.OTag("+fgColor").Attr("rgb", fg.String()).CTag()
		}
		if !f.BackgroundColor.IsZero() {
			x.OTag("+bgColor").Attr("rgb", f.BackgroundColor.String()).CTag()
		}
		x.CTag()
		x.CTag()
	}
	x.CTag()

	x.OTag("+borders").Attr("count", len(st.borders.items))
	for _, b := range st.borders.items {
		x.OTag("+border")
		x.OTag("+left")
		writeBorderEdge(x, b.Has(BorderLeft))
		x.CTag()
		x.OTag("+right")
		writeBorderEdge(x, b.Has(BorderRight))
		x.CTag()
		x.OTag("+top")
		writeBorderEdge(x, b.Has(BorderTop))
		x.CTag()
		x.OTag("+bottom")
		writeBorderEdge(x, b.Has(BorderBottom))
		x.CTag()
		x.OTag("+diagonal").CTag()
		x.CTag()
	}
	x.CTag()

	x.OTag("+cellStyleXfs").Attr("count", 1)
	x.OTag("+xf").Attr("numFmtId", 0).Attr("fontId", 0).Attr("fillId", 0).Attr("borderId", 0).CTag()
	x.CTag()

	x.OTag("+cellXfs").Attr("count", len(st.styles.items)+1)
	// default xf, keeps structural rows from looking broken
	x.OTag("+xf").Attr("numFmtId", 0).Attr("fontId", 0).Attr("fillId", 0).Attr("borderId", 0).Attr("xfId", 0).CTag()
	for _, s := range st.styles.items {
		fontID, _ := st.fonts.lookup(s.Font)
		fillID, _ := st.fills.lookup(s.Fill)
		borderID, _ := st.borders.lookup(s.Border)

		x.OTag("+xf")
		x.Attr("numFmtId", st.numFmtID(s.Format))
		x.Attr("fontId", fontID)
		x.Attr("fillId", fillID)
		x.Attr("borderId", borderID)
		x.Attr("xfId", 0)
		x.Attr("applyNumberFormat", 1)
		if fontID != 0 {
			x.Attr("applyFont", 1)
		}
		if fillID != 0 {
			x.Attr("applyFill", 1)
		}
		if borderID != 0 {
			x.Attr("applyBorder", 1)
		}
		if s.Horizontal != HAlignNone || s.Vertical != VAlignNone {
			x.Attr("applyAlignment", 1)
			x.OTag("+alignment")
			if s.Horizontal != HAlignNone {
				h, err := s.Horizontal.xmlValue()
				if err != nil {
					return nil, err
				}
				x.Attr("horizontal", h)
			}
			if s.Vertical != VAlignNone {
				v, err := s.Vertical.xmlValue()
				if err != nil {
					return nil, err
				}
				x.Attr("vertical", v)
			}
			x.CTag()
		}
		x.CTag()
	}
	x.CTag()

	x.OTag("+cellStyles").Attr("count", 1)
	x.OTag("+cellStyle").Attr("name", "Normal").Attr("xfId", 0).Attr("builtinId", 0).CTag()
	x.CTag()

	x.CTag()
	return bb.Bytes(), nil
}

func writeBorderEdge(x *xml.Writer, on bool) {
	if on {
		x.Attr("style", "thin")
		x.OTag("+color").Attr("auto", 1).CTag()
	}
}
