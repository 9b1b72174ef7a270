package xl

// Style is the complete formatting of a cell. It is a comparable value:
// two cells whose styles are equal share one entry in the styles part.
type Style struct {
	Font       Font
	Border     Border
	Fill       Fill
	Format     string // number format code ("" = General)
	Horizontal HorizontalAlign
	Vertical   VerticalAlign
}

// normalized fills in defaults so that structurally identical formatting
// collapses to the same style table entry.
func (s Style) normalized() Style {
	s.Font = s.Font.normalized()
	if s.Format == "" {
		s.Format = FormatGeneral
	}
	return s
}

// Border is a set of cell edges that get a thin border.
type Border uint8

const (
	BorderNone   Border = 0
	BorderTop    Border = 1 << 0
	BorderRight  Border = 1 << 1
	BorderBottom Border = 1 << 2
	BorderLeft   Border = 1 << 3
	BorderAll           = BorderTop | BorderRight | BorderBottom | BorderLeft
)

func (b Border) Has(edge Border) bool {
	return b&edge == edge
}

type HorizontalAlign int

const (
	HAlignNone HorizontalAlign = iota
	HAlignGeneral
	HAlignLeft
	HAlignCenter
	HAlignRight
	HAlignJustify
)

func (h HorizontalAlign) xmlValue() (string, error) {
	switch h {
	case HAlignGeneral:
		return "general", nil
	case HAlignLeft:
		return "left", nil
	case HAlignCenter:
		return "center", nil
	case HAlignRight:
		return "right", nil
	case HAlignJustify:
		return "justify", nil
	}
	return "", unsupported("horizontal alignment", int(h))
}

type VerticalAlign int

const (
	VAlignNone VerticalAlign = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
	VAlignJustify
)

func (v VerticalAlign) xmlValue() (string, error) {
	switch v {
	case VAlignTop:
		return "top", nil
	case VAlignMiddle:
		return "center", nil
	case VAlignBottom:
		return "bottom", nil
	case VAlignJustify:
		return "justify", nil
	}
	return "", unsupported("vertical alignment", int(v))
}

// Built-in number format codes.
const (
	FormatGeneral                = "General"
	FormatNumberNoDecimalPlaces  = "0"
	FormatNumberTwoDecimalPlaces = "0.00"
	FormatPercentNoDecimalPlaces = "0%"
	FormatPercentTwoDecimal      = "0.00%"
	FormatText                   = "@"
	FormatDate                   = "mm-dd-yy"
	FormatDateAndTime            = "m/d/yy h:mm"
)

// builtInFormats maps format codes to the ids Excel reserves for them. Any
// other code is written to the numFmts table with an id of 164 or above.
var builtInFormats = map[string]int{
	"General":                  0,
	"0":                        1,
	"0.00":                     2,
	"#,##0":                    3,
	"#,##0.00":                 4,
	"0%":                       9,
	"0.00%":                    10,
	"0.00E+00":                 11,
	"# ?/?":                    12,
	"# ??/??":                  13,
	"mm-dd-yy":                 14,
	"d-mmm-yy":                 15,
	"d-mmm":                    16,
	"mmm-yy":                   17,
	"h:mm AM/PM":               18,
	"h:mm:ss AM/PM":            19,
	"h:mm":                     20,
	"h:mm:ss":                  21,
	"m/d/yy h:mm":              22,
	"#,##0 ;(#,##0)":           37,
	"#,##0 ;[Red](#,##0)":      38,
	"#,##0.00;(#,##0.00)":      39,
	"#,##0.00;[Red](#,##0.00)": 40,
	"mm:ss":                    45,
	"[h]:mm:ss":                46,
	"mmss.0":                   47,
	"##0.0E+0":                 48,
	"@":                        49,
}

const customFormatBase = 164
