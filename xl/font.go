package xl

// Font represents font formatting properties for cell content.
// These properties correspond to the OpenXML font element as defined in ECMA-376.
type Font struct {
	Name          string        // Font family name ("" = use default of Calibri)
	Size          float64       // Font size in points (0 = use default of 11)
	Bold          bool          // Bold text
	Italic        bool          // Italic text
	Underline     UnderlineType // Underline style
	Strikethrough bool          // Strikethrough text
	Color         Color         // Text color (zero = automatic)
}

const (
	DefaultFontName = "Calibri"
	DefaultFontSize = 11
)

// UnderlineType represents the type of underline formatting.
type UnderlineType string

// Underline type constants as defined in ECMA-376 (ST_UnderlineValues).
const (
	UnderlineNone             UnderlineType = ""                 // No underline (default)
	UnderlineSingle           UnderlineType = "single"           // Single underline
	UnderlineDouble           UnderlineType = "double"           // Double underline
	UnderlineSingleAccounting UnderlineType = "singleAccounting" // Single accounting underline
	UnderlineDoubleAccounting UnderlineType = "doubleAccounting" // Double accounting underline
)

// IsDefault returns true if the font uses all default properties.
func (f *Font) IsDefault() bool {
	return f.normalized() == Font{Name: DefaultFontName, Size: DefaultFontSize}
}

// normalized fills in the defaults so that an unset name or size compares
// equal to the explicit default.
func (f Font) normalized() Font {
	if f.Name == "" {
		f.Name = DefaultFontName
	}
	if f.Size <= 0 {
		f.Size = DefaultFontSize
	}
	return f
}

func (u UnderlineType) valid() bool {
	switch u {
	case UnderlineNone, UnderlineSingle, UnderlineDouble,
		UnderlineSingleAccounting, UnderlineDoubleAccounting:
		return true
	}
	return false
}
