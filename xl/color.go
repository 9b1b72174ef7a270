package xl

import "fmt"

// Color is an ARGB color. The zero value means "not set" and is never
// emitted; use Transparent for a fully transparent color.
type Color struct {
	A, R, G, B uint8
}

func FromArgb(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

func FromRgb(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c == Color{}
}

// String returns the AARRGGBB hex form used by SpreadsheetML.
func (c Color) String() string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

var (
	Black       = FromRgb(0, 0, 0)
	White       = FromRgb(255, 255, 255)
	Red         = FromRgb(255, 0, 0)
	Green       = FromRgb(0, 128, 0)
	Blue        = FromRgb(0, 0, 255)
	Yellow      = FromRgb(255, 255, 0)
	Orange      = FromRgb(255, 165, 0)
	Purple      = FromRgb(128, 0, 128)
	Gray        = FromRgb(128, 128, 128)
	LightGray   = FromRgb(211, 211, 211)
	DarkGray    = FromRgb(169, 169, 169)
	LightBlue   = FromRgb(173, 216, 230)
	LightGreen  = FromRgb(144, 238, 144)
	LightYellow = FromRgb(255, 255, 224)
	DarkBlue    = FromRgb(0, 0, 139)
	DarkRed     = FromRgb(139, 0, 0)
	DarkGreen   = FromRgb(0, 100, 0)
	Navy        = FromRgb(0, 0, 128)
	Teal        = FromRgb(0, 128, 128)
	Silver      = FromRgb(192, 192, 192)
	Transparent = FromArgb(0, 255, 255, 255)
)
