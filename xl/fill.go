package xl

// Fill is a pattern fill. A zero Fill means no fill.
type Fill struct {
	Pattern         PatternType
	PatternColor    Color // fgColor
	BackgroundColor Color // bgColor
}

// SetBackground sets the background color and switches an unset pattern to
// solid, since that is what a caller setting a color almost always wants.
func (f *Fill) SetBackground(c Color) {
	f.BackgroundColor = c
	if f.Pattern == PatternNone && !c.IsZero() {
		f.Pattern = PatternSolid
	}
}

func (f Fill) IsZero() bool {
	return f == Fill{}
}

type PatternType int

const (
	PatternNone PatternType = iota
	PatternSolid
	PatternGray750
	PatternGray500
	PatternGray250
	PatternGray125
	PatternGray0625
	PatternHorizontalStripe
	PatternVerticalStripe
	PatternReverseDiagonalStripe
	PatternDiagonalStripe
	PatternDiagonalCrosshatch
	PatternThickDiagonalCrosshatch
	PatternThinHorizontalStripe
	PatternThinVerticalStripe
	PatternThinReverseDiagonalStripe
	PatternThinDiagonalStripe
	PatternThinHorizontalCrosshatch
	PatternThinDiagonalCrosshatch
)

var patternNames = [...]string{
	PatternNone:                      "none",
	PatternSolid:                     "solid",
	PatternGray750:                   "darkGray",
	PatternGray500:                   "mediumGray",
	PatternGray250:                   "lightGray",
	PatternGray125:                   "gray125",
	PatternGray0625:                  "gray0625",
	PatternHorizontalStripe:          "darkHorizontal",
	PatternVerticalStripe:            "darkVertical",
	PatternReverseDiagonalStripe:     "darkDown",
	PatternDiagonalStripe:            "darkUp",
	PatternDiagonalCrosshatch:        "darkGrid",
	PatternThickDiagonalCrosshatch:   "darkTrellis",
	PatternThinHorizontalStripe:      "lightHorizontal",
	PatternThinVerticalStripe:        "lightVertical",
	PatternThinReverseDiagonalStripe: "lightDown",
	PatternThinDiagonalStripe:        "lightUp",
	PatternThinHorizontalCrosshatch:  "lightGrid",
	PatternThinDiagonalCrosshatch:    "lightTrellis",
}

func (p PatternType) xmlValue() (string, error) {
	if p < 0 || int(p) >= len(patternNames) {
		return "", unsupported("pattern type", int(p))
	}
	return patternNames[p], nil
}
