package xl

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) xmlValue() (string, error) {
	switch o {
	case Portrait:
		return "portrait", nil
	case Landscape:
		return "landscape", nil
	}
	return "", unsupported("orientation", int(o))
}

// PageSetup holds the print settings of a sheet.
type PageSetup struct {
	PrintRepeatRows    int // number of top rows repeated on every printed page
	PrintRepeatColumns int // number of left columns repeated on every printed page
	Orientation        Orientation
}

// PageBreak is a row or column break. ID is the index of the first row or
// column after the break.
type PageBreak struct {
	ID           int
	Manual       bool
	Min          int
	Max          int
	PivotCreated bool
}
