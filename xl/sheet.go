package xl

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LargeNumberHandling decides how numbers that Excel can not display
// exactly (more than 11 digits) are written.
type LargeNumberHandling int

const (
	// StoreAsText writes large numbers as right-aligned text and suppresses
	// the "number stored as text" warning for them. This is the default.
	StoreAsText LargeNumberHandling = iota
	// None writes numbers as-is; Excel may truncate their display.
	None
)

const MaxSheetNameLength = 31

// InvalidSheetNameChars lists the characters Excel rejects in sheet names.
const InvalidSheetNameChars = ":\\/?*[]"

type Sheet struct {
	Cells        *Cells
	ColumnWidths map[int]float64 // zero-based column -> width in Excel units
	PageSetup    PageSetup

	LargeNumberHandling LargeNumberHandling
	AutoFilter          bool

	name      string
	views     []*SheetView
	rowBreaks []PageBreak
	colBreaks []PageBreak
}

// NewSheet creates a detached sheet; add it to a workbook with Workbook.Add.
func NewSheet(name string) (*Sheet, error) {
	if err := validateSheetName(name); err != nil {
		return nil, err
	}
	return &Sheet{
		name:         name,
		Cells:        newCells(),
		ColumnWidths: map[int]float64{},
	}, nil
}

func (s *Sheet) Name() string {
	return s.name
}

// Cell returns the cell at an A1-style reference, creating it if needed.
func (s *Sheet) Cell(ref string) (*Cell, error) {
	addr, err := ParseCellAddress(ref)
	if err != nil {
		return nil, err
	}
	return s.Cells.GetOrInsert(addr)
}

// CellAt returns the cell at a zero-based position, creating it if needed.
func (s *Sheet) CellAt(row, col int) (*Cell, error) {
	return s.Cells.GetOrInsert(CellAddress{Row: row, Column: col})
}

// Set stores c at an A1-style reference.
func (s *Sheet) Set(ref string, c *Cell) error {
	addr, err := ParseCellAddress(ref)
	if err != nil {
		return err
	}
	return s.Cells.Set(addr, c)
}

// SetAt stores c at a zero-based position.
func (s *Sheet) SetAt(row, col int, c *Cell) error {
	return s.Cells.Set(CellAddress{Row: row, Column: col}, c)
}

// SetColumnWidth sets the width of a zero-based column; a width of zero or
// less removes the override.
func (s *Sheet) SetColumnWidth(col int, w float64) {
	if col < 0 {
		return
	}
	if w <= 0.0 {
		delete(s.ColumnWidths, col)
	} else {
		s.ColumnWidths[col] = w
	}
}

// AddSheetView appends a view. Most callers want one of the Freeze methods.
func (s *Sheet) AddSheetView(sv *SheetView) {
	s.views = append(s.views, sv)
}

func (s *Sheet) SheetViews() []*SheetView {
	return s.views
}

// FreezeTopRow keeps the first row visible while scrolling.
func (s *Sheet) FreezeTopRow() error {
	return s.FreezeTopLeft(1, 0)
}

// FreezeLeftColumn keeps the first column visible while scrolling.
func (s *Sheet) FreezeLeftColumn() error {
	return s.FreezeTopLeft(0, 1)
}

// FreezeTopLeft freezes the given number of top rows and left columns. At
// least one of them must be positive, and a sheet can be frozen only once.
func (s *Sheet) FreezeTopLeft(rows, columns int) error {
	if rows < 0 {
		return fmt.Errorf("%w: rows must not be negative, got %d", ErrOutOfRange, rows)
	}
	if columns < 0 {
		return fmt.Errorf("%w: columns must not be negative, got %d", ErrOutOfRange, columns)
	}
	if rows == 0 && columns == 0 {
		return fmt.Errorf("%w: nothing to freeze", ErrOutOfRange)
	}
	if s.frozen() {
		return fmt.Errorf("%w: sheet %q", ErrPanesAlreadyFrozen, s.name)
	}

	active := PaneBottomRight
	switch {
	case rows > 0 && columns == 0:
		active = PaneBottomLeft
	case rows == 0 && columns > 0:
		active = PaneTopRight
	}
	state := PaneFrozen

	pane := &Pane{
		ActivePane:  &active,
		State:       &state,
		TopLeftCell: RowColToReference(rows, columns),
	}
	if columns > 0 {
		pane.XSplit = &columns
	}
	if rows > 0 {
		pane.YSplit = &rows
	}

	sv := &SheetView{Pane: pane}
	if err := sv.AddSelection(Selection{ActivePane: active}, false); err != nil {
		return err
	}
	s.AddSheetView(sv)
	return nil
}

func (s *Sheet) frozen() bool {
	for _, sv := range s.views {
		p := sv.Pane
		if p != nil && p.State != nil && (*p.State == PaneFrozen || *p.State == PaneFrozenSplit) {
			return true
		}
	}
	return false
}

// InsertManualPageBreakAfterRow starts a new printed page after the given
// zero-based row.
func (s *Sheet) InsertManualPageBreakAfterRow(row int) error {
	if row < 0 {
		return fmt.Errorf("%w: row must not be negative, got %d", ErrOutOfRange, row)
	}
	s.rowBreaks = append(s.rowBreaks, PageBreak{ID: row + 1, Manual: true, Max: maxColumnIndex})
	return nil
}

// InsertManualPageBreakAfterColumn starts a new printed page after the given
// zero-based column.
func (s *Sheet) InsertManualPageBreakAfterColumn(col int) error {
	if col < 0 {
		return fmt.Errorf("%w: column must not be negative, got %d", ErrOutOfRange, col)
	}
	s.colBreaks = append(s.colBreaks, PageBreak{ID: col + 1, Manual: true, Max: maxRowIndex})
	return nil
}

// InsertManualPageBreakAfterRowOf breaks after the row of an A1-style reference.
func (s *Sheet) InsertManualPageBreakAfterRowOf(ref string) error {
	row, _, err := ReferenceToRowCol(ref)
	if err != nil {
		return err
	}
	return s.InsertManualPageBreakAfterRow(row)
}

// InsertManualPageBreakAfterColumnOf breaks after the column of an A1-style reference.
func (s *Sheet) InsertManualPageBreakAfterColumnOf(ref string) error {
	_, col, err := ReferenceToRowCol(ref)
	if err != nil {
		return err
	}
	return s.InsertManualPageBreakAfterColumn(col)
}

func (s *Sheet) RowBreaks() []PageBreak {
	return s.rowBreaks
}

func (s *Sheet) ColumnBreaks() []PageBreak {
	return s.colBreaks
}

func validateSheetName(s string) error {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return fmt.Errorf("%w: empty sheet name is not allowed", ErrInvalidSheetName)
	} else if n > MaxSheetNameLength {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidSheetName, s, MaxSheetNameLength)
	}
	if strings.HasPrefix(s, "'") || strings.HasSuffix(s, "'") {
		return fmt.Errorf("%w: the first or last character of the sheet name can not be a single quote", ErrInvalidSheetName)
	}
	if strings.ContainsAny(s, InvalidSheetNameChars) {
		return fmt.Errorf("%w: the sheet name can not contain any of the characters %s", ErrInvalidSheetName, InvalidSheetNameChars)
	}
	return nil
}
