package xl

import (
	"errors"
	"fmt"
)

// Validation errors, reported by model mutations before anything is applied.
var (
	ErrInvalidSheetName   = errors.New("invalid sheet name")
	ErrDuplicateSheetName = errors.New("duplicate sheet name")
	ErrInvalidReference   = errors.New("invalid cell reference")
	ErrOutOfRange         = errors.New("value out of range")
)

// State errors.
var (
	ErrEmptyWorkbook      = errors.New("workbook does not contain any sheets")
	ErrPanesAlreadyFrozen = errors.New("panes are already frozen on this sheet")
	ErrDuplicateSelection = errors.New("a selection for this pane already exists")
)

// Format and encoding errors.
var (
	ErrUnknownCellType        = errors.New("unknown cell type")
	ErrUnsupportedStyleValue  = errors.New("unsupported style value")
	ErrInvalidLargeNumberMode = errors.New("invalid large number handling mode")
	ErrInvalidDate            = errors.New("not a legal OLE Automation date")
)

// Populate errors.
var (
	ErrUnsupportedType      = errors.New("unsupported populate type")
	ErrDuplicateColumnIndex = errors.New("more than one field maps to the same column")
)

// ErrNotWritable is returned by Save when the destination can not be written to.
var ErrNotWritable = errors.New("destination is not writable")

// PartError reports a failure while assembling one part of the package.
type PartError struct {
	Part  string // package path, e.g. "xl/worksheets/sheet1.xml"
	Sheet string // empty for workbook-level parts
	Err   error
}

func (e *PartError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("xlsx part %s (sheet %q): %v", e.Part, e.Sheet, e.Err)
	}
	return fmt.Sprintf("xlsx part %s: %v", e.Part, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}

func unsupported(what string, v int) error {
	return fmt.Errorf("%w: %s %d", ErrUnsupportedStyleValue, what, v)
}
