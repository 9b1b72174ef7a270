package xl

import (
	"fmt"
	"math"
	"strconv"
)

// CellAddress is the zero-based position of a cell; A1 is {Row: 0, Column: 0}.
type CellAddress struct {
	Row    int
	Column int
}

// ParseCellAddress converts a reference such as "B12" into a CellAddress.
func ParseCellAddress(ref string) (CellAddress, error) {
	row, col, err := ReferenceToRowCol(ref)
	if err != nil {
		return CellAddress{}, err
	}
	return CellAddress{Row: row, Column: col}, nil
}

// String returns the A1-style reference of the address.
func (a CellAddress) String() string {
	return RowColToReference(a.Row, a.Column)
}

// validate rejects addresses that have no A1 form.
func (a CellAddress) validate() error {
	if a.Row < 0 || a.Column < 0 {
		return fmt.Errorf("%w: row %d, column %d", ErrOutOfRange, a.Row, a.Column)
	}
	return nil
}

func (a CellAddress) less(b CellAddress) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Column < b.Column
}

// ColumnToLetters converts a zero-based column index into its letter form
// (0 = "A", 25 = "Z", 26 = "AA"). Column letters form a bijective base-26
// numeral, there is no zero digit. It panics if col is negative.
func ColumnToLetters(col int) string {
	if col < 0 {
		panic("invalid column number")
	}
	var buf [16]byte
	i := len(buf)
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// LettersToColumn is the inverse of ColumnToLetters. It is case-insensitive.
func LettersToColumn(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty column", ErrInvalidReference)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			n = n*26 + int(c-'A') + 1
		case c >= 'a' && c <= 'z':
			n = n*26 + int(c-'a') + 1
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidReference, s)
		}
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("%w: column %q is too large", ErrInvalidReference, s)
		}
	}
	return n - 1, nil
}

// RowColToReference converts a zero-based row and column into an A1-style
// reference. It panics if row or col is negative.
func RowColToReference(row, col int) string {
	if row < 0 {
		panic("invalid row number")
	}
	return ColumnToLetters(col) + strconv.Itoa(row+1)
}

// ReferenceToRowCol parses an A1-style reference into its zero-based row and
// column. The reference must be exactly one run of letters followed by one
// run of digits, and the row must be positive.
func ReferenceToRowCol(ref string) (row, col int, err error) {
	i := 0
	for i < len(ref) && isLetter(ref[i]) {
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}
	for j := i; j < len(ref); j++ {
		if ref[j] < '0' || ref[j] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
		}
	}

	col, err = LettersToColumn(ref[:i])
	if err != nil {
		return 0, 0, err
	}
	r, err := strconv.Atoi(ref[i:])
	if err != nil || r < 1 || r > math.MaxInt32 {
		return 0, 0, fmt.Errorf("%w: %q has no valid row", ErrInvalidReference, ref)
	}
	return r - 1, col, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Excel's grid limits, used as the span of manual page breaks.
const (
	maxColumnIndex = 16383
	maxRowIndex    = 1048575
)
