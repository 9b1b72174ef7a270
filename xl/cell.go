package xl

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Cell is a single cell of a sheet.
type Cell struct {
	Value         Value
	Style         Style
	Hyperlink     string // external URL, empty for none
	IgnoredErrors IgnoredErrors
}

// CellKind is the kind of value stored in a cell.
type CellKind int

// Cell value kinds.
const (
	KindText CellKind = iota
	KindNumber
	KindDate
	KindFormula
)

func (k CellKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindFormula:
		return "formula"
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// Value is the content of a cell. The set of implementations is closed:
// Text, Number, Date and Formula.
type Value interface {
	Kind() CellKind
	isValue()
}

// Text is a string stored in the shared string table.
type Text string

// Number is a numeric value with exact decimal semantics.
type Number struct {
	decimal.Decimal
}

// Date is a date/time, written as an OLE Automation date serial. The wall
// clock of the time is used, its location is ignored.
type Date struct {
	time.Time
}

// Formula is stored as opaque text and never evaluated.
type Formula string

func (Text) Kind() CellKind    { return KindText }
func (Number) Kind() CellKind  { return KindNumber }
func (Date) Kind() CellKind    { return KindDate }
func (Formula) Kind() CellKind { return KindFormula }

func (Text) isValue()    {}
func (Number) isValue()  {}
func (Date) isValue()    {}
func (Formula) isValue() {}

// Kind returns the kind of the cell's value. A cell without a value is an
// empty Text cell.
func (c *Cell) Kind() CellKind {
	if c.Value == nil {
		return KindText
	}
	return c.Value.Kind()
}

// NewText creates a text cell formatted as text.
func NewText(s string) *Cell {
	return &Cell{Value: Text(s), Style: Style{Format: FormatText}}
}

// NewNumber creates a number cell formatted with two decimal places.
func NewNumber(d decimal.Decimal) *Cell {
	return &Cell{Value: Number{d}, Style: Style{Format: FormatNumberTwoDecimalPlaces}}
}

// NewInt creates a number cell formatted without decimal places.
func NewInt(v int64) *Cell {
	return &Cell{Value: Number{decimal.NewFromInt(v)}, Style: Style{Format: FormatNumberNoDecimalPlaces}}
}

// NewFloat creates a number cell formatted with two decimal places. It
// panics if v is NaN or infinite.
func NewFloat(v float64) *Cell {
	return NewNumber(decimal.NewFromFloat(v))
}

// NewDate creates a date cell formatted as date and time.
func NewDate(t time.Time) *Cell {
	return &Cell{Value: Date{t}, Style: Style{Format: FormatDateAndTime}}
}

// NewFormula creates a formula cell. The formula is written without a
// leading "=".
func NewFormula(f string) *Cell {
	return &Cell{Value: Formula(f), Style: Style{Format: FormatGeneral}}
}

// SetBold is a shorthand for c.Style.Font.Bold = v, usable in chains.
func (c *Cell) SetBold(v bool) *Cell {
	c.Style.Font.Bold = v
	return c
}

func (c *Cell) SetFormat(format string) *Cell {
	c.Style.Format = format
	return c
}
