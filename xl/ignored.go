package xl

import "strings"

// IgnoredErrors selects the validation warnings a spreadsheet application
// should suppress for a cell.
type IgnoredErrors struct {
	EvalError          bool // formulas that result in an error
	TwoDigitTextYear   bool // text dates with two-digit years
	NumberStoredAsText bool // numbers formatted as text
	Formula            bool // formulas inconsistent with their region
	FormulaRange       bool // formulas omitting cells in a region
	UnlockedFormula    bool // unlocked cells containing formulas
	EmptyCellReference bool // formulas referring to empty cells
	ListDataValidation bool // table values violating data validation
	CalculatedColumn   bool // cells deviating from a calculated column formula
}

// bits packs the flags into a bit field; equal flag sets have equal bits.
func (ie IgnoredErrors) bits() uint16 {
	var b uint16
	for i, f := range [...]bool{
		ie.EvalError,
		ie.TwoDigitTextYear,
		ie.NumberStoredAsText,
		ie.Formula,
		ie.FormulaRange,
		ie.UnlockedFormula,
		ie.EmptyCellReference,
		ie.ListDataValidation,
		ie.CalculatedColumn,
	} {
		if f {
			b |= 1 << i
		}
	}
	return b
}

// Any reports whether at least one warning is suppressed.
func (ie IgnoredErrors) Any() bool {
	return ie.bits() != 0
}

type ignoredErrorBucket struct {
	flags IgnoredErrors
	cells []CellAddress
	seen  map[CellAddress]struct{}
}

// sqref lists every cell individually. Cells are never merged into
// rectangular ranges, which keeps the output byte-compatible.
func (b *ignoredErrorBucket) sqref() string {
	refs := make([]string, len(b.cells))
	for i, a := range b.cells {
		refs[i] = a.String()
	}
	return strings.Join(refs, " ")
}

// ignoredErrorSet groups the cells of one sheet by identical flag set.
type ignoredErrorSet struct {
	buckets []*ignoredErrorBucket
	byBits  map[uint16]*ignoredErrorBucket
}

func newIgnoredErrorSet() *ignoredErrorSet {
	return &ignoredErrorSet{byBits: map[uint16]*ignoredErrorBucket{}}
}

func (s *ignoredErrorSet) add(addr CellAddress, flags IgnoredErrors) {
	id := flags.bits()
	if id == 0 {
		return
	}
	b, ok := s.byBits[id]
	if !ok {
		b = &ignoredErrorBucket{flags: flags, seen: map[CellAddress]struct{}{}}
		s.byBits[id] = b
		s.buckets = append(s.buckets, b)
	}
	if _, dup := b.seen[addr]; dup {
		return
	}
	b.seen[addr] = struct{}{}
	b.cells = append(b.cells, addr)
}

func (s *ignoredErrorSet) empty() bool {
	return len(s.buckets) == 0
}
