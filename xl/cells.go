package xl

import "slices"

// Cells is the sparse cell grid of a sheet.
type Cells struct {
	m map[CellAddress]*Cell
}

func newCells() *Cells {
	return &Cells{m: map[CellAddress]*Cell{}}
}

// GetOrInsert returns the cell at addr, creating and storing an empty Text
// cell first if the address has never been written. This allows styling a
// cell before it has content. Negative addresses are rejected with
// ErrOutOfRange.
func (cc *Cells) GetOrInsert(addr CellAddress) (*Cell, error) {
	if err := addr.validate(); err != nil {
		return nil, err
	}
	if c, ok := cc.m[addr]; ok {
		return c, nil
	}
	c := &Cell{Value: Text("")}
	cc.m[addr] = c
	return c, nil
}

// Lookup returns the cell at addr without creating it.
func (cc *Cells) Lookup(addr CellAddress) (*Cell, bool) {
	c, ok := cc.m[addr]
	return c, ok
}

// Set stores c at addr, replacing any existing cell. A nil cell removes it.
func (cc *Cells) Set(addr CellAddress, c *Cell) error {
	if err := addr.validate(); err != nil {
		return err
	}
	if c == nil {
		delete(cc.m, addr)
		return nil
	}
	cc.m[addr] = c
	return nil
}

func (cc *Cells) Delete(addr CellAddress) {
	delete(cc.m, addr)
}

// Len is the number of stored cells.
func (cc *Cells) Len() int {
	return len(cc.m)
}

// RowCount is the highest used row index plus one, so empty rows in between
// are counted. An empty grid has zero rows.
func (cc *Cells) RowCount() int {
	n := 0
	for a := range cc.m {
		n = max(n, a.Row+1)
	}
	return n
}

// ColumnCount is the highest used column index plus one.
func (cc *Cells) ColumnCount() int {
	n := 0
	for a := range cc.m {
		n = max(n, a.Column+1)
	}
	return n
}

// Addresses returns the used addresses ordered by row, then column.
func (cc *Cells) Addresses() []CellAddress {
	addrs := make([]CellAddress, 0, len(cc.m))
	for a := range cc.m {
		addrs = append(addrs, a)
	}
	slices.SortFunc(addrs, func(a, b CellAddress) int {
		if a.less(b) {
			return -1
		}
		if b.less(a) {
			return 1
		}
		return 0
	})
	return addrs
}
