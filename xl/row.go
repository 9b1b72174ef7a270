package xl

// row is one <row> element of a worksheet: the used cells of a single row,
// ordered by column.
type row struct {
	index int // zero-based
	cells []CellAddress
}

// rowNumber is the 1-based number written to the r attribute.
func (r *row) rowNumber() int {
	return r.index + 1
}

// groupRows splits addresses sorted by row, then column, into rows. Rows
// without cells are skipped.
func groupRows(addrs []CellAddress) []*row {
	var rows []*row
	var cur *row
	for _, a := range addrs {
		if cur == nil || cur.index != a.Row {
			cur = &row{index: a.Row}
			rows = append(rows, cur)
		}
		cur.cells = append(cur.cells, a)
	}
	return rows
}
