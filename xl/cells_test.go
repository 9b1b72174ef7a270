package xl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCells_ImplicitCreation(t *testing.T) {
	sheet, err := NewSheet("Sheet1")
	require.NoError(t, err)

	_, ok := sheet.Cells.Lookup(CellAddress{Row: 3, Column: 2})
	assert.False(t, ok)

	cell, err := sheet.CellAt(3, 2)
	require.NoError(t, err)
	cell.SetBold(true)

	c, ok := sheet.Cells.Lookup(CellAddress{Row: 3, Column: 2})
	require.True(t, ok)
	assert.True(t, c.Style.Font.Bold)
	assert.Equal(t, KindText, c.Kind())
	assert.Equal(t, Text(""), c.Value)

	again, err := sheet.Cell("C4")
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestCells_Counts(t *testing.T) {
	sheet, err := NewSheet("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, 0, sheet.Cells.RowCount())
	assert.Equal(t, 0, sheet.Cells.ColumnCount())

	sheet.SetAt(0, 0, NewText("a"))
	assert.Equal(t, 1, sheet.Cells.RowCount())
	assert.Equal(t, 1, sheet.Cells.ColumnCount())

	sheet.SetAt(6, 0, NewText("b"))
	assert.Equal(t, 7, sheet.Cells.RowCount())
	assert.Equal(t, 1, sheet.Cells.ColumnCount())

	sheet.SetAt(0, 4, NewText("c"))
	assert.Equal(t, 7, sheet.Cells.RowCount())
	assert.Equal(t, 5, sheet.Cells.ColumnCount())
	assert.Equal(t, 3, sheet.Cells.Len())
}

func TestCells_SetNilDeletes(t *testing.T) {
	cells := newCells()
	addr := CellAddress{Row: 1, Column: 1}
	cells.Set(addr, NewInt(5))
	assert.Equal(t, 1, cells.Len())

	cells.Set(addr, nil)
	assert.Equal(t, 0, cells.Len())

	cells.Set(addr, NewInt(5))
	cells.Delete(addr)
	assert.Equal(t, 0, cells.Len())
}

func TestCells_AddressesAndRows(t *testing.T) {
	cells := newCells()
	for _, a := range []CellAddress{{2, 1}, {0, 3}, {2, 0}, {0, 0}, {5, 5}} {
		cells.Set(a, NewText(a.String()))
	}

	addrs := cells.Addresses()
	assert.Equal(t, []CellAddress{{0, 0}, {0, 3}, {2, 0}, {2, 1}, {5, 5}}, addrs)

	rows := groupRows(addrs)
	require.Len(t, rows, 3)
	assert.Equal(t, 1, rows[0].rowNumber())
	assert.Equal(t, []CellAddress{{0, 0}, {0, 3}}, rows[0].cells)
	assert.Equal(t, 3, rows[1].rowNumber())
	assert.Equal(t, []CellAddress{{2, 0}, {2, 1}}, rows[1].cells)
	assert.Equal(t, 6, rows[2].rowNumber())

	assert.Empty(t, groupRows(nil))
}

func TestCells_NegativeIndex(t *testing.T) {
	sheet, err := NewSheet("Sheet1")
	require.NoError(t, err)

	_, err = sheet.CellAt(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = sheet.CellAt(0, -3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, sheet.SetAt(-1, 0, NewText("x")), ErrOutOfRange)
	assert.ErrorIs(t, sheet.SetAt(0, -1, nil), ErrOutOfRange)
	assert.ErrorIs(t, sheet.Cells.Set(CellAddress{Row: -2, Column: 0}, NewInt(1)), ErrOutOfRange)
	_, err = sheet.Cells.GetOrInsert(CellAddress{Row: 0, Column: -1})
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 0, sheet.Cells.Len())

	wb := NewWorkbook()
	require.NoError(t, wb.Add(sheet))
	require.NoError(t, sheet.SetAt(0, 0, NewText("ok")))
	require.NotPanics(t, func() {
		err = Save(wb, &bytes.Buffer{}, DefaultSaveOptions())
	})
	assert.NoError(t, err)
}
