package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/adnsv/xlsxgen/xl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleLayout = `
title: Inventory
author: Ops
compression: maximum
sheets:
  - name: Stock
    autofilter: true
    orientation: landscape
    freeze: {rows: 1}
    repeat_rows: 1
    widths: {A: 30, c: 12}
    row_breaks: [20]
    rows:
      - [Item, Qty, Price]
      - [Bolt, 120, 0.25]
    cells:
      - ref: A1
        text: Item
        bold: true
        fill: "FFFF00"
        border: bottom
      - ref: D2
        formula: "=B2*C2"
      - ref: E2
        text: docs
        link: https://example.com/docs
      - ref: F2
        number: "123456789012345"
`

func TestParseLayout(t *testing.T) {
	l, err := parseLayout([]byte(sampleLayout))
	require.NoError(t, err)

	assert.Equal(t, "Inventory", l.Title)
	require.Len(t, l.Sheets, 1)
	s := l.Sheets[0]
	assert.Equal(t, "Stock", s.Name)
	require.NotNil(t, s.Freeze)
	assert.Equal(t, 1, s.Freeze.Rows)
	assert.Equal(t, map[string]float64{"A": 30, "c": 12}, s.Widths)
	assert.Equal(t, []any{"Bolt", 120, 0.25}, s.Rows[1])

	opts, err := l.saveOptions()
	require.NoError(t, err)
	assert.Equal(t, xl.Maximum, opts.Compression)
}

func TestLayout_Build(t *testing.T) {
	l, err := parseLayout([]byte(sampleLayout))
	require.NoError(t, err)

	wb, err := l.Build()
	require.NoError(t, err)
	sheet := wb.Sheet("Stock")
	require.NotNil(t, sheet)

	a1, ok := sheet.Cells.Lookup(xl.CellAddress{Row: 0, Column: 0})
	require.True(t, ok)
	assert.True(t, a1.Style.Font.Bold)
	assert.Equal(t, xl.PatternSolid, a1.Style.Fill.Pattern)
	assert.Equal(t, xl.BorderBottom, a1.Style.Border)

	d2, ok := sheet.Cells.Lookup(xl.CellAddress{Row: 1, Column: 3})
	require.True(t, ok)
	assert.Equal(t, xl.Formula("B2*C2"), d2.Value)

	assert.Equal(t, map[int]float64{0: 30, 2: 12}, sheet.ColumnWidths)
	assert.Equal(t, xl.Landscape, sheet.PageSetup.Orientation)
	assert.Len(t, sheet.SheetViews(), 1)
	assert.Len(t, sheet.RowBreaks(), 1)

	bb := bytes.Buffer{}
	require.NoError(t, xl.Save(wb, &bb, xl.DefaultSaveOptions()))

	f, err := excelize.OpenReader(&bb)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Stock", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Bolt", v)
	v, err = f.GetCellValue("Stock", "F2")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345", v)
	formula, err := f.GetCellFormula("Stock", "D2")
	require.NoError(t, err)
	assert.Equal(t, "B2*C2", formula)
}

func TestLayout_Errors(t *testing.T) {
	tests := map[string]string{
		"duplicate sheet": "sheets: [{name: A}, {name: A}]",
		"bad sheet name":  "sheets: [{name: 'a/b'}]",
		"two kinds":       "sheets: [{name: A, cells: [{ref: A1, text: x, number: '1'}]}]",
		"bad ref":         "sheets: [{name: A, cells: [{ref: '1A', text: x}]}]",
		"bad color":       "sheets: [{name: A, cells: [{ref: A1, fill: nothex}]}]",
		"bad align":       "sheets: [{name: A, cells: [{ref: A1, align: sideways}]}]",
		"bad orientation": "sheets: [{name: A, orientation: diagonal}]",
		"negative freeze": "sheets: [{name: A, freeze: {rows: -1}}]",
		"nan value":       "sheets: [{name: A, rows: [[1, .nan]]}]",
		"infinite value":  "sheets: [{name: A, rows: [[-.inf]]}]",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			l, err := parseLayout([]byte(doc))
			require.NoError(t, err)
			require.NotPanics(t, func() {
				_, err = l.Build()
			})
			assert.Error(t, err)
		})
	}

	_, err := (&Layout{Compression: "zstd"}).saveOptions()
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, xl.FromRgb(0x10, 0x20, 0x30), c)

	c, err = parseColor("80FF0000")
	require.NoError(t, err)
	assert.Equal(t, "80FF0000", c.String())

	_, err = parseColor("12345")
	assert.Error(t, err)
}

func TestDemoWorkbook(t *testing.T) {
	wb, err := demoWorkbook(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, wb.SheetCount())

	bb := bytes.Buffer{}
	require.NoError(t, xl.Save(wb, &bb, xl.DefaultSaveOptions()))

	f, err := excelize.OpenReader(&bb)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Overview", "Orders"}, f.GetSheetList())

	v, err := f.GetCellValue("Orders", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Acme", v)
}
