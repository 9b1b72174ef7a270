package main

import (
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/adnsv/xlsxgen/xl"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Layout describes a workbook in YAML.
type Layout struct {
	Title       string        `yaml:"title"`
	Author      string        `yaml:"author"`
	Application string        `yaml:"application"`
	Compression string        `yaml:"compression"` // none, balanced, maximum
	Sheets      []SheetLayout `yaml:"sheets"`
}

type SheetLayout struct {
	Name          string             `yaml:"name"`
	AutoFilter    bool               `yaml:"autofilter"`
	LargeNumbers  string             `yaml:"large_numbers"` // text (default) or none
	Orientation   string             `yaml:"orientation"`
	Freeze        *FreezeLayout      `yaml:"freeze"`
	RepeatRows    int                `yaml:"repeat_rows"`
	RepeatColumns int                `yaml:"repeat_columns"`
	Widths        map[string]float64 `yaml:"widths"` // column letters -> width
	RowBreaks     []int              `yaml:"row_breaks"`
	ColumnBreaks  []int              `yaml:"column_breaks"`
	Rows          [][]any            `yaml:"rows"` // plain values starting at A1
	Cells         []CellLayout       `yaml:"cells"`
}

type FreezeLayout struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

type CellLayout struct {
	Ref     string     `yaml:"ref"`
	Text    *string    `yaml:"text"`
	Number  string     `yaml:"number"`
	Date    *time.Time `yaml:"date"`
	Formula string     `yaml:"formula"`
	Link    string     `yaml:"link"`
	Format  string     `yaml:"format"`
	Bold    bool       `yaml:"bold"`
	Italic  bool       `yaml:"italic"`
	Color   string     `yaml:"color"`
	Fill    string     `yaml:"fill"`
	Border  string     `yaml:"border"` // comma separated: top, right, bottom, left, all
	Align   string     `yaml:"align"`
}

func loadLayout(fn string) (*Layout, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return parseLayout(data)
}

func parseLayout(data []byte) (*Layout, error) {
	l := &Layout{}
	err := yaml.Unmarshal(data, l)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	return l, nil
}

func (l *Layout) saveOptions() (xl.SaveOptions, error) {
	opts := xl.DefaultSaveOptions()
	switch strings.ToLower(l.Compression) {
	case "", "balanced":
	case "none":
		opts.Compression = xl.NoCompression
	case "maximum":
		opts.Compression = xl.Maximum
	default:
		return opts, fmt.Errorf("unknown compression %q", l.Compression)
	}
	return opts, nil
}

// Build creates the workbook described by the layout.
func (l *Layout) Build() (*xl.Workbook, error) {
	wb := xl.NewWorkbook()
	wb.Title = l.Title
	wb.Author = l.Author
	wb.Application = l.Application

	for _, sl := range l.Sheets {
		sheet, err := wb.AddSheet(sl.Name)
		if err != nil {
			return nil, err
		}
		err = sl.apply(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sl.Name, err)
		}
	}
	return wb, nil
}

func (sl *SheetLayout) apply(sheet *xl.Sheet) error {
	sheet.AutoFilter = sl.AutoFilter
	sheet.PageSetup.PrintRepeatRows = sl.RepeatRows
	sheet.PageSetup.PrintRepeatColumns = sl.RepeatColumns

	switch strings.ToLower(sl.LargeNumbers) {
	case "", "text":
		sheet.LargeNumberHandling = xl.StoreAsText
	case "none":
		sheet.LargeNumberHandling = xl.None
	default:
		return fmt.Errorf("unknown large number handling %q", sl.LargeNumbers)
	}

	switch strings.ToLower(sl.Orientation) {
	case "", "portrait":
		sheet.PageSetup.Orientation = xl.Portrait
	case "landscape":
		sheet.PageSetup.Orientation = xl.Landscape
	default:
		return fmt.Errorf("unknown orientation %q", sl.Orientation)
	}

	if sl.Freeze != nil {
		err := sheet.FreezeTopLeft(sl.Freeze.Rows, sl.Freeze.Columns)
		if err != nil {
			return err
		}
	}

	for letters, w := range sl.Widths {
		col, err := xl.LettersToColumn(letters)
		if err != nil {
			return err
		}
		sheet.SetColumnWidth(col, w)
	}

	for _, r := range sl.RowBreaks {
		if err := sheet.InsertManualPageBreakAfterRow(r); err != nil {
			return err
		}
	}
	for _, c := range sl.ColumnBreaks {
		if err := sheet.InsertManualPageBreakAfterColumn(c); err != nil {
			return err
		}
	}

	for r, values := range sl.Rows {
		for c, v := range values {
			cell, err := plainCell(v)
			if err != nil {
				return fmt.Errorf("%s: %w", xl.RowColToReference(r, c), err)
			}
			if cell != nil {
				err = sheet.SetAt(r, c, cell)
				if err != nil {
					return err
				}
			}
		}
	}

	for _, cl := range sl.Cells {
		cell, err := cl.build()
		if err != nil {
			return fmt.Errorf("%s: %w", cl.Ref, err)
		}
		err = sheet.Set(cl.Ref, cell)
		if err != nil {
			return err
		}
	}
	return nil
}

// plainCell converts a scalar decoded by yaml into a cell.
func plainCell(v any) (*xl.Cell, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return xl.NewText(v), nil
	case int:
		return xl.NewInt(int64(v)), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v", xl.ErrOutOfRange, v)
		}
		return xl.NewFloat(v), nil
	case bool:
		return xl.NewText(fmt.Sprint(v)), nil
	case time.Time:
		return xl.NewDate(v), nil
	}
	return nil, fmt.Errorf("unsupported value %v", v)
}

func (cl *CellLayout) build() (*xl.Cell, error) {
	var cell *xl.Cell
	kinds := 0
	if cl.Text != nil {
		cell = xl.NewText(*cl.Text)
		kinds++
	}
	if cl.Number != "" {
		d, err := decimal.NewFromString(cl.Number)
		if err != nil {
			return nil, err
		}
		cell = xl.NewNumber(d)
		kinds++
	}
	if cl.Date != nil {
		cell = xl.NewDate(*cl.Date)
		kinds++
	}
	if cl.Formula != "" {
		cell = xl.NewFormula(strings.TrimPrefix(cl.Formula, "="))
		kinds++
	}
	switch kinds {
	case 0:
		cell = xl.NewText("")
	case 1:
	default:
		return nil, fmt.Errorf("a cell holds one of text, number, date or formula")
	}

	cell.Hyperlink = cl.Link
	if cl.Format != "" {
		cell.Style.Format = cl.Format
	}
	cell.Style.Font.Bold = cl.Bold
	cell.Style.Font.Italic = cl.Italic

	if cl.Color != "" {
		c, err := parseColor(cl.Color)
		if err != nil {
			return nil, err
		}
		cell.Style.Font.Color = c
	}
	if cl.Fill != "" {
		c, err := parseColor(cl.Fill)
		if err != nil {
			return nil, err
		}
		cell.Style.Fill.SetBackground(c)
	}

	if cl.Border != "" {
		for _, edge := range strings.Split(cl.Border, ",") {
			switch strings.TrimSpace(strings.ToLower(edge)) {
			case "top":
				cell.Style.Border |= xl.BorderTop
			case "right":
				cell.Style.Border |= xl.BorderRight
			case "bottom":
				cell.Style.Border |= xl.BorderBottom
			case "left":
				cell.Style.Border |= xl.BorderLeft
			case "all":
				cell.Style.Border |= xl.BorderAll
			default:
				return nil, fmt.Errorf("unknown border %q", edge)
			}
		}
	}

	switch strings.ToLower(cl.Align) {
	case "":
	case "general":
		cell.Style.Horizontal = xl.HAlignGeneral
	case "left":
		cell.Style.Horizontal = xl.HAlignLeft
	case "center":
		cell.Style.Horizontal = xl.HAlignCenter
	case "right":
		cell.Style.Horizontal = xl.HAlignRight
	case "justify":
		cell.Style.Horizontal = xl.HAlignJustify
	default:
		return nil, fmt.Errorf("unknown alignment %q", cl.Align)
	}
	return cell, nil
}

// parseColor accepts RRGGBB or AARRGGBB hex, with an optional leading '#'.
func parseColor(s string) (xl.Color, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil {
		return xl.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(b) {
	case 3:
		return xl.FromRgb(b[0], b[1], b[2]), nil
	case 4:
		return xl.FromArgb(b[0], b[1], b[2], b[3]), nil
	}
	return xl.Color{}, fmt.Errorf("invalid color %q", s)
}
