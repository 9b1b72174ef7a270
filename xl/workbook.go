package xl

import (
	"fmt"

	"github.com/google/uuid"
)

type Workbook struct {
	Title       string
	Author      string
	Application string    // written to docProps/app.xml when set
	ID          uuid.UUID // written as dc:identifier when not nil

	sheets   []*Sheet
	sheetMap map[string]*Sheet
}

func NewWorkbook() *Workbook {
	return &Workbook{
		ID:       uuid.New(),
		sheetMap: map[string]*Sheet{},
	}
}

// AddSheet creates a new sheet and appends it to the workbook.
func (wb *Workbook) AddSheet(name string) (*Sheet, error) {
	sheet, err := NewSheet(name)
	if err != nil {
		return nil, err
	}
	if err := wb.Add(sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

// Add appends an existing sheet. Sheet names are unique within a workbook.
func (wb *Workbook) Add(sheet *Sheet) error {
	if wb.sheetMap == nil {
		wb.sheetMap = map[string]*Sheet{}
	}
	if _, exists := wb.sheetMap[sheet.name]; exists {
		return fmt.Errorf("%w: '%s'", ErrDuplicateSheetName, sheet.name)
	}
	wb.sheets = append(wb.sheets, sheet)
	wb.sheetMap[sheet.name] = sheet
	return nil
}

// Sheets returns the sheets in insertion order.
func (wb *Workbook) Sheets() []*Sheet {
	return wb.sheets
}

func (wb *Workbook) SheetCount() int {
	return len(wb.sheets)
}

// Sheet returns the sheet with the given name, or nil.
func (wb *Workbook) Sheet(name string) *Sheet {
	return wb.sheetMap[name]
}
