package main

import (
	"time"

	"github.com/adnsv/xlsxgen/xl"
	"github.com/shopspring/decimal"
)

type demoOrder struct {
	Number   int             `xlsx:"Order #,col=0"`
	Customer string          `xlsx:"Customer"`
	Placed   time.Time       `xlsx:"Placed"`
	Total    decimal.Decimal `xlsx:"Total"`
	Internal string          `xlsx:"-"`
}

// demoWorkbook builds a sample workbook that touches most features.
func demoWorkbook(now time.Time) (*xl.Workbook, error) {
	wb := xl.NewWorkbook()
	wb.Title = "xlsxgen demo"
	wb.Author = "xlsxgen"
	wb.Application = "xlsxgen"

	sheet, err := wb.AddSheet("Overview")
	if err != nil {
		return nil, err
	}
	sheet.SetColumnWidth(0, 24)
	sheet.SetColumnWidth(1, 18)
	sheet.PageSetup.Orientation = xl.Landscape
	sheet.PageSetup.PrintRepeatRows = 1

	link := xl.NewText("github.com/adnsv/xlsxgen")
	link.Hyperlink = "https://github.com/adnsv/xlsxgen"
	link.Style.Font.Underline = xl.UnderlineSingle
	link.Style.Font.Color = xl.Blue

	styled := xl.NewText("bordered, filled, centered")
	styled.Style.Border = xl.BorderAll
	styled.Style.Fill.SetBackground(xl.LightYellow)
	styled.Style.Horizontal = xl.HAlignCenter
	styled.Style.Vertical = xl.VAlignMiddle

	rows := [][2]*xl.Cell{
		{xl.NewText("Feature").SetBold(true), xl.NewText("Example").SetBold(true)},
		{xl.NewText("Text & symbols"), xl.NewText("Here & Now <ok>")},
		{xl.NewText("Large number"), xl.NewNumber(decimal.RequireFromString("1234567890123456"))},
		{xl.NewText("Date"), xl.NewDate(now)},
		{xl.NewText("Formula"), xl.NewFormula("LEN(B2)")},
		{xl.NewText("Hyperlink"), link},
		{xl.NewText("Style"), styled},
	}
	for r, cells := range rows {
		for c, cell := range cells {
			if err := sheet.SetAt(r, c, cell); err != nil {
				return nil, err
			}
		}
	}

	if err := sheet.FreezeTopRow(); err != nil {
		return nil, err
	}
	if err := sheet.InsertManualPageBreakAfterRow(3); err != nil {
		return nil, err
	}

	orders := []demoOrder{
		{Number: 1001, Customer: "Acme", Placed: now.AddDate(0, 0, -3), Total: decimal.RequireFromString("199.90")},
		{Number: 1002, Customer: "Globex", Placed: now.AddDate(0, 0, -1), Total: decimal.RequireFromString("42.00")},
	}
	data, err := xl.FromData("Orders", orders, nil)
	if err != nil {
		return nil, err
	}
	data.AutoFilter = true
	if err := data.FreezeTopLeft(1, 1); err != nil {
		return nil, err
	}
	if err := wb.Add(data); err != nil {
		return nil, err
	}
	return wb, nil
}
