package xl

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/adnsv/srw/xml"
	"github.com/google/uuid"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

const workbookPath = "xl/workbook.xml"

// writer assembles the parts of one workbook. A writer is used for a single
// save; its tables are never shared.
type writer struct {
	opts    SaveOptions
	pkg     *Package
	styles  *styleTable
	strings *sharedStrings
	ignored []*ignoredErrorSet // one per sheet
}

// newWriter expects opts.Timestamp to be resolved already.
func newWriter(opts SaveOptions) *writer {
	return &writer{
		opts:    opts,
		pkg:     &Package{},
		styles:  newStyleTable(),
		strings: newSharedStrings(),
	}
}

func (w *writer) assemble(wb *Workbook) (*Package, error) {
	if len(wb.sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	for i, sheet := range wb.sheets {
		err := normalizeSheet(sheet)
		if err != nil {
			return nil, &PartError{Part: sheetPath(i), Sheet: sheet.name, Err: err}
		}
	}

	for i, sheet := range wb.sheets {
		for col := range sheet.ColumnWidths {
			if col < 0 {
				err := fmt.Errorf("%w: column width index %d", ErrOutOfRange, col)
				return nil, &PartError{Part: sheetPath(i), Sheet: sheet.name, Err: err}
			}
		}
		ignored := newIgnoredErrorSet()
		for _, addr := range sheet.Cells.Addresses() {
			if err := addr.validate(); err != nil {
				return nil, &PartError{Part: sheetPath(i), Sheet: sheet.name, Err: err}
			}
			c := sheet.Cells.m[addr]
			w.styles.add(c.Style)
			ignored.add(addr, c.IgnoredErrors)
		}
		w.ignored = append(w.ignored, ignored)
	}

	if wb.Title != "" || wb.Author != "" {
		w.writeCoreProperties(wb)
	}

	err := w.writeStyles()
	if err != nil {
		return nil, &PartError{Part: "xl/styles.xml", Err: err}
	}

	sheetIDs := make([]string, len(wb.sheets))
	for i, sheet := range wb.sheets {
		sheetIDs[i], err = w.writeSheet(i, sheet)
		if err != nil {
			return nil, &PartError{Part: sheetPath(i), Sheet: sheet.name, Err: err}
		}
	}

	if w.strings.UniqueCount() > 0 {
		w.pkg.AddPart("xl/sharedStrings.xml", ctSharedStrings, w.strings.marshal())
		w.pkg.AddRelationship(workbookPath, relSharedStrings, "xl/sharedStrings.xml")
	}

	w.writeWorkbook(wb, sheetIDs)

	if wb.Application != "" {
		w.writeExtendedProperties(wb.Application)
	}

	return w.pkg, nil
}

func sheetPath(i int) string {
	return fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1)
}

func (w *writer) writeCoreProperties(wb *Workbook) {
	const abspath = "docProps/core.xml"
	w.pkg.AddRelationship("", relCoreProps, abspath)

	ts := w.opts.Timestamp.UTC().Format(time.RFC3339)

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})

	x.XmlStandaloneDecl()
	x.OTag("cp:coreProperties")
	x.Attr("xmlns:cp", nsCoreProps)
	x.Attr("xmlns:dc", nsDC)
	x.Attr("xmlns:dcterms", nsDCTerms)
	x.Attr("xmlns:dcmitype", nsDCMIType)
	x.Attr("xmlns:xsi", nsXSI)

	if wb.Title != "" {
		x.OTag("+dc:title").String(wb.Title).CTag()
	}
	if wb.Author != "" {
		x.OTag("+dc:creator").String(wb.Author).CTag()
		x.OTag("+cp:lastModifiedBy").String(wb.Author).CTag()
	}
	if wb.ID != uuid.Nil {
		x.OTag("+dc:identifier").String(wb.ID.URN()).CTag()
	}

	x.OTag("+dcterms:created")
	x.Attr("xsi:type", "dcterms:W3CDTF")
	x.Write(ts)
	x.CTag()

	x.OTag("+dcterms:modified")
	x.Attr("xsi:type", "dcterms:W3CDTF")
	x.Write(ts)
	x.CTag()

	x.CTag()

	w.pkg.AddPart(abspath, ctCoreProps, bb.Bytes())
}

func (w *writer) writeExtendedProperties(appname string) {
	const abspath = "docProps/app.xml"
	w.pkg.AddRelationship("", relExtendedProps, abspath)

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("Properties")
	x.Attr("xmlns", nsExtendedProps)
	x.Attr("xmlns:vt", nsDocPropsVT)
	x.OTag("+Application").String(appname).CTag()
	x.CTag()

	w.pkg.AddPart(abspath, ctExtendedProps, bb.Bytes())
}

func (w *writer) writeStyles() error {
	const abspath = "xl/styles.xml"

	data, err := w.styles.marshal()
	if err != nil {
		return err
	}
	w.pkg.AddPart(abspath, ctStyles, data)
	w.pkg.AddRelationship(workbookPath, relStyles, abspath)
	return nil
}

func (w *writer) writeWorkbook(wb *Workbook, sheetIDs []string) {
	w.pkg.AddRelationship("", relOfficeDocument, workbookPath)

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("workbook")
	x.Attr("xmlns", nsMain)
	x.Attr("xmlns:r", nsRelationships)

	x.OTag("+sheets")
	for i, sheet := range wb.sheets {
		x.OTag("+sheet")
		x.Attr("name", sheet.name)
		x.Attr("sheetId", i+1)
		x.Attr("r:id", sheetIDs[i])
		x.CTag()
	}
	x.CTag()

	type definedName struct {
		name     string
		sheet    int
		hidden   bool
		refersTo string
	}
	var names []definedName
	for i, sheet := range wb.sheets {
		quoted := quoteSheetName(sheet.name)
		if sheet.AutoFilter && sheet.Cells.Len() > 0 {
			last := RowColToReference(sheet.Cells.RowCount()-1, sheet.Cells.ColumnCount()-1)
			names = append(names, definedName{
				name:     "_xlnm._FilterDatabase",
				sheet:    i,
				hidden:   true,
				refersTo: quoted + "!" + absoluteRange("A1", last),
			})
		}

		var titles []string
		if n := sheet.PageSetup.PrintRepeatColumns; n > 0 {
			titles = append(titles, quoted+"!$A:$"+ColumnToLetters(n-1))
		}
		if n := sheet.PageSetup.PrintRepeatRows; n > 0 {
			titles = append(titles, quoted+"!$1:$"+strconv.Itoa(n))
		}
		if len(titles) > 0 {
			names = append(names, definedName{
				name:     "_xlnm.Print_Titles",
				sheet:    i,
				refersTo: strings.Join(titles, ","),
			})
		}
	}

	if len(names) > 0 {
		x.OTag("+definedNames")
		for _, dn := range names {
			x.OTag("+definedName")
			x.Attr("name", dn.name)
			x.Attr("localSheetId", dn.sheet)
			if dn.hidden {
				x.Attr("hidden", 1)
			}
			x.String(dn.refersTo)
			x.CTag()
		}
		x.CTag()
	}

	x.CTag()

	w.pkg.AddPart(workbookPath, ctWorkbook, bb.Bytes())
}

// quoteSheetName quotes a sheet name for use in a formula reference.
func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// absoluteRange turns "A1", "C5" into "$A$1:$C$5".
func absoluteRange(first, last string) string {
	abs := func(ref string) string {
		i := strings.IndexFunc(ref, func(r rune) bool { return r >= '0' && r <= '9' })
		return "$" + ref[:i] + "$" + ref[i:]
	}
	return abs(first) + ":" + abs(last)
}

type hyperlink struct {
	ref string
	url string
}

// writeSheet emits the worksheet part of the i-th sheet and returns the id
// of its relationship from the workbook.
func (w *writer) writeSheet(i int, sh *Sheet) (string, error) {
	abspath := sheetPath(i)
	rid := w.pkg.AddRelationship(workbookPath, relWorksheet, abspath)

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("worksheet")
	x.Attr("xmlns", nsMain)
	x.Attr("xmlns:r", nsRelationships)

	if len(sh.views) > 0 {
		err := writeSheetViews(x, sh.views)
		if err != nil {
			return "", err
		}
	}

	x.OTag("+sheetFormatPr").Attr("defaultRowHeight", 15).CTag()

	if len(sh.ColumnWidths) > 0 {
		x.OTag("+cols")
		enumerate(sh.ColumnWidths, func(col int, width float64) error {
			x.OTag("+col").Attr("min", col+1).Attr("max", col+1)
			x.Attr("width", strconv.FormatFloat(width+0.7109375, 'f', -1, 64))
			x.Attr("customWidth", 1)
			x.CTag()
			return nil
		})
		x.CTag()
	}

	var links []hyperlink
	x.OTag("+sheetData")
	for _, r := range groupRows(sh.Cells.Addresses()) {
		x.OTag("+row").Attr("r", r.rowNumber())
		for _, addr := range r.cells {
			cell := sh.Cells.m[addr]
			ref := addr.String()

			x.OTag("+c").Attr("r", ref)
			if s := w.styles.index(cell.Style); s != 0 {
				x.Attr("s", s)
			}

			switch v := cell.Value.(type) {
			case nil:
				x.Attr("t", "s")
				x.OTag("v").Write(w.strings.Intern("")).CTag()
			case Text:
				x.Attr("t", "s")
				x.OTag("v").Write(w.strings.Intern(string(v))).CTag()
			case Number:
				if sh.LargeNumberHandling == StoreAsText && IsLargeNumber(v.Decimal) {
					x.Attr("t", "s")
					x.OTag("v").Write(w.strings.Intern(v.String())).CTag()
				} else {
					x.Attr("t", "n")
					x.OTag("v").Write(v.String()).CTag()
				}
			case Date:
				oa, err := ToOADate(v.Time)
				if err != nil {
					return "", fmt.Errorf("cell %s: %w", ref, err)
				}
				x.OTag("v").Write(formatOADate(oa)).CTag()
			case Formula:
				x.Attr("t", "str")
				x.OTag("f").String(string(v)).CTag()
			default:
				return "", fmt.Errorf("%w: %T in cell %s", ErrUnknownCellType, cell.Value, ref)
			}
			x.CTag() // c

			if cell.Hyperlink != "" {
				links = append(links, hyperlink{ref: ref, url: cell.Hyperlink})
			}
		}
		x.CTag() // row
	}
	x.CTag() // sheetData

	if sh.AutoFilter && sh.Cells.Len() > 0 {
		last := RowColToReference(sh.Cells.RowCount()-1, sh.Cells.ColumnCount()-1)
		x.OTag("+autoFilter").Attr("ref", "A1:"+last).CTag()
	}

	if len(links) > 0 {
		x.OTag("+hyperlinks")
		for _, link := range links {
			id := w.pkg.AddExternalRelationship(abspath, relHyperlink, link.url)
			x.OTag("+hyperlink").Attr("ref", link.ref).Attr("r:id", id).CTag()
		}
		x.CTag()
	}

	orientation, err := sh.PageSetup.Orientation.xmlValue()
	if err != nil {
		return "", err
	}
	x.OTag("+pageSetup").Attr("orientation", orientation).CTag()

	if len(sh.rowBreaks) > 0 {
		x.OTag("+rowBreaks")
		writeBreaks(x, sh.rowBreaks)
		x.CTag()
	}
	if len(sh.colBreaks) > 0 {
		x.OTag("+colBreaks")
		writeBreaks(x, sh.colBreaks)
		x.CTag()
	}

	if ignored := w.ignored[i]; !ignored.empty() {
		x.OTag("+ignoredErrors")
		for _, b := range ignored.buckets {
			x.OTag("+ignoredError").Attr("sqref", b.sqref())
			writeIgnoredFlags(x, b.flags)
			x.CTag()
		}
		x.CTag()
	}

	x.CTag() // worksheet

	w.pkg.AddPart(abspath, ctWorksheet, bb.Bytes())
	return rid, nil
}

func writeSheetViews(x *xml.Writer, views []*SheetView) error {
	x.OTag("+sheetViews")
	for _, sv := range views {
		x.OTag("+sheetView")
		if sv.TabSelected != nil {
			x.Attr("tabSelected", boolAttr(*sv.TabSelected))
		}
		if sv.ShowRuler != nil {
			x.Attr("showRuler", boolAttr(*sv.ShowRuler))
		}
		x.Attr("workbookViewId", 0)

		if p := sv.Pane; p != nil {
			x.OTag("+pane")
			if p.XSplit != nil {
				x.Attr("xSplit", *p.XSplit)
			}
			if p.YSplit != nil {
				x.Attr("ySplit", *p.YSplit)
			}
			if p.TopLeftCell != "" {
				x.Attr("topLeftCell", p.TopLeftCell)
			}
			if p.ActivePane != nil {
				v, err := p.ActivePane.xmlValue()
				if err != nil {
					return err
				}
				x.Attr("activePane", v)
			}
			if p.State != nil {
				v, err := p.State.xmlValue()
				if err != nil {
					return err
				}
				x.Attr("state", v)
			}
			x.CTag()
		}

		for _, sel := range sv.selections {
			v, err := sel.ActivePane.xmlValue()
			if err != nil {
				return err
			}
			x.OTag("+selection").Attr("pane", v)
			if sel.ActiveCell != "" {
				x.Attr("activeCell", sel.ActiveCell).Attr("sqref", sel.ActiveCell)
			}
			x.CTag()
		}
		x.CTag() // sheetView
	}
	x.CTag()
	return nil
}

func writeBreaks(x *xml.Writer, breaks []PageBreak) {
	manual := 0
	for _, b := range breaks {
		if b.Manual {
			manual++
		}
	}
	x.Attr("count", len(breaks)).Attr("manualBreakCount", manual)
	for _, b := range breaks {
		x.OTag("+brk").Attr("id", b.ID)
		if b.Min > 0 {
			x.Attr("min", b.Min)
		}
		if b.Max > 0 {
			x.Attr("max", b.Max)
		}
		if b.Manual {
			x.Attr("man", 1)
		}
		if b.PivotCreated {
			x.Attr("pt", 1)
		}
		x.CTag()
	}
}

func writeIgnoredFlags(x *xml.Writer, f IgnoredErrors) {
	if f.EvalError {
		x.Attr("evalError", 1)
	}
	if f.TwoDigitTextYear {
		x.Attr("twoDigitTextYear", 1)
	}
	if f.NumberStoredAsText {
		x.Attr("numberStoredAsText", 1)
	}
	if f.Formula {
		x.Attr("formula", 1)
	}
	if f.FormulaRange {
		x.Attr("formulaRange", 1)
	}
	if f.UnlockedFormula {
		x.Attr("unlockedFormula", 1)
	}
	if f.EmptyCellReference {
		x.Attr("emptyCellReference", 1)
	}
	if f.ListDataValidation {
		x.Attr("listDataValidation", 1)
	}
	if f.CalculatedColumn {
		x.Attr("calculatedColumn", 1)
	}
}

func boolAttr(v bool) int {
	if v {
		return 1
	}
	return 0
}

func enumerate[M ~map[K]V, K constraints.Ordered, V any](m M, callback func(k K, v V) error) error {
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		err := callback(k, m[k])
		if err != nil {
			return err
		}
	}
	return nil
}
