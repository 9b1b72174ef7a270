package xl

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage keeps written blobs in memory, in write order.
type memStorage struct {
	paths []string
	blobs map[string][]byte
}

func (ms *memStorage) WriteBlob(path string, blob []byte) error {
	if ms.blobs == nil {
		ms.blobs = map[string][]byte{}
	}
	ms.paths = append(ms.paths, path)
	ms.blobs[path] = blob
	return nil
}

type contentTypesDoc struct {
	Defaults []struct {
		Extension   string `xml:"Extension,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Default"`
	Overrides []struct {
		PartName    string `xml:"PartName,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Override"`
}

type relsDoc struct {
	Items []struct {
		ID         string `xml:"Id,attr"`
		Type       string `xml:"Type,attr"`
		Target     string `xml:"Target,attr"`
		TargetMode string `xml:"TargetMode,attr"`
	} `xml:"Relationship"`
}

func TestPackage_WriteTo(t *testing.T) {
	pkg := &Package{}
	pkg.AddPart("xl/workbook.xml", ctWorkbook, []byte("<workbook/>"))
	pkg.AddPart("xl/worksheets/sheet1.xml", ctWorksheet, []byte("<worksheet/>"))
	pkg.AddPart("custom/data.xml", ctXML, []byte("<data/>"))

	assert.Equal(t, "rId1", pkg.AddRelationship("", relOfficeDocument, "xl/workbook.xml"))
	assert.Equal(t, "rId2", pkg.AddRelationship("xl/workbook.xml", relWorksheet, "xl/worksheets/sheet1.xml"))
	assert.Equal(t, "rId3", pkg.AddExternalRelationship("xl/worksheets/sheet1.xml", relHyperlink, "https://example.com/?a=1&b=2"))

	ms := &memStorage{}
	require.NoError(t, pkg.WriteTo(ms))

	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/_rels/workbook.xml.rels",
		"xl/worksheets/_rels/sheet1.xml.rels",
		"xl/workbook.xml",
		"xl/worksheets/sheet1.xml",
		"custom/data.xml",
	}, ms.paths)

	var ct contentTypesDoc
	require.NoError(t, xml.Unmarshal(ms.blobs["[Content_Types].xml"], &ct))
	require.Len(t, ct.Defaults, 2)
	assert.Equal(t, "rels", ct.Defaults[0].Extension)
	assert.Equal(t, "xml", ct.Defaults[1].Extension)
	require.Len(t, ct.Overrides, 2)
	assert.Equal(t, "/xl/workbook.xml", ct.Overrides[0].PartName)
	assert.Equal(t, ctWorkbook, ct.Overrides[0].ContentType)
	assert.Equal(t, "/xl/worksheets/sheet1.xml", ct.Overrides[1].PartName)

	var root relsDoc
	require.NoError(t, xml.Unmarshal(ms.blobs["_rels/.rels"], &root))
	require.Len(t, root.Items, 1)
	assert.Equal(t, "xl/workbook.xml", root.Items[0].Target)

	var wb relsDoc
	require.NoError(t, xml.Unmarshal(ms.blobs["xl/_rels/workbook.xml.rels"], &wb))
	require.Len(t, wb.Items, 1)
	assert.Equal(t, "rId2", wb.Items[0].ID)
	assert.Equal(t, "worksheets/sheet1.xml", wb.Items[0].Target)

	var sheet relsDoc
	require.NoError(t, xml.Unmarshal(ms.blobs["xl/worksheets/_rels/sheet1.xml.rels"], &sheet))
	require.Len(t, sheet.Items, 1)
	assert.Equal(t, "https://example.com/?a=1&b=2", sheet.Items[0].Target)
	assert.Equal(t, "External", sheet.Items[0].TargetMode)
}

func TestRelativeTarget(t *testing.T) {
	assert.Equal(t, "xl/workbook.xml", relativeTarget("", "xl/workbook.xml"))
	assert.Equal(t, "styles.xml", relativeTarget("xl/workbook.xml", "xl/styles.xml"))
	assert.Equal(t, "/docProps/core.xml", relativeTarget("xl/workbook.xml", "docProps/core.xml"))
}

func TestZipStorage(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	for _, level := range []CompressionLevel{NoCompression, Balanced, Maximum} {
		bb := bytes.Buffer{}
		zs := NewZipStorage(&bb, level, ts)
		require.NoError(t, zs.WriteBlob("/a/b.xml", []byte("<b/>")))
		require.NoError(t, zs.Close())

		zr, err := zip.NewReader(bytes.NewReader(bb.Bytes()), int64(bb.Len()))
		require.NoError(t, err)
		require.Len(t, zr.File, 1)
		f := zr.File[0]
		assert.Equal(t, "a/b.xml", f.Name)
		if level == NoCompression {
			assert.Equal(t, zip.Store, f.Method)
		} else {
			assert.Equal(t, zip.Deflate, f.Method)
		}
		assert.True(t, ts.Equal(f.Modified.UTC()), "modified %v", f.Modified)
	}
}

func TestDirStorage(t *testing.T) {
	dir := t.TempDir()
	ds := NewDirStorage(dir)
	require.NoError(t, ds.WriteBlob("xl/worksheets/sheet1.xml", []byte("<worksheet/>")))

	data, err := os.ReadFile(filepath.Join(dir, "xl", "worksheets", "sheet1.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<worksheet/>", string(data))
}
