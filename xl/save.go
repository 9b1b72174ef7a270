package xl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"
)

// SaveOptions controls how a workbook is packaged.
type SaveOptions struct {
	Compression CompressionLevel
	// Timestamp is written as the creation and modification time of the
	// document and of every zip entry. Zero means the current time.
	Timestamp time.Time
}

func DefaultSaveOptions() SaveOptions {
	return SaveOptions{Compression: Balanced}
}

// resolved fills in a zero Timestamp, so every part of one save shares it.
func (o SaveOptions) resolved() SaveOptions {
	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now()
	}
	return o
}

// Save writes wb as an .xlsx package to w.
//
// The package is assembled and zipped in memory and then handed to w in a
// single Write call, so w does not need to support seeking and receives
// nothing when assembly fails.
func Save(wb *Workbook, w io.Writer, opts SaveOptions) error {
	if w == nil {
		return ErrNotWritable
	}

	opts = opts.resolved()
	pkg, err := newWriter(opts).assemble(wb)
	if err != nil {
		return err
	}

	bb := bytes.Buffer{}
	zs := NewZipStorage(&bb, opts.Compression, opts.Timestamp)
	err = pkg.WriteTo(zs)
	if err != nil {
		return err
	}
	err = zs.Close()
	if err != nil {
		return err
	}

	_, err = w.Write(bb.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotWritable, err)
	}
	return nil
}

// Save writes the workbook to w with the default options.
func (wb *Workbook) Save(w io.Writer) error {
	return Save(wb, w, DefaultSaveOptions())
}

// SaveFile writes the workbook to the named file, replacing it if it exists.
func (wb *Workbook) SaveFile(name string) error {
	bb := bytes.Buffer{}
	err := wb.Save(&bb)
	if err != nil {
		return err
	}
	return os.WriteFile(name, bb.Bytes(), 0666)
}

// SaveDir writes the parts of the workbook as plain files below dir, which
// is handy for inspecting the generated XML.
func (wb *Workbook) SaveDir(dir string, opts SaveOptions) error {
	pkg, err := newWriter(opts.resolved()).assemble(wb)
	if err != nil {
		return err
	}
	return pkg.WriteTo(NewDirStorage(dir))
}
