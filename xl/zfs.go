package xl

import (
	"archive/zip"
	"compress/flate"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Storage is the interface for writing package parts.
// Implementations can write to ZIP archives or directory structures.
type Storage interface {
	WriteBlob(path string, blob []byte) error
}

// DirStorage writes package parts to a directory structure on disk.
// This is useful for debugging as it allows inspection of generated XML files.
type DirStorage struct {
	Dir string // Root directory path
}

// NewDirStorage creates a new directory-based storage that writes files to the specified directory.
// The directory will be created if it doesn't exist.
func NewDirStorage(dir string) *DirStorage {
	return &DirStorage{
		Dir: dir,
	}
}

// WriteBlob writes a file part to the directory structure.
// Creates any necessary parent directories automatically.
func (ds *DirStorage) WriteBlob(path string, blob []byte) error {
	path = strings.TrimPrefix(path, "/")
	fn := filepath.Join(ds.Dir, filepath.FromSlash(path))
	err := os.MkdirAll(filepath.Dir(fn), 0777)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, blob, 0666)
}

// CompressionLevel selects how zip entries are stored. The choice applies
// to every entry of a package.
type CompressionLevel int

const (
	Balanced      CompressionLevel = iota // deflate, default level
	NoCompression                         // stored entries
	Maximum                               // deflate, best compression
)

// ZipStorage writes package parts to a ZIP archive, creating a standard .xlsx file.
type ZipStorage struct {
	z        *zip.Writer
	method   uint16
	modified time.Time
}

// NewZipStorage creates a new ZIP-based storage that writes to the given writer.
// The zip writer only appends, so out does not need to be seekable.
func NewZipStorage(out io.Writer, level CompressionLevel, modified time.Time) *ZipStorage {
	zs := &ZipStorage{
		z:        zip.NewWriter(out),
		method:   zip.Deflate,
		modified: modified,
	}
	switch level {
	case NoCompression:
		zs.method = zip.Store
	case Maximum:
		zs.z.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(w, flate.BestCompression)
		})
	}
	return zs
}

// WriteBlob writes a file part to the ZIP archive.
// Each part becomes a file entry in the ZIP with the specified path.
func (zs *ZipStorage) WriteBlob(path string, blob []byte) error {
	path = strings.TrimPrefix(path, "/")
	f, err := zs.z.CreateHeader(&zip.FileHeader{
		Name:     path,
		Method:   zs.method,
		Modified: zs.modified,
	})
	if err != nil {
		return err
	}
	_, err = f.Write(blob)
	return err
}

// Close writes the central directory. Must be called after all writes are complete.
// Failure to call Close will result in an invalid/corrupted file.
func (zs *ZipStorage) Close() error {
	return zs.z.Close()
}
