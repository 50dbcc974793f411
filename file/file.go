package file

import (
	"io"
	"os"

	"go.dw1.io/mmapfile"

	"go.dw1.io/xregexp/cast"
)

var (
	_ io.Reader   = (*File)(nil)
	_ io.ReaderAt = (*File)(nil)
	_ io.Closer   = (*File)(nil)
)

// File wraps either a memory-mapped file (preferred) or a plain os.File when
// mmap is unavailable on the current platform.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps the file into memory when supported; otherwise it falls back to
// os.Open. Empty files and special files (pipes, devices) cannot be mapped
// and always use the fallback.
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

// Read reads up to len(p) bytes, advancing the current offset.
func (f *File) Read(p []byte) (int, error) {
	if f.mm != nil {
		return f.mm.Read(p)
	}

	return f.os.Read(p)
}

// ReadAt reads starting at absolute offset without moving the current offset.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if f.mm != nil {
		return f.mm.ReadAt(p, off)
	}

	return f.os.ReadAt(p, off)
}

// Contents returns the whole file. For mapped files the slice aliases the
// mapping and is only valid until Close.
func (f *File) Contents() ([]byte, error) {
	if f.mm != nil {
		return f.mm.Bytes(), nil
	}

	return io.ReadAll(f.os)
}

// Mapped reports whether the file is memory-mapped.
func (f *File) Mapped() bool {
	return f.mm != nil
}

// Len returns the mapped length, or the file size for the os.File fallback.
func (f *File) Len() (int, error) {
	if f.mm != nil {
		return f.mm.Len(), nil
	}

	info, err := f.os.Stat()
	if err != nil {
		return 0, err
	}

	return cast.To[int](info.Size())
}

// Name returns the original file name.
func (f *File) Name() string {
	if f.mm != nil {
		return f.mm.Name()
	}

	return f.os.Name()
}

// Close releases resources held by the file.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}
