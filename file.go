package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"
)

// File is an unnamed temporary file.
//
// This variant is reliable even in the presence of a pathological
// temporary file cleaner, because there is no path through which it
// could be found, deleted, or exchanged.
//
// Deletion is the operating system's business, not this package's.
//
// Linux >= 3.11: the file is never linked into the filesystem, so it
// cannot be leaked.
//
// Other *nix: the file is unlinked before creation returns. The OS
// deletes the storage when the last open handle to it is closed.
//
// Windows: the file is marked delete-on-close and, again, will be
// deleted when the last open handle to it is closed. Unlike on the
// *nix operating systems its name remains visible until then.
type File struct {
	*os.File
}

// New creates an unnamed temporary file in the default directory for
// temporary files.
func New() (*File, error) {
	return NewIn(os.TempDir())
}

// NewIn creates an unnamed temporary file on the filesystem holding 'dir'.
func NewIn(dir string) (*File, error) {
	file, err := createAnonymous(dir)
	if err != nil {
		return nil, err
	}
	return &File{File: file}, nil
}

// Shared creates one unnamed temporary file opened 'count' times,
// in the default directory for temporary files.
//
// All returned handles refer to the same underlying storage, with
// independent read/write offsets. Useful if you need multiple seek
// positions into the same scratch data. This works on every supported
// operating system; prefer it over Reopen in portable code.
//
// Either all 'count' handles are returned, or none: on any failure the
// handles opened so far are closed again before the error is returned.
func Shared(count int) ([]*File, error) {
	return SharedIn(os.TempDir(), count)
}

// SharedIn is Shared, on the filesystem holding 'dir'.
func SharedIn(dir string, count int) ([]*File, error) {
	files, err := createAnonymousShared(dir, count)
	if err != nil {
		return nil, err
	}
	wrapped := make([]*File, len(files))
	for i := range files {
		wrapped[i] = &File{File: files[i]}
	}
	return wrapped, nil
}

// Reopen yields another handle to the same unnamed file,
// with an independent read/write offset.
//
// Merely duplicating the file descriptor would not do: duplicates share
// one offset. Linux and Windows can reopen a handle as a fresh one; the
// other unices cannot, and get ErrUnsupported. Use Shared where you
// need this cross-platform.
func (f *File) Reopen() (*File, error) {
	file, err := reopenAnonymous(f.File)
	if err != nil {
		return nil, err
	}
	return &File{File: file}, nil
}

// Len is the current size of the file in bytes.
func (f *File) Len() (int64, error) {
	finfo, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return finfo.Size(), nil
}

// SizeWillBe reserves space on disk for the file's anticipated contents.
func (f *File) SizeWillBe(numBytes int64) error {
	return reserveSize(f.File, numBytes)
}
