package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"
	"path/filepath"
	"runtime"
)

// NamedFile is a temporary file visible under a real path.
//
// Unlike File this variant is *not* reliable in the presence of a
// pathological temporary file cleaner: anything that can observe the
// path can delete or exchange it.
//
// Its life ends with exactly one of Close, Persist, or Detach. Defer
// Close in the scope that created the file; a finalizer backstop
// deletes abandoned files eventually, but its timing is up to the
// garbage collector and any errors go unreported.
type NamedFile struct {
	inner *namedFileInner
}

type namedFileInner struct {
	file *os.File
	path string
}

// NewNamed creates a new temporary file in the default directory for
// temporary files.
func NewNamed() (*NamedFile, error) {
	return NewNamedIn(os.TempDir())
}

// NewNamedIn creates a new temporary file in the given directory.
func NewNamedIn(dir string) (*NamedFile, error) {
	return newNamed(dir, "", "", candidateLength)
}

func newNamed(dir, prefix, suffix string, strlen int) (*NamedFile, error) {
	file, path, err := createNamedAt(dir, prefix, suffix, strlen)
	if err != nil {
		return nil, err
	}
	f := &NamedFile{inner: &namedFileInner{file: file, path: path}}
	runtime.SetFinalizer(f, (*NamedFile).abandon)
	return f, nil
}

// Creates a file under a fresh unpredictable name.
// Only a taken name is retried; everything else is fatal.
func createNamedAt(dir, prefix, suffix string, strlen int) (*os.File, string, error) {
	for {
		path := filepath.Join(dir, prefix+nextCandidate(strlen)+suffix)
		file, err := openExclusive(path)
		switch {
		case err == nil:
			return file, path, nil
		case os.IsExist(err):
			continue // name collision, roll a new one
		default:
			return nil, "", err
		}
	}
}

// Takes the inner state, leaving the file consumed. Second callers get nil.
func (f *NamedFile) consume() *namedFileInner {
	inner := f.inner
	if inner == nil {
		return nil
	}
	f.inner = nil
	runtime.SetFinalizer(f, nil)
	return inner
}

// Runs without a caller present; nobody is left to receive any error.
func (f *NamedFile) abandon() {
	if inner := f.consume(); inner != nil {
		inner.file.Close()
		os.Remove(inner.path)
	}
}

// Path returns the temporary file's path,
// or "" once the file has been consumed.
func (f *NamedFile) Path() string {
	if f.inner == nil {
		return ""
	}
	return f.inner.path
}

// Stat queries metadata about the underlying file.
func (f *NamedFile) Stat() (os.FileInfo, error) {
	if f.inner == nil {
		return nil, ErrConsumed
	}
	return f.inner.file.Stat()
}

// Len is the current size of the file in bytes.
func (f *NamedFile) Len() (int64, error) {
	finfo, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return finfo.Size(), nil
}

// Truncate resizes the file to 'size' bytes.
func (f *NamedFile) Truncate(size int64) error {
	if f.inner == nil {
		return ErrConsumed
	}
	return f.inner.file.Truncate(size)
}

// SizeWillBe reserves space on disk for the file's anticipated contents.
func (f *NamedFile) SizeWillBe(numBytes int64) error {
	if f.inner == nil {
		return ErrConsumed
	}
	return reserveSize(f.inner.file, numBytes)
}

func (f *NamedFile) Read(p []byte) (int, error) {
	if f.inner == nil {
		return 0, ErrConsumed
	}
	return f.inner.file.Read(p)
}

func (f *NamedFile) ReadAt(p []byte, off int64) (int, error) {
	if f.inner == nil {
		return 0, ErrConsumed
	}
	return f.inner.file.ReadAt(p, off)
}

func (f *NamedFile) Write(p []byte) (int, error) {
	if f.inner == nil {
		return 0, ErrConsumed
	}
	return f.inner.file.Write(p)
}

func (f *NamedFile) Seek(offset int64, whence int) (int64, error) {
	if f.inner == nil {
		return 0, ErrConsumed
	}
	return f.inner.file.Seek(offset, whence)
}

// Sync flushes the file's contents to stable storage.
func (f *NamedFile) Sync() error {
	if f.inner == nil {
		return ErrConsumed
	}
	return f.inner.file.Sync()
}

// Close closes and removes the temporary file.
//
// Use this if you want to learn about errors in deleting the file,
// for example after something else already claimed or removed the path.
func (f *NamedFile) Close() error {
	inner := f.consume()
	if inner == nil {
		return ErrConsumed
	}
	inner.file.Close()
	return os.Remove(inner.path)
}

// Persist moves the temporary file to 'newpath'.
//
// Any file already at 'newpath' will be replaced atomically; the rename
// either happens in full or not at all. On success the returned handle
// remains open for reading and writing, and nothing will delete the file
// any more. On failure the NamedFile is returned within the error,
// unconsumed and usable; the filesystem has not been altered.
//
// Temporary files cannot be persisted across filesystem boundaries.
// See IsCrossDevice for detecting that case.
func (f *NamedFile) Persist(newpath string) (*os.File, error) {
	inner := f.inner
	if inner == nil {
		return nil, ErrConsumed
	}
	if err := os.Rename(inner.path, newpath); err != nil {
		return nil, &PersistError{Err: err, File: f}
	}
	f.consume()
	return inner.file, nil
}

// Detach relinquishes the path to the caller, who thereby assumes the
// responsibility of eventually deleting the file. Closes the handle;
// nothing of this package's automatic cleanup remains in effect.
func (f *NamedFile) Detach() string {
	inner := f.consume()
	if inner == nil {
		return ""
	}
	inner.file.Close()
	return inner.path
}
