package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir is a temporary directory, deleted with everything in it once its
// work is done.
//
// Like NamedFile it lives under a real path and its removal rests on
// Remove (or the finalizer backstop) running; defer Remove in the scope
// that created it.
type Dir struct {
	path string
}

// NewDir creates a temporary directory in the default directory for
// temporary files.
func NewDir() (*Dir, error) {
	return NewDirIn(os.TempDir())
}

// NewDirIn creates a temporary directory within 'dir'.
func NewDirIn(dir string) (*Dir, error) {
	return newDir(dir, "", "", candidateLength)
}

func newDir(dir, prefix, suffix string, strlen int) (*Dir, error) {
	for {
		path := filepath.Join(dir, prefix+nextCandidate(strlen)+suffix)
		err := os.Mkdir(path, permBitsDir)
		switch {
		case err == nil:
			d := &Dir{path: path}
			runtime.SetFinalizer(d, (*Dir).abandon)
			return d, nil
		case os.IsExist(err):
			continue // name collision, roll a new one
		default:
			return nil, err
		}
	}
}

func (d *Dir) abandon() {
	if path := d.consume(); path != "" {
		os.RemoveAll(path)
	}
}

func (d *Dir) consume() string {
	path := d.path
	if path == "" {
		return ""
	}
	d.path = ""
	runtime.SetFinalizer(d, nil)
	return path
}

// Path returns the directory's path, or "" once it has been consumed.
func (d *Dir) Path() string {
	return d.path
}

// Remove deletes the directory and all of its contents.
func (d *Dir) Remove() error {
	path := d.consume()
	if path == "" {
		return ErrConsumed
	}
	return os.RemoveAll(path)
}

// Detach relinquishes the path to the caller, who thereby assumes the
// responsibility of eventually deleting the directory.
func (d *Dir) Detach() string {
	return d.consume()
}
