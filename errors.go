package tempfile // import "blitznote.com/src/tempfile"

import (
	"github.com/pkg/errors"
)

// Happen when a lifecycle operation cannot proceed.
var (
	// ErrConsumed is returned on any use of a NamedFile (or Dir) after
	// Close, Persist, Detach, or Remove already ran on it.
	ErrConsumed = errors.New("temporary file has already been consumed")

	// ErrUnsupported is returned where the operating system lacks a
	// needed capability, for example Reopen on the BSDs and Darwin.
	ErrUnsupported = errors.New("not supported on this operating system")

	// ErrIllegalAffix is returned by Builder for a Prefix or Suffix
	// that must not become part of a filename.
	ErrIllegalAffix = errors.New("prefix or suffix contains runes unsuitable for filenames")
)

// PersistError is returned when persisting a temporary file failed.
//
// It retains the affected NamedFile, which remains open, intact, and
// subject to automatic deletion as before. No contents are lost.
type PersistError struct {
	// The underlying error, as received from the operating system.
	Err error
	// The temporary file that could not be persisted.
	File *NamedFile
}

func (e *PersistError) Error() string {
	return "failed to persist temporary file: " + e.Err.Error()
}

// Cause returns the underlying error.
func (e *PersistError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *PersistError) Unwrap() error { return e.Err }

// IsCrossDevice tells whether 'err' is the filesystem's refusal to move
// a file across filesystem boundaries.
//
// Persisting to a different filesystem than the temporary file's cannot
// be done atomically; on this error, copy to the destination and Close.
func IsCrossDevice(err error) bool {
	return isCrossDevice(err)
}
