//go:build !linux
// +build !linux

package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"
)

// reserveSize asks the filesystem to reserve space for the file's contents.
// This could result in a sparse file (if you wrote less than anticipated)
// or shrink the file.
func reserveSize(file *os.File, numBytes int64) error {
	if numBytes <= reserveFileSizeThreshold {
		return nil
	}
	return file.Truncate(numBytes)
}
