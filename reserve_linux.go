// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux
// +build linux

package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"

	"golang.org/x/sys/unix"
)

// reserveSize asks the filesystem to reserve space for the file's contents.
// This could result in a sparse file (if you wrote less than anticipated)
// or shrink the file.
func reserveSize(file *os.File, numBytes int64) error {
	if numBytes <= reserveFileSizeThreshold {
		return nil
	}

	fd := int(file.Fd())
	err := unix.Fallocate(fd, 0, 0, numBytes)
	if err == unix.EOPNOTSUPP {
		return nil
	}
	if err != nil {
		return err
	}

	// These are best-effort, so we don't care about any errors.
	_ = unix.Fadvise(fd, 0, numBytes, unix.FADV_WILLNEED)
	_ = unix.Fadvise(fd, 0, numBytes, unix.FADV_SEQUENTIAL)
	return nil
}
