// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"
)

// openExclusive creates the file at 'path' in one atomic syscall, which
// succeeds only if nothing bears that name yet. O_EXCL closes the window
// in which a "check, then create" sequence could be baited onto a planted
// file or symlink.
func openExclusive(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, permBitsFile)
}
