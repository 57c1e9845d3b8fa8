// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !windows
// +build !linux,!windows

package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"
)

// The BSDs and Darwin have no way of creating a file without a name, so the
// name is removed right after creation, before anything else can see the file.
func createAnonymous(dir string) (*os.File, error) {
	return createUnlinked(dir)
}

func createAnonymousShared(dir string, count int) ([]*os.File, error) {
	return sharedUnlinked(dir, count)
}

// Without /proc there is no reliable way to derive an independent handle
// from an open file, and the name is long gone.
var reopenAnonymous func(*os.File) (*os.File, error) = reopenUnsupported

func reopenUnsupported(file *os.File) (*os.File, error) {
	return nil, ErrUnsupported
}
