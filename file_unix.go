// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"

	"github.com/pkg/errors"
)

// createUnlinked creates a file under a random name and removes that name
// again while the handle is still open. The kernel keeps the storage around
// until the last handle to it has been closed.
//
// On Linux this is the degradation for kernels or filesystems without
// O_TMPFILE; on the other unices it is the best available method.
func createUnlinked(dir string) (*os.File, error) {
	file, path, err := createNamedAt(dir, "", "", candidateLength)
	if err != nil {
		return nil, err
	}
	if derr := os.Remove(path); derr != nil {
		file.Close()
		return nil, errors.Wrap(derr, "unable to unlink temporary file")
	}
	return file, nil
}

// Opens an existing file for reading and writing.
//
// Will be overwritten in tests that need the open to fail.
var openExisting func(path string) (*os.File, error) = openExistingFile

func openExistingFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR, permBitsFile)
}

// sharedUnlinked opens one fresh file 'count' times through its name, and
// only then unlinks the name. Reopening by path is the one portable way to
// get independent offsets; between the opens the name is briefly visible,
// so every handle is checked to still denote the very file created first.
func sharedUnlinked(dir string, count int) ([]*os.File, error) {
	if count <= 0 {
		return nil, nil
	}

	first, path, err := createNamedAt(dir, "", "", candidateLength)
	if err != nil {
		return nil, err
	}
	files := []*os.File{first}
	closeAll := func() {
		for _, file := range files {
			file.Close()
		}
	}

	finfo, err := first.Stat()
	if err != nil {
		closeAll()
		os.Remove(path)
		return nil, err
	}

	for len(files) < count {
		next, err := openExisting(path)
		if err != nil {
			closeAll()
			os.Remove(path)
			return nil, err
		}
		files = append(files, next)

		ninfo, err := next.Stat()
		if err != nil {
			closeAll()
			os.Remove(path)
			return nil, err
		}
		if !os.SameFile(finfo, ninfo) {
			// Someone exchanged the file between our opens.
			closeAll()
			os.Remove(path)
			return nil, errors.New("temporary file has been exchanged underneath us")
		}
	}

	if derr := os.Remove(path); derr != nil {
		closeAll()
		return nil, errors.Wrap(derr, "unable to unlink temporary file")
	}
	return files, nil
}
