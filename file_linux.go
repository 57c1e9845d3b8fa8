// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux
// +build linux

package tempfile // import "blitznote.com/src/tempfile"

import (
	"errors"
	"os"
	"runtime"
	"strconv"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
)

// Set once the running kernel turned out to predate O_TMPFILE (3.11).
var kernelLacksOTmpfile int32

// createAnonymous asks the kernel for a file that is never linked into any
// directory: there is no instant at which it could be found under a name.
// O_EXCL additionally forbids ever linking it into the namespace later.
func createAnonymous(dir string) (*os.File, error) {
	if atomic.LoadInt32(&kernelLacksOTmpfile) == 1 {
		return createUnlinked(dir)
	}

	fd, err := unix.Open(dir, unix.O_RDWR|unix.O_TMPFILE|unix.O_EXCL|unix.O_CLOEXEC, permBitsFile)
	if err == nil {
		return os.NewFile(uintptr(fd), ""), nil
	}

	// did it fail because…
	switch {
	case errors.Is(err, syscall.EISDIR): // … the kernel does not know O_TMPFILE
		// If so, don't try it again.
		atomic.StoreInt32(&kernelLacksOTmpfile, 1)
		return createUnlinked(dir)
	case errors.Is(err, syscall.EOPNOTSUPP): // … O_TMPFILE is not supported on this FS
		return createUnlinked(dir)
	case errors.Is(err, syscall.ENOENT): // … an old kernel's reading of the flag, or 'dir' is amiss
		// createUnlinked sorts the two cases out.
		return createUnlinked(dir)
	}
	return nil, &os.PathError{Op: "open", Path: dir, Err: err}
}

func createAnonymousShared(dir string, count int) ([]*os.File, error) {
	if count <= 0 {
		return nil, nil
	}

	first, err := createAnonymous(dir)
	if err != nil {
		return nil, err
	}
	files := []*os.File{first}

	for len(files) < count {
		next, err := reopenAnonymous(first)
		if err != nil {
			for _, file := range files {
				file.Close()
			}
			return nil, err
		}
		files = append(files, next)
	}
	return files, nil
}

// Yields another handle, with its own offset, to the same open file.
//
// Will be overwritten in tests that need the duplication to fail.
var reopenAnonymous func(*os.File) (*os.File, error) = reopenThroughProcfs

// reopenThroughProcfs obtains a fresh file description for the same storage.
// Nameless files can still be opened through the kernel's magic links;
// this is an open of the inode, not a link to it, so O_EXCL does not
// stand in the way.
func reopenThroughProcfs(file *os.File) (*os.File, error) {
	reopened, err := os.OpenFile("/proc/self/fd/"+strconv.Itoa(int(file.Fd())), os.O_RDWR, permBitsFile)
	runtime.KeepAlive(file)
	if err != nil {
		return nil, err
	}
	return reopened, nil
}
