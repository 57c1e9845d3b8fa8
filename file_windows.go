// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"
	"path/filepath"
	"runtime"
	"syscall"

	"golang.org/x/sys/windows"
)

var (
	kernel32DLL    = windows.NewLazySystemDLL("kernel32.dll")
	procReOpenFile = kernel32DLL.NewProc("ReOpenFile")
)

const (
	// DELETE in the access mask, and FILE_SHARE_DELETE in the share mode,
	// so a file can be renamed or removed while our handle stays open.
	// The Go runtime's own open path shares reads and writes only.
	rwdAccess = windows.GENERIC_READ | windows.GENERIC_WRITE | windows.DELETE
	shareAll  = windows.FILE_SHARE_READ | windows.FILE_SHARE_WRITE | windows.FILE_SHARE_DELETE

	deleteOnClose = windows.FILE_ATTRIBUTE_TEMPORARY | windows.FILE_FLAG_DELETE_ON_CLOSE
)

// createFileExclusive creates a file at 'path' in one atomic call, which
// succeeds only if nothing bears that name yet.
func createFileExclusive(path string, attrs uint32) (*os.File, error) {
	handle, err := windows.CreateFile(
		windows.StringToUTF16Ptr(path),
		rwdAccess,
		shareAll,
		nil,
		windows.CREATE_NEW, // fail if the name already exists
		attrs,
		0,
	)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return os.NewFile(uintptr(handle), path), nil
}

func openExclusive(path string) (*os.File, error) {
	return createFileExclusive(path, windows.FILE_ATTRIBUTE_NORMAL)
}

// createAnonymous creates a file marked delete-on-close. Its name remains
// transiently visible, but the deletion is the kernel's promise and happens
// once the last handle to it, ours or a duplicate, has been closed. Nothing
// holding only a handle can talk the kernel out of it again.
func createAnonymous(dir string) (*os.File, error) {
	for {
		path := filepath.Join(dir, nextCandidate(candidateLength))
		file, err := createFileExclusive(path, deleteOnClose)
		if err != nil {
			if os.IsExist(err) {
				continue // name collision, roll a new one
			}
			return nil, err
		}
		return file, nil
	}
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
var reopenAnonymous func(*os.File) (*os.File, error) = reopenHandle

// reopenHandle works on the handle alone; the transient name plays no
// part, and the delete-on-close mark carries over.
func reopenHandle(file *os.File) (*os.File, error) {
	r0, _, e1 := procReOpenFile.Call(
		file.Fd(),
		uintptr(uint32(rwdAccess)),
		uintptr(uint32(shareAll)),
		uintptr(uint32(windows.FILE_FLAG_DELETE_ON_CLOSE)),
	)
	runtime.KeepAlive(file)
	handle := windows.Handle(r0)
	if handle == windows.InvalidHandle {
		if e1 != nil && e1 != syscall.Errno(0) {
			return nil, e1
		}
		return nil, ErrUnsupported
	}
	return os.NewFile(uintptr(handle), file.Name()), nil
}
