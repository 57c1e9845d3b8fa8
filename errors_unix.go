//go:build !windows
// +build !windows

package tempfile // import "blitznote.com/src/tempfile"

import (
	"errors"
	"syscall"
)

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
