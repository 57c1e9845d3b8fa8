//go:build !windows
// +build !windows

package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"
	"syscall"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsCrossDevice(t *testing.T) {
	Convey("IsCrossDevice", t, func() {
		rejected := &os.LinkError{Op: "rename", Old: "a", New: "b", Err: syscall.EXDEV}
		So(IsCrossDevice(rejected), ShouldBeTrue)
		So(IsCrossDevice(&PersistError{Err: rejected}), ShouldBeTrue)
		So(IsCrossDevice(os.ErrNotExist), ShouldBeFalse)
		So(IsCrossDevice(nil), ShouldBeFalse)
	})
}
