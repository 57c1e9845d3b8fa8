//go:build linux
// +build linux

package tempfile // import "blitznote.com/src/tempfile"

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/pkg/errors"

	. "github.com/smartystreets/goconvey/convey"
)

func countOpenFDs(t *testing.T) int {
	entries, err := ioutil.ReadDir("/proc/self/fd")
	if err != nil {
		t.Fatal(err)
	}
	return len(entries)
}

func TestAnonymousSharedAllOrNothing(t *testing.T) {
	scratchDir, err := ioutil.TempDir("", "allornothing")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(scratchDir)

	Convey("createAnonymousShared, when one duplication fails,", t, func() {
		var (
			produced []*os.File
			calls    int
		)
		defer func(orig func(*os.File) (*os.File, error)) { reopenAnonymous = orig }(reopenAnonymous)
		reopenAnonymous = func(file *os.File) (*os.File, error) {
			calls++
			if calls == 2 {
				return nil, errors.New("duplication denied for this test")
			}
			dup, err := reopenThroughProcfs(file)
			if err == nil {
				produced = append(produced, dup)
			}
			return dup, err
		}

		before := countOpenFDs(t)
		files, err := createAnonymousShared(scratchDir, 3)
		So(files, ShouldBeNil)
		So(err, ShouldNotBeNil)
		So(calls, ShouldEqual, 2)

		// every handle produced before the failure has been closed again,
		// the initial one included
		So(len(produced), ShouldEqual, 1)
		_, werr := produced[0].Write([]byte("x"))
		So(werr, ShouldNotBeNil)
		So(countOpenFDs(t), ShouldEqual, before)
	})
}
