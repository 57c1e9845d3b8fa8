package tempfile // import "blitznote.com/src/tempfile"

import (
	"io/ioutil"
	"os"
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFile(t *testing.T) {
	scratchDir, err := ioutil.TempDir("", "anon")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(scratchDir)

	Convey("File", t, func() {
		Convey("round-trips written bytes", func() {
			f, err := NewIn(scratchDir)
			So(err, ShouldBeNil)
			defer f.Close()

			n, err := f.Write([]byte("DELME"))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 5)

			_, err = f.Seek(0, 0)
			So(err, ShouldBeNil)
			buffer := make([]byte, 5)
			_, err = f.Read(buffer)
			So(err, ShouldBeNil)
			So(string(buffer), ShouldEqual, "DELME")

			size, err := f.Len()
			So(err, ShouldBeNil)
			So(size, ShouldEqual, 5)
		})

		Convey("is not in visible namespace", func() {
			f, err := NewIn(scratchDir)
			So(err, ShouldBeNil)

			if runtime.GOOS != "windows" {
				// Never linked, or already unlinked; and an empty Name
				// means there was no name to begin with.
				if name := f.Name(); name != "" {
					_, err := os.Stat(name)
					So(os.IsNotExist(err), ShouldBeTrue)
				}
				entries, err := ioutil.ReadDir(scratchDir)
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 0)
			}

			name := f.Name()
			So(f.Close(), ShouldBeNil)
			// Windows keeps the name visible while open, but commits to
			// deleting it with the last handle.
			if name != "" {
				_, err := os.Stat(name)
				So(os.IsNotExist(err), ShouldBeTrue)
			}
		})

		Convey("truncates like any regular file", func() {
			f, err := NewIn(scratchDir)
			So(err, ShouldBeNil)
			defer f.Close()

			So(f.Truncate(4096), ShouldBeNil)
			size, err := f.Len()
			So(err, ShouldBeNil)
			So(size, ShouldEqual, 4096)
		})

		Convey("reserves space beyond the threshold", func() {
			f, err := NewIn(scratchDir)
			So(err, ShouldBeNil)
			defer f.Close()

			So(f.SizeWillBe(64), ShouldBeNil)
			size, err := f.Len()
			So(err, ShouldBeNil)
			So(size, ShouldEqual, 0) // too small to bother

			So(f.SizeWillBe(reserveFileSizeThreshold+1), ShouldBeNil)
			size, err = f.Len()
			So(err, ShouldBeNil)
			So(size, ShouldEqual, reserveFileSizeThreshold+1)
		})
	})
}

func TestFileShared(t *testing.T) {
	scratchDir, err := ioutil.TempDir("", "shared")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(scratchDir)

	Convey("Shared", t, func() {
		Convey("handles observe one storage with independent offsets", func() {
			files, err := SharedIn(scratchDir, 3)
			So(err, ShouldBeNil)
			So(len(files), ShouldEqual, 3)
			defer func() {
				for _, f := range files {
					f.Close()
				}
			}()

			_, err = files[0].Write([]byte("through handle zero"))
			So(err, ShouldBeNil)

			// handle 1 still sits at offset 0
			buffer := make([]byte, 19)
			_, err = files[1].Read(buffer)
			So(err, ShouldBeNil)
			So(string(buffer), ShouldEqual, "through handle zero")

			size, err := files[2].Len()
			So(err, ShouldBeNil)
			So(size, ShouldEqual, 19)
		})

		Convey("leaves nothing behind in the directory", func() {
			if runtime.GOOS == "windows" {
				return // the transient name lives until the last Close
			}
			files, err := SharedIn(scratchDir, 2)
			So(err, ShouldBeNil)
			defer func() {
				for _, f := range files {
					f.Close()
				}
			}()

			entries, err := ioutil.ReadDir(scratchDir)
			So(err, ShouldBeNil)
			So(len(entries), ShouldEqual, 0)
		})

		Convey("a count of zero yields no handles", func() {
			files, err := SharedIn(scratchDir, 0)
			So(err, ShouldBeNil)
			So(len(files), ShouldEqual, 0)
		})
	})
}

func TestFileReopen(t *testing.T) {
	scratchDir, err := ioutil.TempDir("", "reopen")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(scratchDir)

	Convey("Reopen", t, func() {
		f, err := NewIn(scratchDir)
		So(err, ShouldBeNil)
		defer f.Close()

		switch runtime.GOOS {
		case "linux", "windows":
			Convey("yields a second handle with its own offset", func() {
				_, err := f.Write([]byte("offsets"))
				So(err, ShouldBeNil)

				dup, err := f.Reopen()
				So(err, ShouldBeNil)
				defer dup.Close()

				buffer := make([]byte, 7)
				_, err = dup.Read(buffer)
				So(err, ShouldBeNil)
				So(string(buffer), ShouldEqual, "offsets")

				// the original still appends where it left off
				_, err = f.Write([]byte(" kept"))
				So(err, ShouldBeNil)
				size, err := dup.Len()
				So(err, ShouldBeNil)
				So(size, ShouldEqual, 12)
			})
		default:
			Convey("is not available here", func() {
				dup, err := f.Reopen()
				So(dup, ShouldBeNil)
				So(err, ShouldEqual, ErrUnsupported)
			})
		}
	})
}
