package tempfile // import "blitznote.com/src/tempfile"

import (
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Builder creates temporary files and directories with recognizable names,
// shaped Prefix + <random> + Suffix.
//
// The zero value is valid and equivalent to NewNamed/New/NewDir.
// Affixes make names discoverable, by you and by everything else on the
// machine. The random middle part still makes them unpredictable.
type Builder struct {
	// Prefix and Suffix frame the random part of every candidate name.
	Prefix, Suffix string
	// Dir is the parent directory. Empty means the host's default
	// directory for temporary files.
	Dir string
	// RandLen overrides the length of the random part. 0 means the default.
	RandLen int
}

func (b Builder) dir() string {
	if b.Dir == "" {
		return os.TempDir()
	}
	return b.Dir
}

func (b Builder) strlen() int {
	if b.RandLen <= 0 {
		return candidateLength
	}
	return b.RandLen
}

// An affix must remain one path element, and must not smuggle in runes
// that the filename screening would reject.
func (b Builder) check() error {
	nfc := norm.NFC
	for _, affix := range []string{b.Prefix, b.Suffix} {
		if strings.ContainsRune(affix, '/') ||
			strings.ContainsRune(affix, os.PathSeparator) {
			return ErrIllegalAffix
		}
		if !IsAcceptableAffix(affix, nil, &nfc) {
			return ErrIllegalAffix
		}
	}
	return nil
}

// CreateNamed creates a path-visible temporary file like NewNamedIn,
// under a name carrying the Builder's affixes.
func (b Builder) CreateNamed() (*NamedFile, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return newNamed(b.dir(), b.Prefix, b.Suffix, b.strlen())
}

// Create creates an unnamed temporary file like NewIn.
//
// An unnamed file has no name the affixes could shape; only Dir applies.
func (b Builder) Create() (*File, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return NewIn(b.dir())
}

// CreateDir creates a temporary directory like NewDirIn,
// under a name carrying the Builder's affixes.
func (b Builder) CreateDir() (*Dir, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return newDir(b.dir(), b.Prefix, b.Suffix, b.strlen())
}
