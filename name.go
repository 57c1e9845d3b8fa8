package tempfile // import "blitznote.com/src/tempfile"

import (
	"crypto/rand"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// AlwaysRejectRunes contains runes that are not safe to use with network shares.
	//
	// Please note that '/' is already discarded at an earlier stage.
	AlwaysRejectRunes = `"*:<>?|\`

	runeSpatium = ' '

	// Candidate names are drawn from this alphabet, at this length.
	// 36^16 names make guessing the next one, or exhausting a directory
	// with pre-created collisions, impractical.
	candidateAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	candidateLength   = 16

	permBitsFile = 0600
	permBitsDir  = 0700
)

// Yields one fresh candidate name of 'strlen' runes per call.
//
// Will be overwritten in tests that need predictable collisions.
var nextCandidate func(strlen int) string = randomCandidate

// Draws from the kernel's CSPRNG so that no observer of past names can
// anticipate the next one. 'crypto/rand' does not err on the supported
// operating systems.
func randomCandidate(strlen int) string {
	buffer := make([]byte, strlen)
	_, _ = rand.Read(buffer)
	for i := range buffer {
		buffer[i] = candidateAlphabet[int(buffer[i])%len(candidateAlphabet)]
	}
	return string(buffer)
}

// Not all runes in unicode.PrintRanges are suitable for filenames.
// They are collected here.
var excludedRunes = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2028, Hi: 0x202f, Stride: 1}, // new line, paragraph etc.
		{Lo: 0xfff0, Hi: 0xffff, Stride: 1}, // specials, and invalid (includes the obsolete (invalid) terminal boxes)
	},
	LatinOffset: 0,
}

// IsAcceptableAffix is used to enforce name fragments in wanted alphabet(s),
// for example the Prefix and Suffix a Builder contributes to candidate names.
// Setting 'reduceAcceptableRunesTo' reduces the supremum unicode.PrintRanges.
//
// A string with runes other than U+0020 (space) or U+2009 (spatium)
// representing space will be rejected.
func IsAcceptableAffix(s string, reduceAcceptableRunesTo []*unicode.RangeTable,
	enforceForm *norm.Form) bool {
	// most of the Internet is in NFC
	// (though that even changes within pages, for example for Japanese names)
	if enforceForm != nil && !enforceForm.IsNormalString(s) {
		return false
	}

	if reduceAcceptableRunesTo != nil {
		for _, r := range s {
			if !unicode.In(r, reduceAcceptableRunesTo...) {
				return false
			}
		}
	}

	for _, r := range s {
		if uint32(r) <= unicode.MaxLatin1 && strings.ContainsRune(AlwaysRejectRunes, r) {
			return false
		}
		if r == runeSpatium {
			continue
		}
		if unicode.Is(excludedRunes, r) ||
			!unicode.IsPrint(r) { // this takes care of the "spaces" as well
			return false
		}
	}

	return true
}
