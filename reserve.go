package tempfile // import "blitznote.com/src/tempfile"

// If a file is expected to be smaller than this (in bytes) no space will
// be reserved for it, which would've "announced" the final size.
const reserveFileSizeThreshold = 1 << 15
