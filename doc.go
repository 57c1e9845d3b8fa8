// Package tempfile securely creates and manages temporary files.
//
// Two variants are provided. File is an unnamed temporary file:
// it has no path in the observable filesystem namespace, and the
// operating system reclaims its storage once the last handle to it
// has been closed. NamedFile is a temporary file visible under a
// real path, with an explicit lifecycle of
// {New, Write, Close or Persist or Detach}.
//
// Prefer File unless you need to know the file's path or intend to
// persist it. A pathological "temp cleaner", or an attacker racing
// for predictable names, cannot interfere with a file that has no
// name; with a NamedFile it can, for as long as the path exists.
//
// Deletion of a NamedFile rests on its Close (or the finalizer
// backstop) actually running. Acquire it in the scope that uses it
// and defer Close there; do not rely on garbage collection, whose
// timing carries no guarantee.
//
// Not all operating systems can keep a file out of the namespace for
// its whole life. Where they cannot, a graceful degradation is
// attempted: create under an unpredictable name and unlink at once,
// or have the OS delete the name when the last handle closes.
package tempfile // import "blitznote.com/src/tempfile"
