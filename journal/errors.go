package journal

import "errors"

// Failure kinds for journal operations. All four are fatal to the append
// loop; retention deletion failures are logged and never surfaced as errors.
var (
	// ErrOpen indicates the current journal could not be created or opened.
	ErrOpen = errors.New("open journal")
	// ErrRead indicates the input stream failed.
	ErrRead = errors.New("read input")
	// ErrWrite indicates an append to the current journal failed.
	ErrWrite = errors.New("write journal")
	// ErrRename indicates the rotation handoff could not be completed.
	ErrRename = errors.New("rotate journal")
)
