package journal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rottedfrog/rollout/internal/metrics"
	loggerpkg "github.com/rottedfrog/rollout/logger"
	"github.com/rottedfrog/rollout/util"
)

// Options configures a journal directory.
type Options struct {
	Dir          string
	Prefix       string
	MaxSizeBytes int64
	// Keep is the number of rotated files retained after each rotation.
	// Zero keeps everything.
	Keep int
}

// Journal owns the single open "current" file in a log directory. It tracks
// the byte count and whether the last byte written was a newline, and
// performs the close-rename-reopen handoff when asked to rotate. It is not
// safe for concurrent use; the append loop is its only writer.
type Journal struct {
	opts   Options
	logger loggerpkg.Logger

	file     *os.File
	size     int64
	boundary bool
}

// Open opens or creates {dir}/current for append. A pre-existing file is
// resumed: its length becomes the tracked size and the boundary bit is
// loaded from its final byte. An empty file counts as a boundary, since
// there is nothing to split.
func Open(opts Options, logr loggerpkg.Logger) (*Journal, error) {
	if logr == nil {
		logr = loggerpkg.NewNop()
	}

	path := filepath.Join(opts.Dir, util.CurrentFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}
	size := info.Size()

	boundary := true
	if size > 0 {
		last, err := readLastByte(path, size)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
		}
		boundary = last == '\n'
	}

	metrics.SetCurrentSize(size)
	return &Journal{
		opts:     opts,
		logger:   logr,
		file:     f,
		size:     size,
		boundary: boundary,
	}, nil
}

func readLastByte(path string, size int64) (byte, error) {
	r, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	buf := make([]byte, 1)
	if _, err := r.ReadAt(buf, size-1); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Append writes p to the current journal. The boundary bit is recomputed on
// every append: a chunk that does not end in a newline clears it even if an
// earlier chunk set it. An empty chunk is a no-op.
func (j *Journal) Append(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if _, err := j.file.Write(p); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	j.size += int64(len(p))
	j.boundary = p[len(p)-1] == '\n'
	metrics.AddBytesWritten(len(p))
	metrics.SetCurrentSize(j.size)
	return nil
}

// ShouldRotate reports whether the size threshold has been crossed at a line
// boundary. The threshold alone is not enough: rotation mid-line is deferred
// until the next append that completes the line, so the size bound is soft.
func (j *Journal) ShouldRotate() bool {
	return j.size >= j.opts.MaxSizeBytes && j.boundary
}

// Rotate closes the current journal, renames it into the next numbered
// slot, opens a fresh empty current, and enforces retention. It is
// unconditional; callers gate it on ShouldRotate except at startup.
func (j *Journal) Rotate() error {
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %v", ErrWrite, err)
	}
	if err := j.file.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrWrite, err)
	}
	j.file = nil

	n, err := nextIndex(j.opts.Dir, j.opts.Prefix)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRename, err)
	}
	currentPath := filepath.Join(j.opts.Dir, util.CurrentFileName)
	rotatedPath := filepath.Join(j.opts.Dir, rotatedName(j.opts.Prefix, n))
	if err := os.Rename(currentPath, rotatedPath); err != nil {
		return fmt.Errorf("%w: %v", ErrRename, err)
	}

	f, err := os.OpenFile(currentPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrOpen, currentPath, err)
	}
	rotatedSize := j.size
	j.file = f
	j.size = 0
	j.boundary = true

	metrics.IncRotations()
	metrics.SetCurrentSize(0)
	j.logger.Info("rotated journal",
		loggerpkg.F("file", rotatedPath),
		loggerpkg.F("index", n),
		loggerpkg.F("size", rotatedSize))

	enforceRetention(j.opts.Dir, j.opts.Prefix, j.opts.Keep, j.logger)
	return nil
}

// Size returns the number of bytes in the current journal.
func (j *Journal) Size() int64 { return j.size }

// AtBoundary reports whether the last byte written was a newline.
func (j *Journal) AtBoundary() bool { return j.boundary }

// Close flushes and closes the current journal.
func (j *Journal) Close() error {
	if j.file == nil {
		return nil
	}
	if err := j.file.Sync(); err != nil {
		j.file.Close()
		return fmt.Errorf("%w: sync: %v", ErrWrite, err)
	}
	if err := j.file.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrWrite, err)
	}
	j.file = nil
	return nil
}
