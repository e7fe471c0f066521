package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rottedfrog/rollout/journal"
	loggerpkg "github.com/rottedfrog/rollout/logger"
)

// readBufferSize bounds a single read chunk. Lines longer than this arrive
// as multiple partial chunks, none of which end at a line boundary, so
// rotation stays deferred until the line completes.
const readBufferSize = 64 * 1024

// AppendService runs the synchronous read-append-rotate loop against a
// journal. One instance owns one journal; there is no internal locking
// because there is no second writer.
type AppendService struct {
	journal *journal.Journal
	logger  loggerpkg.Logger
}

// NewAppendService creates an append service for the given journal.
func NewAppendService(j *journal.Journal, logr loggerpkg.Logger) *AppendService {
	if logr == nil {
		logr = loggerpkg.NewNop()
	}
	return &AppendService{
		journal: j,
		logger:  logr,
	}
}

// Recover applies the startup policy before any input is read. With
// rotateOnStart set, a non-empty leftover current file from a prior run is
// rotated into its own numbered slot so the new run starts on an empty
// journal. Otherwise the leftover file is simply resumed (the journal
// already loaded its size and boundary state when it was opened).
func (s *AppendService) Recover(rotateOnStart bool) error {
	if !rotateOnStart || s.journal.Size() == 0 {
		return nil
	}
	s.logger.Info("rotating leftover journal on start",
		loggerpkg.F("size", s.journal.Size()))
	return s.journal.Rotate()
}

// Run consumes r until end-of-stream, a fatal error, or context
// cancellation. Chunks are line-aligned: a chunk is a whole line including
// its newline, a partial over-long line, or the unterminated tail at EOF.
// After every append the journal is given the chance to rotate, and
// rotation (including retention) completes before the next read is issued.
//
// A clean end-of-stream returns nil. Fatal errors carry one of the journal
// sentinel kinds and no further input is consumed after one occurs.
func (s *AppendService) Run(ctx context.Context, r io.Reader) error {
	br := bufio.NewReaderSize(r, readBufferSize)
	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("append loop canceled")
			return err
		}

		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 {
			if werr := s.journal.Append(chunk); werr != nil {
				return werr
			}
			if s.journal.ShouldRotate() {
				if rerr := s.journal.Rotate(); rerr != nil {
					return rerr
				}
			}
		}

		switch {
		case err == nil, errors.Is(err, bufio.ErrBufferFull):
		case errors.Is(err, io.EOF):
			s.logger.Info("end of input stream", loggerpkg.F("journal_size", s.journal.Size()))
			return nil
		default:
			return fmt.Errorf("%w: %v", journal.ErrRead, err)
		}
	}
}
