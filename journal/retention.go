package journal

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/rottedfrog/rollout/internal/metrics"
	loggerpkg "github.com/rottedfrog/rollout/logger"
)

// enforceRetention deletes rotated files beyond the keep count, lowest
// indices first. keep == 0 means unlimited. Failures here are degradation,
// not data loss for the active stream, so they are logged and swallowed.
func enforceRetention(dir, prefix string, keep int, logr loggerpkg.Logger) {
	if keep <= 0 {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		metrics.IncPruneErrors()
		logr.Warn("retention scan failed", loggerpkg.E(err), loggerpkg.F("dir", dir))
		return
	}

	var indices []int
	for _, e := range entries {
		if n, ok := parseRotatedIndex(e.Name(), prefix); ok {
			indices = append(indices, n)
		}
	}
	if len(indices) <= keep {
		return
	}
	sort.Ints(indices)

	for _, n := range indices[:len(indices)-keep] {
		path := filepath.Join(dir, rotatedName(prefix, n))
		if err := os.Remove(path); err != nil {
			metrics.IncPruneErrors()
			logr.Warn("failed to prune rotated log", loggerpkg.E(err), loggerpkg.F("file", path))
			continue
		}
		metrics.IncFilesPruned()
		logr.Debug("pruned rotated log", loggerpkg.F("file", path))
	}
}
