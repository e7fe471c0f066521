package journal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rottedfrog/rollout/util"
)

// nextIndex derives the next rotation index from the rotated files already
// present in dir. There is no persisted counter: the directory listing is
// the sole source of truth, which keeps numbering correct across restarts.
func nextIndex(dir, prefix string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("list log directory: %w", err)
	}
	max := 0
	for _, e := range entries {
		n, ok := parseRotatedIndex(e.Name(), prefix)
		if ok && n > max {
			max = n
		}
	}
	return max + 1, nil
}

// parseRotatedIndex extracts n from a "{prefix}.{n}.log" filename. Names
// that match the prefix pattern but carry a non-numeric index are skipped.
func parseRotatedIndex(name, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(name, prefix+".")
	if !ok {
		return 0, false
	}
	num, ok := strings.CutSuffix(rest, util.RotatedExt)
	if !ok || num == "" {
		return 0, false
	}
	for _, r := range num {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func rotatedName(prefix string, n int) string {
	return fmt.Sprintf("%s.%d%s", prefix, n, util.RotatedExt)
}
