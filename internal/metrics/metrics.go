package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bytesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollout_bytes_written_total",
		Help: "Total number of bytes appended to the current journal.",
	})
	rotations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollout_rotations_total",
		Help: "Total number of journal rotations performed.",
	})
	filesPruned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollout_rotated_files_pruned_total",
		Help: "Total number of rotated log files deleted by retention.",
	})
	pruneErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollout_prune_errors_total",
		Help: "Total number of retention deletions that failed.",
	})
	currentSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rollout_current_size_bytes",
		Help: "Size of the current journal file in bytes.",
	})

	collectorsOnce sync.Once
)

// Init registers default Go/process collectors. It is safe to call multiple times.
func Init() {
	collectorsOnce.Do(func() {
		registerCollector(collectors.NewGoCollector())
		registerCollector(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

func registerCollector(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			_ = are.ExistingCollector
			return
		}
		panic(err)
	}
}

// AddBytesWritten records bytes appended to the journal.
func AddBytesWritten(n int) {
	if n <= 0 {
		return
	}
	bytesWritten.Add(float64(n))
}

// IncRotations increments the rotation counter.
func IncRotations() {
	rotations.Inc()
}

// IncFilesPruned increments the retention deletion counter.
func IncFilesPruned() {
	filesPruned.Inc()
}

// IncPruneErrors increments the failed-deletion counter.
func IncPruneErrors() {
	pruneErrors.Inc()
}

// SetCurrentSize records the size of the current journal.
func SetCurrentSize(n int64) {
	if n < 0 {
		n = 0
	}
	currentSize.Set(float64(n))
}
