package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps coarse in-process counters for the dashboard service.
// Reports are recomputed per request, so snapshot fetch volume and
// latency are the numbers worth watching.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64
	snapshotFetches uint64
	snapshotErrors  uint64
	snapshotMs      uint64
	reportsBuilt    uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordSnapshot(duration time.Duration, err error) {
	atomic.AddUint64(&c.snapshotFetches, 1)
	atomic.AddUint64(&c.snapshotMs, uint64(duration.Milliseconds()))
	if err != nil {
		atomic.AddUint64(&c.snapshotErrors, 1)
	}
}

func (c *Collector) RecordReport() {
	atomic.AddUint64(&c.reportsBuilt, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	fetches := atomic.LoadUint64(&c.snapshotFetches)
	fetchErrs := atomic.LoadUint64(&c.snapshotErrors)
	fetchMs := atomic.LoadUint64(&c.snapshotMs)
	reports := atomic.LoadUint64(&c.reportsBuilt)

	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	avgFetch := float64(0)
	if fetches > 0 {
		avgFetch = float64(fetchMs) / float64(fetches)
	}
	return map[string]any{
		"requestsTotal":         total,
		"errorsTotal":           errs,
		"rateLimitedTotal":      limited,
		"avgDurationMs":         avg,
		"snapshotFetchesTotal":  fetches,
		"snapshotErrorsTotal":   fetchErrs,
		"avgSnapshotDurationMs": avgFetch,
		"reportsBuiltTotal":     reports,
	}
}
