package report

import (
	"sort"
	"time"

	"taskboard/internal/domain/ledger"
)

// CyclePoint is one concluded task on the cycle-time chart, positioned
// chronologically by creation time.
type CyclePoint struct {
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
	Days      float64   `json:"days"`
}

const secondsPerDay = 86400

// cycleTimes measures creation-to-last-update duration, in fractional
// days, for every concluded involvement task carrying both timestamps,
// plus the mean (0 when the set is empty).
func cycleTimes(involvement []ledger.Task) ([]CyclePoint, float64) {
	var points []CyclePoint
	totalDays := 0.0
	for _, task := range involvement {
		if !task.Status.Concluded() || task.CreatedAt == nil || task.UpdatedAt == nil {
			continue
		}
		days := task.UpdatedAt.Sub(*task.CreatedAt).Seconds() / secondsPerDay
		points = append(points, CyclePoint{
			Label:     task.Label,
			CreatedAt: *task.CreatedAt,
			Days:      days,
		})
		totalDays += days
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].CreatedAt.Before(points[j].CreatedAt)
	})
	mean := 0.0
	if len(points) > 0 {
		mean = totalDays / float64(len(points))
	}
	return points, mean
}
