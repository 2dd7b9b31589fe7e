package report

import (
	"math"
	"time"

	"taskboard/internal/domain/ledger"
)

// Metrics is the measurement-summary table for one employee and window.
// The two rates repeat the percentages of Timeliness and Approval; they
// are copied from one shared computation, never recomputed.
type Metrics struct {
	Received        int `json:"received"`
	Ordered         int `json:"ordered"`
	LateRatePct     int `json:"lateRatePct"`
	ReworkRatePct   int `json:"reworkRatePct"`
	Suggestions     int `json:"suggestions"`
	Deviations      int `json:"deviations"`
	Nonconformities int `json:"nonconformities"`
}

// Timeliness is the on-time vs late split of measured work.
type Timeliness struct {
	OnTime    int `json:"onTime"`
	Late      int `json:"late"`
	OnTimePct int `json:"onTimePct"`
	LatePct   int `json:"latePct"`
}

// Approval is the approved vs approved-with-remarks split.
type Approval struct {
	Approved       int `json:"approved"`
	WithRemarks    int `json:"withRemarks"`
	ApprovedPct    int `json:"approvedPct"`
	WithRemarksPct int `json:"withRemarksPct"`
}

// percent rounds half away from zero. A zero denominator reports 0,
// never NaN.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// classifyTimeliness buckets measured tasks with a due date:
//   - concluded with a known last update: compare dates against the due
//     date;
//   - pending: late once now is past the due date, otherwise not
//     counted at all;
//   - anything else (still open, or concluded with no update time) is
//     excluded from both buckets.
func classifyTimeliness(tasks []ledger.Task, now time.Time) Timeliness {
	var t Timeliness
	for _, task := range tasks {
		if task.DueAt == nil {
			continue
		}
		due := dateOf(*task.DueAt)
		switch {
		case task.Status.Concluded() && task.UpdatedAt != nil:
			if dateOf(*task.UpdatedAt).After(due) {
				t.Late++
			} else {
				t.OnTime++
			}
		case task.Status == ledger.StatusPending:
			if dateOf(now).After(due) {
				t.Late++
			}
		}
	}
	total := t.OnTime + t.Late
	t.OnTimePct = percent(t.OnTime, total)
	t.LatePct = percent(t.Late, total)
	return t
}

func approvalSplit(tasks []ledger.Task) Approval {
	var a Approval
	for _, task := range tasks {
		switch task.Status {
		case ledger.StatusApproved:
			a.Approved++
		case ledger.StatusApprovedWithRemarks:
			a.WithRemarks++
		}
	}
	total := a.Approved + a.WithRemarks
	a.ApprovedPct = percent(a.Approved, total)
	a.WithRemarksPct = percent(a.WithRemarks, total)
	return a
}

// orderedCount sums the window-filtered tasks the employee assigned to
// anyone, excluding deleted and flagged items.
func orderedCount(windowed []ledger.Task, employee string) int {
	count := 0
	for _, task := range windowed {
		if task.Assigner == employee && task.Status.CountsAsWorkload() {
			count++
		}
	}
	return count
}
