package report

import (
	"time"

	"taskboard/internal/domain/ledger"
)

// FlagItem is one suggestion, deviation or nonconformity the employee
// raised as assigner. Date is nil when the row carried no creation date.
type FlagItem struct {
	Date *time.Time `json:"date,omitempty"`
	Text string     `json:"text"`
}

// Bundle is the full result set for one employee and window. It is a
// plain value; presentation (charts, tables, colors) belongs to the
// consumer.
type Bundle struct {
	Employee           string       `json:"employee"`
	Window             Window       `json:"window"`
	Metrics            Metrics      `json:"metrics"`
	BonusEligible      bool         `json:"bonusEligible"`
	Timeliness         Timeliness   `json:"timeliness"`
	Approval           Approval     `json:"approval"`
	StatusDistribution []TableRow   `json:"statusDistribution"`
	Workload           []TableRow   `json:"workload"`
	CycleTimes         []CyclePoint `json:"cycleTimes"`
	CycleTimeMeanDays  float64      `json:"cycleTimeMeanDays"`
	Suggestions        []FlagItem   `json:"suggestions"`
	Deviations         []FlagItem   `json:"deviations"`
	Nonconformities    []FlagItem   `json:"nonconformities"`
}

// Build computes the whole bundle from one immutable snapshot. It is a
// pure function of its arguments; now participates only in the
// pending-lateness rule.
func Build(snapshot []ledger.Task, employee string, w Window, now time.Time) Bundle {
	views := Scope(snapshot, employee, w)
	windowed := windowFilter(snapshot, w)

	timeliness := classifyTimeliness(views.Measured, now)
	approval := approvalSplit(views.Measured)

	suggestions := flagItems(windowed, employee, ledger.StatusImprovementSuggestion)
	deviations := flagItems(windowed, employee, ledger.StatusBehavioralDeviation)
	nonconformities := flagItems(windowed, employee, ledger.StatusNonconformity)

	cyclePoints, meanDays := cycleTimes(views.Involvement)

	return Bundle{
		Employee: employee,
		Window:   w,
		Metrics: Metrics{
			Received:        len(views.Measured),
			Ordered:         orderedCount(windowed, employee),
			LateRatePct:     timeliness.LatePct,
			ReworkRatePct:   approval.WithRemarksPct,
			Suggestions:     len(suggestions),
			Deviations:      len(deviations),
			Nonconformities: len(nonconformities),
		},
		BonusEligible:      BonusEligible(timeliness.LatePct, approval.WithRemarksPct),
		Timeliness:         timeliness,
		Approval:           approval,
		StatusDistribution: StatusDistribution(views.Measured),
		Workload:           WorkloadByAssignee(windowed, employee),
		CycleTimes:         cyclePoints,
		CycleTimeMeanDays:  meanDays,
		Suggestions:        suggestions,
		Deviations:         deviations,
		Nonconformities:    nonconformities,
	}
}

func flagItems(windowed []ledger.Task, employee string, status ledger.Status) []FlagItem {
	items := make([]FlagItem, 0)
	for _, task := range windowed {
		if task.Assigner != employee || task.Status != status {
			continue
		}
		items = append(items, FlagItem{Date: task.CreatedAt, Text: task.Label})
	}
	return items
}
