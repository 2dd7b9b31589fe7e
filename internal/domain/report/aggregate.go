package report

import (
	"sort"

	"taskboard/internal/domain/ledger"
)

// TableRow is one line of a summary table. Both aggregators close their
// table with a synthetic Total row.
type TableRow struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

const TotalRowKey = "Total"

// StatusDistribution counts measured tasks per status over the fixed
// six-status presentation order. Statuses outside the list are ignored;
// missing ones report zero. Always returns seven rows.
func StatusDistribution(measured []ledger.Task) []TableRow {
	counts := make(map[ledger.Status]int, len(ledger.DistributionStatuses))
	for _, task := range measured {
		counts[task.Status]++
	}
	rows := make([]TableRow, 0, len(ledger.DistributionStatuses)+1)
	total := 0
	for _, status := range ledger.DistributionStatuses {
		rows = append(rows, TableRow{Key: string(status), Count: counts[status]})
		total += counts[status]
	}
	return append(rows, TableRow{Key: TotalRowKey, Count: total})
}

// WorkloadByAssignee groups the window-filtered snapshot rows the
// employee assigned (deleted and flagged items excluded) by assignee,
// sorted by count descending, ties in input order.
func WorkloadByAssignee(windowed []ledger.Task, employee string) []TableRow {
	counts := make(map[string]int)
	var order []string
	for _, task := range windowed {
		if task.Assigner != employee || !task.Status.CountsAsWorkload() {
			continue
		}
		if _, ok := counts[task.Assignee]; !ok {
			order = append(order, task.Assignee)
		}
		counts[task.Assignee]++
	}
	rows := make([]TableRow, 0, len(order)+1)
	total := 0
	for _, assignee := range order {
		rows = append(rows, TableRow{Key: assignee, Count: counts[assignee]})
		total += counts[assignee]
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return append(rows, TableRow{Key: TotalRowKey, Count: total})
}
