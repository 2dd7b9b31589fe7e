package report

import (
	"testing"

	"taskboard/internal/domain/ledger"
)

func TestStatusDistributionAlwaysSevenRows(t *testing.T) {
	tests := []struct {
		name  string
		tasks []ledger.Task
	}{
		{"empty", nil},
		{"one status", []ledger.Task{{Status: ledger.StatusPending}}},
		{"unknown status ignored", []ledger.Task{{Status: ledger.Status("Custom")}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := StatusDistribution(tc.tasks)
			if len(rows) != 7 {
				t.Fatalf("expected 7 rows, got %d", len(rows))
			}
			if rows[6].Key != TotalRowKey {
				t.Fatalf("last row must be Total, got %q", rows[6].Key)
			}
			sum := 0
			for _, row := range rows[:6] {
				sum += row.Count
			}
			if rows[6].Count != sum {
				t.Fatalf("Total %d does not match sum %d", rows[6].Count, sum)
			}
		})
	}
}

func TestStatusDistributionFixedOrderAndCounts(t *testing.T) {
	tasks := []ledger.Task{
		{Status: ledger.StatusForApproval},
		{Status: ledger.StatusForApproval},
		{Status: ledger.StatusForApproval},
		{Status: ledger.StatusPending},
		{Status: ledger.StatusDeleted},
		{Status: ledger.Status("Custom")},
	}

	rows := StatusDistribution(tasks)
	if rows[0].Key != string(ledger.StatusPending) || rows[0].Count != 1 {
		t.Errorf("row 0: got %+v", rows[0])
	}
	if rows[5].Key != string(ledger.StatusForApproval) || rows[5].Count != 3 {
		t.Errorf("row 5: got %+v", rows[5])
	}
	if rows[6].Count != 4 {
		t.Errorf("Total must ignore Deleted and unknown statuses, got %d", rows[6].Count)
	}
}

func TestWorkloadByAssignee(t *testing.T) {
	tasks := []ledger.Task{
		{Assigner: "Alice", Assignee: "Bob", Status: ledger.StatusPending},
		{Assigner: "Alice", Assignee: "Bob", Status: ledger.StatusCompleted},
		{Assigner: "Alice", Assignee: "Carol", Status: ledger.StatusPending},
		{Assigner: "Alice", Assignee: "Dave", Status: ledger.StatusPending},
		{Assigner: "Alice", Assignee: "Dave", Status: ledger.StatusPending},
		{Assigner: "Alice", Assignee: "Dave", Status: ledger.StatusApproved},
		{Assigner: "Alice", Assignee: "Eve", Status: ledger.StatusDeleted},
		{Assigner: "Alice", Assignee: "Eve", Status: ledger.StatusImprovementSuggestion},
		{Assigner: "Bob", Assignee: "Carol", Status: ledger.StatusPending},
	}

	rows := WorkloadByAssignee(tasks, "Alice")
	if len(rows) != 4 {
		t.Fatalf("expected 3 assignees plus Total, got %d rows", len(rows))
	}
	if rows[0].Key != "Dave" || rows[0].Count != 3 {
		t.Errorf("expected Dave first with 3, got %+v", rows[0])
	}
	if rows[1].Key != "Bob" || rows[1].Count != 2 {
		t.Errorf("expected Bob second with 2, got %+v", rows[1])
	}
	if rows[3].Key != TotalRowKey || rows[3].Count != 6 {
		t.Errorf("expected Total 6, got %+v", rows[3])
	}
	for i := 0; i < len(rows)-2; i++ {
		if rows[i].Count < rows[i+1].Count {
			t.Errorf("rows not sorted descending at %d: %+v", i, rows)
		}
	}
}

func TestWorkloadByAssigneeEmpty(t *testing.T) {
	rows := WorkloadByAssignee(nil, "Alice")
	if len(rows) != 1 || rows[0].Key != TotalRowKey || rows[0].Count != 0 {
		t.Fatalf("expected a lone zero Total row, got %+v", rows)
	}
}
