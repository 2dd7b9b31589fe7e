package report

import (
	"testing"
	"time"

	"taskboard/internal/domain/ledger"
)

func TestBuildEmptySnapshot(t *testing.T) {
	bundle := Build(nil, "Alice", janWindow(), day(2024, time.January, 15))

	if bundle.Metrics != (Metrics{}) {
		t.Errorf("expected all-zero metrics, got %+v", bundle.Metrics)
	}
	if !bundle.BonusEligible {
		t.Error("zero rates must be bonus eligible")
	}
	if len(bundle.StatusDistribution) != 7 {
		t.Errorf("expected 7 distribution rows, got %d", len(bundle.StatusDistribution))
	}
	if got := bundle.StatusDistribution[6]; got.Key != TotalRowKey || got.Count != 0 {
		t.Errorf("expected zero Total row, got %+v", got)
	}
	if len(bundle.Workload) != 1 || bundle.Workload[0].Count != 0 {
		t.Errorf("expected a lone zero workload Total row, got %+v", bundle.Workload)
	}
	if len(bundle.CycleTimes) != 0 || bundle.CycleTimeMeanDays != 0 {
		t.Errorf("expected empty cycle times, got %+v", bundle.CycleTimes)
	}
	if len(bundle.Suggestions) != 0 || len(bundle.Deviations) != 0 || len(bundle.Nonconformities) != 0 {
		t.Error("expected empty flagged-item lists")
	}
}

func TestBuildReworkDrivesEligibility(t *testing.T) {
	tasks := []ledger.Task{
		{Label: "clean", Status: ledger.StatusApproved, Assigner: "Bob", Assignee: "Alice", CreatedAt: at(2024, time.January, 5, 0, 0)},
		{Label: "reworked", Status: ledger.StatusApprovedWithRemarks, Assigner: "Bob", Assignee: "Alice", CreatedAt: at(2024, time.January, 6, 0, 0)},
	}

	bundle := Build(tasks, "Alice", janWindow(), day(2024, time.January, 15))
	if bundle.Metrics.ReworkRatePct != 50 {
		t.Fatalf("expected 50%% rework rate, got %d%%", bundle.Metrics.ReworkRatePct)
	}
	if bundle.Metrics.LateRatePct != 0 {
		t.Fatalf("expected 0%% late rate, got %d%%", bundle.Metrics.LateRatePct)
	}
	if bundle.BonusEligible {
		t.Fatal("50% rework with 0% lateness must not be eligible")
	}
}

func TestBuildSharedRateComputation(t *testing.T) {
	due := at(2024, time.January, 10, 0, 0)
	tasks := []ledger.Task{
		{Status: ledger.StatusCompleted, Assigner: "Bob", Assignee: "Alice", CreatedAt: at(2024, time.January, 5, 0, 0), DueAt: due, UpdatedAt: at(2024, time.January, 12, 0, 0)},
		{Status: ledger.StatusApprovedWithRemarks, Assigner: "Bob", Assignee: "Alice", CreatedAt: at(2024, time.January, 6, 0, 0), DueAt: due, UpdatedAt: at(2024, time.January, 9, 0, 0)},
	}

	bundle := Build(tasks, "Alice", janWindow(), day(2024, time.January, 15))
	if bundle.Metrics.LateRatePct != bundle.Timeliness.LatePct {
		t.Errorf("metrics late rate %d diverges from timeliness %d", bundle.Metrics.LateRatePct, bundle.Timeliness.LatePct)
	}
	if bundle.Metrics.ReworkRatePct != bundle.Approval.WithRemarksPct {
		t.Errorf("metrics rework rate %d diverges from approval %d", bundle.Metrics.ReworkRatePct, bundle.Approval.WithRemarksPct)
	}
	if eligible := BonusEligible(bundle.Timeliness.LatePct, bundle.Approval.WithRemarksPct); eligible != bundle.BonusEligible {
		t.Error("eligibility must derive from the same rate pair")
	}
}

func TestBuildFlaggedItems(t *testing.T) {
	tasks := []ledger.Task{
		{Label: "shorter handover checklist", Status: ledger.StatusImprovementSuggestion, Assigner: "Alice", Assignee: "Bob", CreatedAt: at(2024, time.January, 8, 0, 0)},
		{Label: "skipped sign-off", Status: ledger.StatusBehavioralDeviation, Assigner: "Alice", Assignee: "Bob", CreatedAt: at(2024, time.January, 9, 0, 0)},
		{Label: "undated nonconformity", Status: ledger.StatusNonconformity, Assigner: "Alice", Assignee: "Bob"},
		{Label: "raised by someone else", Status: ledger.StatusImprovementSuggestion, Assigner: "Bob", Assignee: "Alice", CreatedAt: at(2024, time.January, 8, 0, 0)},
		{Label: "outside window", Status: ledger.StatusImprovementSuggestion, Assigner: "Alice", Assignee: "Bob", CreatedAt: at(2024, time.March, 1, 0, 0)},
	}

	bundle := Build(tasks, "Alice", janWindow(), day(2024, time.January, 15))
	if len(bundle.Suggestions) != 1 || bundle.Suggestions[0].Text != "shorter handover checklist" {
		t.Errorf("unexpected suggestions: %+v", bundle.Suggestions)
	}
	if len(bundle.Deviations) != 1 {
		t.Errorf("unexpected deviations: %+v", bundle.Deviations)
	}
	if len(bundle.Nonconformities) != 1 || bundle.Nonconformities[0].Date != nil {
		t.Errorf("undated nonconformity must keep a nil date: %+v", bundle.Nonconformities)
	}
	if bundle.Metrics.Suggestions != 1 || bundle.Metrics.Deviations != 1 || bundle.Metrics.Nonconformities != 1 {
		t.Errorf("flag counts must match the lists: %+v", bundle.Metrics)
	}
}

func TestBuildReceivedAndOrdered(t *testing.T) {
	tasks := []ledger.Task{
		// Received by Alice from others.
		{Status: ledger.StatusPending, Assigner: "Bob", Assignee: "Alice", CreatedAt: at(2024, time.January, 5, 0, 0)},
		{Status: ledger.StatusCompleted, Assigner: "Carol", Assignee: "Alice", CreatedAt: at(2024, time.January, 6, 0, 0)},
		// Self-assigned: involvement only.
		{Status: ledger.StatusPending, Assigner: "Alice", Assignee: "Alice", CreatedAt: at(2024, time.January, 7, 0, 0)},
		// Ordered by Alice.
		{Status: ledger.StatusPending, Assigner: "Alice", Assignee: "Bob", CreatedAt: at(2024, time.January, 8, 0, 0)},
		{Status: ledger.StatusDeleted, Assigner: "Alice", Assignee: "Bob", CreatedAt: at(2024, time.January, 8, 0, 0)},
	}

	bundle := Build(tasks, "Alice", janWindow(), day(2024, time.January, 15))
	if bundle.Metrics.Received != 2 {
		t.Errorf("expected 2 received, got %d", bundle.Metrics.Received)
	}
	// Self-assigned tasks count as ordered work too; only deleted and
	// flagged items are excluded.
	if bundle.Metrics.Ordered != 2 {
		t.Errorf("expected 2 ordered, got %d", bundle.Metrics.Ordered)
	}
}
