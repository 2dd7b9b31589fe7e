package report

import "taskboard/internal/domain/ledger"

// Views are the two named slices every downstream computation reads.
// They are computed once per report so the consumers can never drift
// apart on filtering rules.
type Views struct {
	// Involvement holds every task the employee touches: assigned to
	// them, or flagged items they raised as assigner.
	Involvement []ledger.Task
	// Measured is Involvement minus self-assigned tasks; it feeds the
	// timeliness, approval and status-distribution views.
	Measured []ledger.Task
}

// Scope restricts the snapshot to one employee and window. Tasks with
// no creation date are not window-filtered; an inverted window yields
// empty views rather than an error.
func Scope(tasks []ledger.Task, employee string, w Window) Views {
	if w.Inverted() {
		return Views{}
	}
	var views Views
	for _, task := range tasks {
		involved := task.Assignee == employee ||
			(task.Status.Flagged() && task.Assigner == employee)
		if !involved {
			continue
		}
		if task.CreatedAt != nil && !w.Contains(*task.CreatedAt) {
			continue
		}
		views.Involvement = append(views.Involvement, task)
		if !task.SelfAssigned() {
			views.Measured = append(views.Measured, task)
		}
	}
	return views
}

// windowFilter applies the same creation-date rule as Scope to the full
// table, for the views that measure the employee as assigner.
func windowFilter(tasks []ledger.Task, w Window) []ledger.Task {
	if w.Inverted() {
		return nil
	}
	var filtered []ledger.Task
	for _, task := range tasks {
		if task.CreatedAt != nil && !w.Contains(*task.CreatedAt) {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}
