package ledger

import "time"

// Task is one row of the task ledger. Timestamp fields are nil when the
// source cell was empty or unparseable; downstream computations treat a
// nil timestamp as "not available", never as now or epoch.
type Task struct {
	Label     string
	CreatedAt *time.Time
	DueAt     *time.Time
	UpdatedAt *time.Time
	Status    Status
	Assigner  string
	Assignee  string
}

// SelfAssigned reports whether the task was assigned by its own
// assignee. Such tasks stay in the involvement view but are excluded
// from every measurement view.
func (t Task) SelfAssigned() bool {
	return t.Assigner == t.Assignee
}

// Column names of the tasks worksheet.
const (
	ColumnTask      = "Task"
	ColumnCreatedAt = "Created At"
	ColumnDueDate   = "Due Date"
	ColumnUpdatedAt = "Last Updated"
	ColumnStatus    = "Status"
	ColumnAssigner  = "Assigner"
	ColumnAssignee  = "Assignee"
)

// ColumnName is the roster worksheet column holding employee names.
const ColumnName = "Name"
