package ledger

type Status string

const (
	StatusPending               Status = "Pending"
	StatusCompleted             Status = "Completed"
	StatusApproved              Status = "Approved"
	StatusApprovedWithRemarks   Status = "Approved with remarks"
	StatusAwaitingApproval      Status = "Awaiting Approval"
	StatusForApproval           Status = "For Approval"
	StatusDeleted               Status = "Deleted"
	StatusImprovementSuggestion Status = "Improvement Suggestion"
	StatusBehavioralDeviation   Status = "Behavioral Deviation"
	StatusNonconformity         Status = "Nonconformity"
)

// concludedStatuses marks work as finished for lateness and cycle-time
// purposes. ForApproval is still open and deliberately not in the set.
var concludedStatuses = map[Status]bool{
	StatusCompleted:           true,
	StatusApproved:            true,
	StatusApprovedWithRemarks: true,
	StatusAwaitingApproval:    true,
}

// flaggedStatuses are items an employee raises as assigner rather than
// work assigned to them.
var flaggedStatuses = map[Status]bool{
	StatusImprovementSuggestion: true,
	StatusBehavioralDeviation:   true,
	StatusNonconformity:         true,
}

// workloadExcludedStatuses never count as ordered work.
var workloadExcludedStatuses = map[Status]bool{
	StatusDeleted:               true,
	StatusImprovementSuggestion: true,
	StatusBehavioralDeviation:   true,
	StatusNonconformity:         true,
}

func (s Status) Concluded() bool {
	return concludedStatuses[s]
}

func (s Status) Flagged() bool {
	return flaggedStatuses[s]
}

func (s Status) CountsAsWorkload() bool {
	return !workloadExcludedStatuses[s]
}

// DistributionStatuses is the fixed presentation order of the status
// summary table. Never reordered by frequency.
var DistributionStatuses = []Status{
	StatusPending,
	StatusCompleted,
	StatusApproved,
	StatusApprovedWithRemarks,
	StatusAwaitingApproval,
	StatusForApproval,
}
