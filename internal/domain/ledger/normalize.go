package ledger

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// ErrInvalidSnapshot is returned only for structurally impossible input,
// such as a sheet with no header row at all. Missing or malformed cells
// are absorbed, never surfaced.
var ErrInvalidSnapshot = errors.New("ledger: snapshot is not tabular")

// dateLayouts are tried in order; the first match wins. Matches the
// ledger's mixed date+time / date-only cells.
var dateLayouts = []string{
	"2/1/2006 15:04",
	"2/1/2006",
}

// ParseDate converts a raw cell to a timestamp. A nil result means the
// cell was empty or unparseable; that is not an error.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}
	return nil
}

// ParseTasks turns raw worksheet rows (column name → cell value) into
// typed tasks. Every row is retained; fields that fail to parse become
// absent.
func ParseTasks(rows []map[string]string) []Task {
	tasks := make([]Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, Task{
			Label:     row[ColumnTask],
			CreatedAt: ParseDate(row[ColumnCreatedAt]),
			DueAt:     ParseDate(row[ColumnDueDate]),
			UpdatedAt: ParseDate(row[ColumnUpdatedAt]),
			Status:    Status(row[ColumnStatus]),
			Assigner:  row[ColumnAssigner],
			Assignee:  row[ColumnAssignee],
		})
	}
	return tasks
}

// ParseRoster extracts the selectable employee names: trimmed, deduped,
// empties dropped, sorted ascending.
func ParseRoster(rows []map[string]string) []string {
	seen := make(map[string]bool, len(rows))
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row[ColumnName])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
