package report

import (
	"bytes"
	"testing"
	"time"

	"taskboard/internal/domain/ledger"
)

func TestRenderPDF(t *testing.T) {
	tasks := []ledger.Task{
		{Label: "audit", Status: ledger.StatusApproved, Assigner: "Bob", Assignee: "Alice",
			CreatedAt: at(2024, time.January, 5, 0, 0), UpdatedAt: at(2024, time.January, 7, 0, 0)},
	}
	bundle := Build(tasks, "Alice", janWindow(), day(2024, time.January, 15))

	rendered, err := RenderPDF(bundle)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.HasPrefix(rendered, []byte("%PDF")) {
		t.Fatalf("expected a PDF document, got %q", rendered[:min(len(rendered), 8)])
	}
}
