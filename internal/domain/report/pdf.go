package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const pdfDateLayout = "02/01/2006"

// RenderPDF renders the measurement report as a single-page A4 PDF for
// download or archiving.
func RenderPDF(b Bundle) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Task Measurement Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", b.Employee))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		b.Window.Start.Format(pdfDateLayout), b.Window.End.Format(pdfDateLayout)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Measurement result")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Tasks received: %d", b.Metrics.Received))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Tasks ordered: %d", b.Metrics.Ordered))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Completed late: %d%%", b.Metrics.LateRatePct))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Approved with remarks: %d%%", b.Metrics.ReworkRatePct))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Improvement suggestions: %d", b.Metrics.Suggestions))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Behavioral deviations: %d", b.Metrics.Deviations))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Nonconformities: %d", b.Metrics.Nonconformities))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 12)
	if b.BonusEligible {
		pdf.SetTextColor(0, 128, 0)
		pdf.Cell(0, 8, "Bonus authorized")
	} else {
		pdf.SetTextColor(200, 0, 0)
		pdf.Cell(0, 8, "Bonus not authorized")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Tasks assigned to %s", b.Employee))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range b.StatusDistribution {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d", row.Key, row.Count))
		pdf.Ln(6)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Tasks assigned by %s", b.Employee))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range b.Workload {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d", row.Key, row.Count))
		pdf.Ln(6)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Mean completion time: %.1f days over %d tasks",
		b.CycleTimeMeanDays, len(b.CycleTimes)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render measurement pdf: %w", err)
	}
	return buf.Bytes(), nil
}
