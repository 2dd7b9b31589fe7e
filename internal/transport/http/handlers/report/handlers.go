package reporthandler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"taskboard/internal/domain/ledger"
	"taskboard/internal/domain/report"
	"taskboard/internal/platform/metrics"
	"taskboard/internal/transport/http/api"
	"taskboard/internal/transport/http/middleware"
	"taskboard/internal/transport/http/shared"
)

// Source supplies one immutable snapshot of the task ledger and the
// employee roster per call.
type Source interface {
	Snapshot(ctx context.Context) ([]ledger.Task, []string, error)
}

type Handler struct {
	Source  Source
	Metrics *metrics.Collector
	// Now is injectable so the pending-lateness rule stays testable.
	Now func() time.Time
}

func NewHandler(source Source, collector *metrics.Collector) *Handler {
	return &Handler{Source: source, Metrics: collector, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/roster", h.handleRoster)
	r.Get("/reports/measurement", h.handleMeasurement)
	r.Get("/reports/measurement/pdf", h.handleMeasurementPDF)
}

func (h *Handler) handleRoster(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	_, roster, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	api.Success(w, map[string]any{"employees": roster}, requestID)
}

func (h *Handler) handleMeasurement(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	bundle, ok := h.buildBundle(w, r)
	if !ok {
		return
	}
	api.Success(w, bundle, requestID)
}

func (h *Handler) handleMeasurementPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	bundle, ok := h.buildBundle(w, r)
	if !ok {
		return
	}
	rendered, err := report.RenderPDF(bundle)
	if err != nil {
		slog.Warn("measurement pdf render failed", "err", err, "employee", bundle.Employee)
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "failed to render measurement report", requestID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "measurement-report.pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rendered)
}

func (h *Handler) buildBundle(w http.ResponseWriter, r *http.Request) (report.Bundle, bool) {
	requestID := middleware.GetRequestID(r.Context())

	validator := shared.NewValidator()
	employee := r.URL.Query().Get("employee")
	validator.Required("employee", employee, "employee is required")
	start, _ := validator.Date("start", r.URL.Query().Get("start"))
	end, _ := validator.Date("end", r.URL.Query().Get("end"))
	if validator.Reject(w, requestID) {
		return report.Bundle{}, false
	}

	tasks, _, ok := h.snapshot(w, r)
	if !ok {
		return report.Bundle{}, false
	}

	now := h.Now()
	bundle := report.Build(tasks, employee, resolveWindow(tasks, start, end, now), now)
	if h.Metrics != nil {
		h.Metrics.RecordReport()
	}
	return bundle, true
}

// resolveWindow fills missing bounds from the snapshot's creation-date
// span, falling back to today when the snapshot has no dates at all.
func resolveWindow(tasks []ledger.Task, start, end, now time.Time) report.Window {
	span, hasSpan := report.Span(tasks)
	if !hasSpan {
		span = report.Window{Start: now, End: now}
	}
	if start.IsZero() {
		start = span.Start
	}
	if end.IsZero() {
		end = span.End
	}
	return report.Window{Start: start, End: end}
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) ([]ledger.Task, []string, bool) {
	requestID := middleware.GetRequestID(r.Context())

	started := time.Now()
	tasks, roster, err := h.Source.Snapshot(r.Context())
	if h.Metrics != nil {
		h.Metrics.RecordSnapshot(time.Since(started), err)
	}
	if err != nil {
		slog.Warn("snapshot fetch failed", "err", err, "requestId", requestID)
		if errors.Is(err, ledger.ErrInvalidSnapshot) {
			api.Fail(w, http.StatusBadGateway, "invalid_snapshot", "source returned a non-tabular snapshot", requestID)
		} else {
			api.Fail(w, http.StatusBadGateway, "snapshot_failed", "failed to fetch the task snapshot", requestID)
		}
		return nil, nil, false
	}
	return tasks, roster, true
}
