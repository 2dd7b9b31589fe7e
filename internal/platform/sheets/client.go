package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"taskboard/internal/domain/ledger"
)

// Client reads the task ledger and roster worksheets of one
// spreadsheet. It holds no state beyond the authenticated service;
// every Snapshot call re-reads both ranges.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
	tasksRange    string
	rosterRange   string
}

// NewClient authenticates with a Google service-account credentials
// file and a read-only scope.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID, tasksRange, rosterRange string) (*Client, error) {
	raw, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file %s: %w", credentialsFile, err)
	}
	cfg, err := google.JWTConfigFromJSON(raw, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	service, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		tasksRange:    tasksRange,
		rosterRange:   rosterRange,
	}, nil
}

// Snapshot fetches a fresh, fully parsed copy of the ledger and roster.
func (c *Client) Snapshot(ctx context.Context) ([]ledger.Task, []string, error) {
	taskRows, err := c.records(ctx, c.tasksRange)
	if err != nil {
		return nil, nil, err
	}
	rosterRows, err := c.records(ctx, c.rosterRange)
	if err != nil {
		return nil, nil, err
	}
	return ledger.ParseTasks(taskRows), ledger.ParseRoster(rosterRows), nil
}

func (c *Client) records(ctx context.Context, readRange string) ([]map[string]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %q: %w", readRange, err)
	}
	return Records(resp.Values)
}
