package main

import (
	"context"
	"log"
	"net/http"

	"taskboard/internal/app/server"
	"taskboard/internal/platform/config"
	"taskboard/internal/platform/metrics"
	"taskboard/internal/platform/sheets"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	source, err := sheets.NewClient(ctx, cfg.GoogleCredentialsFile, cfg.SpreadsheetID, cfg.TasksRange, cfg.RosterRange)
	if err != nil {
		log.Fatalf("sheets client failed: %v", err)
	}

	collector := metrics.New()
	handler := server.New(cfg, source, collector)

	log.Printf("taskboard server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
