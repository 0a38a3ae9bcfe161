package models

import (
	"fmt"
	"time"
)

// RunTSLayout formats the run identifier that names every artifact of a run
const RunTSLayout = "20060102T150405Z"

// Snapshot is the immutable copy of the raw input taken at the start of a run
type Snapshot struct {
	RunTS string `json:"run_ts"`
	Path  string `json:"path"`
}

// NewRunTS returns the run identifier for the given instant
func NewRunTS(now time.Time) string {
	return now.UTC().Format(RunTSLayout)
}

// ParseRunTS parses a run identifier back into its UTC instant
func ParseRunTS(runTS string) (time.Time, error) {
	return time.Parse(RunTSLayout, runTS)
}

// SnapshotFileName names the raw snapshot of a run
func SnapshotFileName(runTS string) string {
	return fmt.Sprintf("raw_snapshot_%s.csv", runTS)
}

// ReportFileName names the validation report of a run
func ReportFileName(runTS string) string {
	return fmt.Sprintf("validation_report_%s.json", runTS)
}

// CleanFileName names the canonical output of a run
func CleanFileName(runTS string) string {
	return fmt.Sprintf("clean_transactions_%s.csv", runTS)
}

// CleanResult is the output of the cleaner for one batch
type CleanResult struct {
	Records []CanonicalTransaction
	// Dropped counts rows removed by the admission filter
	Dropped int
	// ZeroRefundsDropped counts refund rows whose amount was exactly zero
	ZeroRefundsDropped int
	// Duplicates counts surviving rows discarded by deduplication
	Duplicates int
}

// RunResult summarizes a completed pipeline run
type RunResult struct {
	RunTS        string        `json:"run_ts"`
	SnapshotPath string        `json:"snapshot_path"`
	ReportPath   string        `json:"report_path"`
	CleanPath    string        `json:"clean_path,omitempty"`
	Report       QualityReport `json:"report"`
	RowsRead     int           `json:"rows_read"`
	RowsCleaned  int           `json:"rows_cleaned"`
	RowsDropped  int           `json:"rows_dropped"`
	RawLoaded    int64         `json:"raw_loaded"`
	StagedLoaded int64         `json:"staged_loaded"`
	Duration     time.Duration `json:"duration_ns"`
}
