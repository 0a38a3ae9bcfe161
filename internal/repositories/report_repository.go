package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"finance-pipeline/internal/models"
)

var ErrReportNotFound = errors.New("validation report not found")

// FileReportRepository stores quality reports as indented JSON files
type FileReportRepository struct{}

// NewFileReportRepository creates a new report repository
func NewFileReportRepository() ReportRepositoryInterface {
	return &FileReportRepository{}
}

// ReportPath returns where the report of runTS is stored
func (r *FileReportRepository) ReportPath(processedDir, runTS string) string {
	return filepath.Join(processedDir, models.ReportFileName(runTS))
}

// WriteReport persists report and returns its path. Keys are written in sorted order.
func (r *FileReportRepository) WriteReport(report models.QualityReport, processedDir, runTS string) (string, error) {
	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create processed dir: %w", err)
	}

	if report.FailedChecks == nil {
		report.FailedChecks = []string{}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := r.ReportPath(processedDir, runTS)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report %q: %w", path, err)
	}

	return path, nil
}

// ReadReport loads a persisted report
func (r *FileReportRepository) ReadReport(path string) (*models.QualityReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to read report %q: %w", path, err)
	}

	var report models.QualityReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report %q: %w", path, err)
	}

	return &report, nil
}
