package repositories

import (
	"context"

	"finance-pipeline/internal/models"
)

// BatchRepositoryInterface reads raw snapshots and writes canonical datasets
type BatchRepositoryInterface interface {
	ReadRawBatch(path string) (*models.RawBatch, error)
	WriteCanonicalBatch(path string, records []models.CanonicalTransaction) error
	WriteRawBatch(path string, rows []models.RawTransaction) error
}

// ReportRepositoryInterface persists quality reports as JSON artifacts
type ReportRepositoryInterface interface {
	WriteReport(report models.QualityReport, processedDir, runTS string) (string, error)
	ReadReport(path string) (*models.QualityReport, error)
	ReportPath(processedDir, runTS string) string
}

// WarehouseRepositoryInterface bulk loads batches into the warehouse
type WarehouseRepositoryInterface interface {
	// LoadRaw appends the unfiltered raw rows to the raw table
	LoadRaw(ctx context.Context, rows []models.RawTransaction) (int64, error)
	// RefreshStaging replaces the staging table contents with records in one transaction
	RefreshStaging(ctx context.Context, records []models.CanonicalTransaction) (int64, error)
}

// ValidationRunRepositoryInterface stores the audit trail of gate decisions
type ValidationRunRepositoryInterface interface {
	Create(run *models.ValidationRun) error
	GetByRunTS(runTS string) (*models.ValidationRun, error)
	ListRecent(limit int) ([]models.ValidationRun, error)
}
