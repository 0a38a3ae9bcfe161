package services

import (
	"context"
	"time"

	"finance-pipeline/internal/models"
)

// CategoryMapperInterface maps free-text merchant categories onto the canonical category set
type CategoryMapperInterface interface {
	// MapCategory is total: every input yields one of the canonical labels
	MapCategory(raw string) string
}

// QualityGateInterface scores a raw batch and decides whether it may be loaded
type QualityGateInterface interface {
	Validate(batch *models.RawBatch, thresholds models.Thresholds) models.QualityReport
	Evaluate(batch *models.RawBatch, thresholds models.Thresholds) models.GateOutcome
}

// CleanerInterface rewrites a raw batch into canonical records
type CleanerInterface interface {
	Clean(batch *models.RawBatch) models.CleanResult
}

// ExtractorInterface takes the immutable snapshot a run works from
type ExtractorInterface interface {
	Extract(ctx context.Context, rawInput, processedDir string) (models.Snapshot, error)
}

// ToolRunnerInterface runs the downstream transformation tool
type ToolRunnerInterface interface {
	Run(ctx context.Context) error
}

// CommandRunner executes an external command and returns its combined output
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// MetricsRecorderInterface records pipeline metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	// Push sends the collected metrics to the configured gateway, if any
	Push(ctx context.Context) error
}

// PipelineServiceInterface runs the batch pipeline end to end
type PipelineServiceInterface interface {
	Run(ctx context.Context) (*models.RunResult, error)
}

// TransactionGeneratorInterface generates synthetic raw batches
type TransactionGeneratorInterface interface {
	GenerateBatch(opts GeneratorOptions) []models.RawTransaction
}
