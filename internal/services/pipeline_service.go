package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	apperrors "finance-pipeline/internal/errors"
	"finance-pipeline/internal/models"
	"finance-pipeline/internal/repositories"
)

// Run outcome labels exported on the runs counter
const (
	RunStatusSuccess          = "success"
	RunStatusValidationFailed = "validation_failed"
	RunStatusToolFailed       = "tool_failed"
	RunStatusFailed           = "failed"
)

// Pipeline stage names used in logs and the stage duration histogram
const (
	StageExtract   = "extract"
	StageRead      = "read"
	StageValidate  = "validate"
	StageClean     = "clean"
	StageWrite     = "write"
	StageLoad      = "load"
	StageTransform = "transform"
)

// PipelineConfig holds the settings of a pipeline run
type PipelineConfig struct {
	RawInputCSV  string
	ProcessedDir string
	Thresholds   models.Thresholds
}

// PipelineDependencies are the collaborators of a PipelineService. Warehouse,
// ValidationRuns and Tool are optional; a nil value skips that step.
type PipelineDependencies struct {
	Extractor      ExtractorInterface
	Batches        repositories.BatchRepositoryInterface
	Reports        repositories.ReportRepositoryInterface
	Gate           QualityGateInterface
	Cleaner        CleanerInterface
	Warehouse      repositories.WarehouseRepositoryInterface
	ValidationRuns repositories.ValidationRunRepositoryInterface
	Tool           ToolRunnerInterface
	Metrics        MetricsRecorderInterface
	Logger         *PipelineLogger
}

// PipelineService orchestrates extract, validate, clean, load and transform
type PipelineService struct {
	config PipelineConfig
	deps   PipelineDependencies
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(config PipelineConfig, deps PipelineDependencies) *PipelineService {
	if deps.Logger == nil {
		deps.Logger = NewPipelineLogger(nil)
	}
	return &PipelineService{
		config: config,
		deps:   deps,
	}
}

// Run executes one pipeline run. A rejected batch yields *errors.ValidationFailedError
// after its report has been persisted; nothing is loaded in that case.
func (s *PipelineService) Run(ctx context.Context) (result *models.RunResult, err error) {
	start := time.Now()
	runTS := ""
	stage := StageExtract

	defer func() {
		elapsed := time.Since(start)
		s.finishRun(ctx, runTS, stage, elapsed, err)
		if result != nil {
			result.Duration = elapsed
		}
	}()

	extractStart := time.Now()
	snapshot, err := s.deps.Extractor.Extract(ctx, s.config.RawInputCSV, s.config.ProcessedDir)
	s.observe(StageExtract, time.Since(extractStart))
	if err != nil {
		return nil, err
	}
	runTS = snapshot.RunTS
	s.deps.Logger.LogSnapshotExtracted(ctx, runTS, s.config.RawInputCSV, snapshot.Path)

	stage = StageRead
	batch, err := s.deps.Batches.ReadRawBatch(snapshot.Path)
	if err != nil {
		return nil, err
	}
	s.recordRows(StageRead, batch.Len())

	result = &models.RunResult{
		RunTS:        runTS,
		SnapshotPath: snapshot.Path,
		RowsRead:     batch.Len(),
	}

	stage = StageValidate
	report, reportPath, err := s.ValidateOrReject(ctx, runTS, batch)
	result.Report = report
	result.ReportPath = reportPath
	if err != nil {
		return result, err
	}

	stage = StageClean
	cleanStart := time.Now()
	cleaned := s.deps.Cleaner.Clean(batch)
	s.observe(StageClean, time.Since(cleanStart))
	s.recordCleanResult(ctx, runTS, cleaned)
	result.RowsCleaned = len(cleaned.Records)
	result.RowsDropped = cleaned.Dropped + cleaned.ZeroRefundsDropped + cleaned.Duplicates

	stage = StageWrite
	cleanPath := filepath.Join(s.config.ProcessedDir, models.CleanFileName(runTS))
	if err := s.deps.Batches.WriteCanonicalBatch(cleanPath, cleaned.Records); err != nil {
		return result, fmt.Errorf("failed to write clean batch: %w", err)
	}
	result.CleanPath = cleanPath
	s.recordRows(StageWrite, len(cleaned.Records))
	s.deps.Logger.LogCleanWritten(ctx, runTS, cleanPath, len(cleaned.Records))

	stage = StageLoad
	if err := s.load(ctx, runTS, batch, cleaned.Records, result); err != nil {
		return result, err
	}

	stage = StageTransform
	if s.deps.Tool != nil {
		toolStart := time.Now()
		err := s.deps.Tool.Run(ctx)
		s.observe(StageTransform, time.Since(toolStart))
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// ValidateOrReject runs the quality gate, persists the report and records the
// decision. The report is always written before a rejection is signalled.
func (s *PipelineService) ValidateOrReject(ctx context.Context, runTS string, batch *models.RawBatch) (models.QualityReport, string, error) {
	validateStart := time.Now()
	outcome := s.deps.Gate.Evaluate(batch, s.config.Thresholds)
	s.observe(StageValidate, time.Since(validateStart))
	report := outcome.Report

	reportPath, err := s.deps.Reports.WriteReport(report, s.config.ProcessedDir, runTS)
	if err != nil {
		return report, "", fmt.Errorf("failed to persist validation report: %w", err)
	}

	if s.deps.ValidationRuns != nil {
		if err := s.deps.ValidationRuns.Create(models.NewValidationRun(runTS, reportPath, report)); err != nil {
			s.deps.Logger.LogWarning(ctx, runTS, "record_validation_run", err)
		}
	}

	s.recordReport(report)

	if !outcome.IsAccepted() {
		s.deps.Logger.LogValidationFailed(ctx, runTS, reportPath, report.FailedChecks)
		return report, reportPath, &apperrors.ValidationFailedError{
			ReportPath:   reportPath,
			FailedChecks: append([]string(nil), report.FailedChecks...),
		}
	}

	s.deps.Logger.LogValidationCompleted(ctx, runTS, reportPath, report.RowCount)
	return report, reportPath, nil
}

func (s *PipelineService) load(ctx context.Context, runTS string, batch *models.RawBatch, records []models.CanonicalTransaction, result *models.RunResult) error {
	if s.deps.Warehouse == nil {
		return nil
	}

	loadStart := time.Now()
	defer func() { s.observe(StageLoad, time.Since(loadStart)) }()

	rawRows, err := s.deps.Warehouse.LoadRaw(ctx, batch.Rows)
	if err != nil {
		return &apperrors.LoadError{Code: apperrors.LoadRawFailed, Err: err}
	}
	result.RawLoaded = rawRows
	s.recordGauge(MetricRowsLoaded, float64(rawRows), "table", repositories.RawSchema+"."+repositories.RawTable)

	stagedRows, err := s.deps.Warehouse.RefreshStaging(ctx, records)
	if err != nil {
		return &apperrors.LoadError{Code: apperrors.LoadStagingFailed, Err: err}
	}
	result.StagedLoaded = stagedRows
	s.recordGauge(MetricRowsLoaded, float64(stagedRows), "table", repositories.StagingSchema+"."+repositories.StagingTable)

	s.deps.Logger.LogLoadCompleted(ctx, runTS, rawRows, stagedRows)
	return nil
}

func (s *PipelineService) finishRun(ctx context.Context, runTS, stage string, elapsed time.Duration, err error) {
	status := RunStatusSuccess
	switch {
	case err == nil:
		s.deps.Logger.LogRunCompleted(ctx, runTS, elapsed.Milliseconds())
	case apperrors.IsValidationFailed(err):
		status = RunStatusValidationFailed
	case apperrors.IsToolError(err):
		status = RunStatusToolFailed
		s.deps.Logger.LogRunFailed(ctx, runTS, stage, err)
	default:
		status = RunStatusFailed
		s.deps.Logger.LogRunFailed(ctx, runTS, stage, err)
	}

	if s.deps.Metrics == nil {
		return
	}

	s.deps.Metrics.IncrementCounter(MetricRunsTotal, map[string]string{"status": status})
	s.deps.Metrics.RecordProcessingTime(MetricRunDuration, elapsed)
	if err == nil {
		s.deps.Metrics.RecordGauge(MetricLastSuccess, float64(time.Now().Unix()), nil)
	}

	if pushErr := s.deps.Metrics.Push(context.WithoutCancel(ctx)); pushErr != nil {
		s.deps.Logger.LogWarning(ctx, runTS, "metrics_push", pushErr)
	}
}

func (s *PipelineService) recordReport(report models.QualityReport) {
	if s.deps.Metrics == nil {
		return
	}
	s.deps.Metrics.RecordGauge(MetricQualityPct, report.Pct.InvalidCurrency, map[string]string{"check": "invalid_currency"})
	s.deps.Metrics.RecordGauge(MetricQualityPct, report.Pct.UnparseableAnyDate, map[string]string{"check": "unparseable_any_date"})
	s.deps.Metrics.RecordGauge(MetricQualityPct, report.Pct.DuplicateTransactionID, map[string]string{"check": "duplicate_transaction_id"})
	for _, rule := range report.FailedChecks {
		s.deps.Metrics.IncrementCounter(MetricGateFailedChecks, map[string]string{"rule": rule})
	}
}

func (s *PipelineService) recordCleanResult(ctx context.Context, runTS string, cleaned models.CleanResult) {
	s.deps.Logger.LogRowsDropped(ctx, runTS, cleaned.Dropped, cleaned.ZeroRefundsDropped, cleaned.Duplicates)
	s.recordGauge(MetricRowsDropped, float64(cleaned.Dropped), "reason", "admission")
	s.recordGauge(MetricRowsDropped, float64(cleaned.ZeroRefundsDropped), "reason", "zero_refund")
	s.recordGauge(MetricRowsDropped, float64(cleaned.Duplicates), "reason", "duplicate")
}

func (s *PipelineService) recordRows(stage string, n int) {
	s.recordGauge(MetricRowsProcessed, float64(n), "stage", stage)
}

func (s *PipelineService) recordGauge(name string, value float64, key, label string) {
	if s.deps.Metrics == nil {
		return
	}
	s.deps.Metrics.RecordGauge(name, value, map[string]string{key: label})
}

func (s *PipelineService) observe(stage string, d time.Duration) {
	if s.deps.Metrics == nil {
		return
	}
	s.deps.Metrics.RecordProcessingTime(stage, d)
}
