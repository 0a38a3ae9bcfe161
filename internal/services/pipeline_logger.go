package services

import (
	"context"
	"log/slog"
	"time"
)

// traceIDKey carries the trace id of an HTTP-triggered run
type traceIDKey struct{}

// WithTraceID returns a copy of ctx that carries traceID into pipeline logs
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// PipelineLogger provides structured logging for pipeline run events
type PipelineLogger struct {
	logger *slog.Logger
}

// NewPipelineLogger creates a new pipeline logger
func NewPipelineLogger(logger *slog.Logger) *PipelineLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineLogger{
		logger: logger,
	}
}

// LogSnapshotExtracted logs the raw snapshot taken at the start of a run
func (pl *PipelineLogger) LogSnapshotExtracted(ctx context.Context, runTS, source, snapshotPath string) {
	pl.logger.InfoContext(ctx, "raw snapshot extracted",
		slog.String("event_type", "snapshot_extracted"),
		slog.String("run_ts", runTS),
		slog.String("source", source),
		slog.String("snapshot_path", snapshotPath),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogValidationCompleted logs a passed quality gate
func (pl *PipelineLogger) LogValidationCompleted(ctx context.Context, runTS, reportPath string, rowCount int) {
	pl.logger.InfoContext(ctx, "validation passed",
		slog.String("event_type", "validation_completed"),
		slog.String("run_ts", runTS),
		slog.String("report_path", reportPath),
		slog.Int("row_count", rowCount),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogValidationFailed logs a rejected batch
func (pl *PipelineLogger) LogValidationFailed(ctx context.Context, runTS, reportPath string, failedChecks []string) {
	pl.logger.ErrorContext(ctx, "validation failed",
		slog.String("event_type", "validation_failed"),
		slog.String("run_ts", runTS),
		slog.String("report_path", reportPath),
		slog.Any("failed_checks", failedChecks),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogRowsDropped logs rows removed while cleaning
func (pl *PipelineLogger) LogRowsDropped(ctx context.Context, runTS string, dropped, zeroRefunds, duplicates int) {
	pl.logger.WarnContext(ctx, "rows dropped during cleaning",
		slog.String("event_type", "rows_dropped"),
		slog.String("run_ts", runTS),
		slog.Int("dropped", dropped),
		slog.Int("zero_refunds_dropped", zeroRefunds),
		slog.Int("duplicates", duplicates),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogCleanWritten logs the canonical output file
func (pl *PipelineLogger) LogCleanWritten(ctx context.Context, runTS, cleanPath string, rows int) {
	pl.logger.InfoContext(ctx, "clean output written",
		slog.String("event_type", "clean_written"),
		slog.String("run_ts", runTS),
		slog.String("clean_path", cleanPath),
		slog.Int("rows", rows),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogLoadCompleted logs a finished warehouse load
func (pl *PipelineLogger) LogLoadCompleted(ctx context.Context, runTS string, rawRows, stagedRows int64) {
	pl.logger.InfoContext(ctx, "warehouse load completed",
		slog.String("event_type", "load_completed"),
		slog.String("run_ts", runTS),
		slog.Int64("raw_rows", rawRows),
		slog.Int64("staged_rows", stagedRows),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogToolStep logs one step of the transformation tool
func (pl *PipelineLogger) LogToolStep(ctx context.Context, step string, durationMs int64, err error) {
	if err != nil {
		pl.logger.ErrorContext(ctx, "transformation step failed",
			slog.String("event_type", "tool_step_failed"),
			slog.String("step", step),
			slog.Int64("duration_ms", durationMs),
			slog.String("error", err.Error()),
			slog.Time("timestamp", time.Now()),
			slog.String("trace_id", TraceIDFromContext(ctx)),
		)
		return
	}
	pl.logger.InfoContext(ctx, "transformation step completed",
		slog.String("event_type", "tool_step_completed"),
		slog.String("step", step),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogRunCompleted logs a successful run
func (pl *PipelineLogger) LogRunCompleted(ctx context.Context, runTS string, durationMs int64) {
	pl.logger.InfoContext(ctx, "pipeline completed",
		slog.String("event_type", "run_completed"),
		slog.String("run_ts", runTS),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogRunFailed logs a run aborted by an error
func (pl *PipelineLogger) LogRunFailed(ctx context.Context, runTS, stage string, err error) {
	pl.logger.ErrorContext(ctx, "pipeline failed",
		slog.String("event_type", "run_failed"),
		slog.String("run_ts", runTS),
		slog.String("stage", stage),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogWarning logs a non-fatal problem
func (pl *PipelineLogger) LogWarning(ctx context.Context, runTS, operation string, err error) {
	pl.logger.WarnContext(ctx, "pipeline warning",
		slog.String("event_type", "warning"),
		slog.String("run_ts", runTS),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// TraceIDFromContext returns the trace id carried by ctx, or an empty string
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}
