package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"sync"

	"finance-pipeline/internal/errors"
	"finance-pipeline/internal/models"
	"finance-pipeline/internal/repositories"
	"finance-pipeline/internal/services"

	"github.com/labstack/echo/v4"
)

// RejectedRunResponse is returned when the quality gate rejects a batch. It
// carries the persisted report next to the standard error body.
type RejectedRunResponse struct {
	*errors.ErrorResponse
	ReportPath string                `json:"report_path"`
	Report     *models.QualityReport `json:"report,omitempty"`
}

// ReportParams identifies a persisted validation report
type ReportParams struct {
	RunTS string `param:"run_ts" validate:"required,run_ts"`
}

// RunHandler triggers pipeline runs and serves their reports
type RunHandler struct {
	pipeline     services.PipelineServiceInterface
	reports      repositories.ReportRepositoryInterface
	processedDir string
	running      sync.Mutex
}

// NewRunHandler creates a new run handler
func NewRunHandler(pipeline services.PipelineServiceInterface, reports repositories.ReportRepositoryInterface, processedDir string) *RunHandler {
	return &RunHandler{
		pipeline:     pipeline,
		reports:      reports,
		processedDir: processedDir,
	}
}

// Register mounts the run routes on g
func (h *RunHandler) Register(g *echo.Group) {
	g.POST("", h.TriggerRun)
	g.GET("/:run_ts/report", h.GetReport)
}

// TriggerRun runs the pipeline synchronously. Only one run executes at a time.
func (h *RunHandler) TriggerRun(c echo.Context) error {
	if !h.running.TryLock() {
		return SendError(c, errors.SystemServiceUnavailable,
			errors.WithDetails("a pipeline run is already in progress"))
	}
	defer h.running.Unlock()

	traceID := getTraceID(c)
	ctx := services.WithTraceID(c.Request().Context(), traceID)

	result, err := h.pipeline.Run(ctx)
	if err == nil {
		return c.JSON(http.StatusOK, result)
	}

	var rejected *errors.ValidationFailedError
	if stderrors.As(err, &rejected) {
		response := RejectedRunResponse{
			ErrorResponse: errors.NewValidationError(rejected.FailedChecks, traceID),
			ReportPath:    rejected.ReportPath,
		}
		if result != nil {
			response.Report = &result.Report
		}
		return c.JSON(http.StatusUnprocessableEntity, response)
	}

	slog.ErrorContext(ctx, "pipeline run failed",
		"trace_id", traceID,
		"error_code", string(errors.CodeOf(err)),
		"error", err.Error(),
	)
	return SendPipelineError(c, err)
}

// GetReport serves the validation report persisted for a run
func (h *RunHandler) GetReport(c echo.Context) error {
	var params ReportParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationInvalidRunTS, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&params); err != nil {
		return SendError(c, errors.ValidationInvalidRunTS,
			errors.WithDetails("run_ts must match YYYYMMDDTHHMMSSZ"))
	}

	report, err := h.reports.ReadReport(h.reports.ReportPath(h.processedDir, params.RunTS))
	if err != nil {
		if stderrors.Is(err, repositories.ErrReportNotFound) {
			return SendError(c, errors.ValidationReportMissing, errors.WithDetails(params.RunTS))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
