package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	apperrors "finance-pipeline/internal/errors"
	"finance-pipeline/internal/models"
	"finance-pipeline/internal/repositories"
	"finance-pipeline/internal/repositories/repository_mocks"
	"finance-pipeline/internal/services"
	"finance-pipeline/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testRunTS = "20250101T120000Z"

type PipelineServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	extractor *service_mocks.MockExtractorInterface
	gate      *service_mocks.MockQualityGateInterface
	cleaner   *service_mocks.MockCleanerInterface
	tool      *service_mocks.MockToolRunnerInterface
	metrics   *service_mocks.MockMetricsRecorderInterface
	batches   *repository_mocks.MockBatchRepositoryInterface
	reports   *repository_mocks.MockReportRepositoryInterface
	warehouse *repository_mocks.MockWarehouseRepositoryInterface
	runs      *repository_mocks.MockValidationRunRepositoryInterface
	service   *services.PipelineService

	snapshot models.Snapshot
	batch    *models.RawBatch
}

func TestPipelineServiceSuite(t *testing.T) {
	suite.Run(t, new(PipelineServiceTestSuite))
}

func (s *PipelineServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.extractor = service_mocks.NewMockExtractorInterface(s.ctrl)
	s.gate = service_mocks.NewMockQualityGateInterface(s.ctrl)
	s.cleaner = service_mocks.NewMockCleanerInterface(s.ctrl)
	s.tool = service_mocks.NewMockToolRunnerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.batches = repository_mocks.NewMockBatchRepositoryInterface(s.ctrl)
	s.reports = repository_mocks.NewMockReportRepositoryInterface(s.ctrl)
	s.warehouse = repository_mocks.NewMockWarehouseRepositoryInterface(s.ctrl)
	s.runs = repository_mocks.NewMockValidationRunRepositoryInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.service = services.NewPipelineService(
		services.PipelineConfig{
			RawInputCSV:  "data/raw/financial_transactions.csv",
			ProcessedDir: "data/processed",
			Thresholds:   models.DefaultThresholds(),
		},
		services.PipelineDependencies{
			Extractor:      s.extractor,
			Batches:        s.batches,
			Reports:        s.reports,
			Gate:           s.gate,
			Cleaner:        s.cleaner,
			Warehouse:      s.warehouse,
			ValidationRuns: s.runs,
			Tool:           s.tool,
			Metrics:        s.metrics,
			Logger:         services.NewPipelineLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		},
	)

	s.snapshot = models.Snapshot{RunTS: testRunTS, Path: "data/processed/raw_snapshot_" + testRunTS + ".csv"}
	s.batch = &models.RawBatch{
		Source: s.snapshot.Path,
		Rows:   []models.RawTransaction{{TransactionID: "t1"}, {TransactionID: "t2"}},
	}
}

func (s *PipelineServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PipelineServiceTestSuite) reportPath() string {
	return filepath.Join("data/processed", models.ReportFileName(testRunTS))
}

func (s *PipelineServiceTestSuite) expectThroughGate(outcome models.GateOutcome) {
	s.extractor.EXPECT().
		Extract(gomock.Any(), "data/raw/financial_transactions.csv", "data/processed").
		Return(s.snapshot, nil)
	s.batches.EXPECT().ReadRawBatch(s.snapshot.Path).Return(s.batch, nil)
	s.gate.EXPECT().Evaluate(s.batch, models.DefaultThresholds()).Return(outcome)
	s.reports.EXPECT().WriteReport(outcome.Report, "data/processed", testRunTS).Return(s.reportPath(), nil)
	s.runs.EXPECT().Create(gomock.Any()).DoAndReturn(func(run *models.ValidationRun) error {
		s.Equal(testRunTS, run.RunTS)
		s.Equal(s.reportPath(), run.ReportPath)
		s.Equal(outcome.Report.Passed, run.Passed)
		return nil
	})
}

func (s *PipelineServiceTestSuite) cleanResult() models.CleanResult {
	return models.CleanResult{
		Records: []models.CanonicalTransaction{
			{TransactionID: "t1", AccountID: "a1", Amount: decimal.RequireFromString("1.00")},
		},
		Dropped:    1,
		Duplicates: 0,
	}
}

func (s *PipelineServiceTestSuite) TestRun_Success() {
	report := models.QualityReport{RowCount: 2, Passed: true, FailedChecks: []string{}}
	s.expectThroughGate(models.Accepted(report))

	cleaned := s.cleanResult()
	cleanPath := filepath.Join("data/processed", models.CleanFileName(testRunTS))

	gomock.InOrder(
		s.cleaner.EXPECT().Clean(s.batch).Return(cleaned),
		s.batches.EXPECT().WriteCanonicalBatch(cleanPath, cleaned.Records).Return(nil),
		s.warehouse.EXPECT().LoadRaw(gomock.Any(), s.batch.Rows).Return(int64(2), nil),
		s.warehouse.EXPECT().RefreshStaging(gomock.Any(), cleaned.Records).Return(int64(1), nil),
		s.tool.EXPECT().Run(gomock.Any()).Return(nil),
	)
	s.metrics.EXPECT().Push(gomock.Any()).Return(nil)

	result, err := s.service.Run(s.ctx)

	s.Require().NoError(err)
	s.Equal(testRunTS, result.RunTS)
	s.Equal(s.reportPath(), result.ReportPath)
	s.Equal(cleanPath, result.CleanPath)
	s.Equal(2, result.RowsRead)
	s.Equal(1, result.RowsCleaned)
	s.Equal(1, result.RowsDropped)
	s.Equal(int64(2), result.RawLoaded)
	s.Equal(int64(1), result.StagedLoaded)
	s.True(result.Report.Passed)
	s.Positive(int64(result.Duration))
}

func (s *PipelineServiceTestSuite) TestRun_RejectedBatchStopsBeforeCleaning() {
	report := models.QualityReport{
		RowCount:     2,
		Passed:       false,
		FailedChecks: []string{models.RuleAccountIDNotNull, models.RuleInvalidCurrencyThreshold},
	}
	s.expectThroughGate(models.Rejected(report))
	s.metrics.EXPECT().Push(gomock.Any()).Return(nil)
	// cleaner, writer, warehouse and tool have no expectations: any call fails the test

	result, err := s.service.Run(s.ctx)

	var rejected *apperrors.ValidationFailedError
	s.Require().ErrorAs(err, &rejected)
	s.Equal(s.reportPath(), rejected.ReportPath)
	s.Equal(report.FailedChecks, rejected.FailedChecks)
	s.Equal(apperrors.ExitValidationFailed, apperrors.ExitCode(err))

	s.Require().NotNil(result)
	s.Equal(s.reportPath(), result.ReportPath)
	s.False(result.Report.Passed)
}

func (s *PipelineServiceTestSuite) TestRun_ExtractFailure() {
	inputErr := apperrors.NewInputError(apperrors.InputNotFound, "data/raw/financial_transactions.csv", os.ErrNotExist)
	s.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Snapshot{}, inputErr)
	s.metrics.EXPECT().Push(gomock.Any()).Return(nil)

	result, err := s.service.Run(s.ctx)

	s.Nil(result)
	s.True(apperrors.IsInputError(err))
	s.Equal(apperrors.ExitFailure, apperrors.ExitCode(err))
}

func (s *PipelineServiceTestSuite) TestRun_StructuralReadFailureWritesNoReport() {
	s.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.snapshot, nil)
	s.batches.EXPECT().ReadRawBatch(s.snapshot.Path).
		Return(nil, apperrors.NewInputError(apperrors.InputMissingColumns, s.snapshot.Path, repositories.ErrMissingColumns))
	s.metrics.EXPECT().Push(gomock.Any()).Return(nil)

	_, err := s.service.Run(s.ctx)

	s.Equal(apperrors.InputMissingColumns, apperrors.CodeOf(err))
	s.ErrorIs(err, repositories.ErrMissingColumns)
}

func (s *PipelineServiceTestSuite) TestRun_ReportWriteFailure() {
	report := models.QualityReport{Passed: true}
	s.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.snapshot, nil)
	s.batches.EXPECT().ReadRawBatch(gomock.Any()).Return(s.batch, nil)
	s.gate.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(models.Accepted(report))
	s.reports.EXPECT().WriteReport(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))
	s.metrics.EXPECT().Push(gomock.Any()).Return(nil)

	_, err := s.service.Run(s.ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "disk full")
	s.Equal(apperrors.ExitFailure, apperrors.ExitCode(err))
}

func (s *PipelineServiceTestSuite) TestRun_AuditFailureIsNotFatal() {
	report := models.QualityReport{Passed: true, FailedChecks: []string{}}
	cleaned := s.cleanResult()

	s.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.snapshot, nil)
	s.batches.EXPECT().ReadRawBatch(gomock.Any()).Return(s.batch, nil)
	s.gate.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(models.Accepted(report))
	s.reports.EXPECT().WriteReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.reportPath(), nil)
	s.runs.EXPECT().Create(gomock.Any()).Return(errors.New("relation does not exist"))
	s.cleaner.EXPECT().Clean(gomock.Any()).Return(cleaned)
	s.batches.EXPECT().WriteCanonicalBatch(gomock.Any(), gomock.Any()).Return(nil)
	s.warehouse.EXPECT().LoadRaw(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	s.warehouse.EXPECT().RefreshStaging(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	s.tool.EXPECT().Run(gomock.Any()).Return(nil)
	s.metrics.EXPECT().Push(gomock.Any()).Return(nil)

	_, err := s.service.Run(s.ctx)
	s.NoError(err)
}

func (s *PipelineServiceTestSuite) TestRun_RawLoadFailure() {
	report := models.QualityReport{Passed: true, FailedChecks: []string{}}
	s.expectThroughGate(models.Accepted(report))
	s.cleaner.EXPECT().Clean(gomock.Any()).Return(s.cleanResult())
	s.batches.EXPECT().WriteCanonicalBatch(gomock.Any(), gomock.Any()).Return(nil)
	s.warehouse.EXPECT().LoadRaw(gomock.Any(), gomock.Any()).Return(int64(0), repositories.ErrRawLoadFailed)
	s.metrics.EXPECT().Push(gomock.Any()).Return(nil)

	_, err := s.service.Run(s.ctx)

	s.ErrorIs(err, repositories.ErrRawLoadFailed)
	s.Equal(apperrors.LoadRawFailed, apperrors.CodeOf(err))
	s.Equal(apperrors.ExitFailure, apperrors.ExitCode(err))
}

func (s *PipelineServiceTestSuite) TestRun_StagingFailure() {
	report := models.QualityReport{Passed: true, FailedChecks: []string{}}
	s.expectThroughGate(models.Accepted(report))
	s.cleaner.EXPECT().Clean(gomock.Any()).Return(s.cleanResult())
	s.batches.EXPECT().WriteCanonicalBatch(gomock.Any(), gomock.Any()).Return(nil)
	s.warehouse.EXPECT().LoadRaw(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	s.warehouse.EXPECT().RefreshStaging(gomock.Any(), gomock.Any()).Return(int64(0), repositories.ErrStagingLoadFailed)
	s.metrics.EXPECT().Push(gomock.Any()).Return(nil)

	_, err := s.service.Run(s.ctx)

	s.Equal(apperrors.LoadStagingFailed, apperrors.CodeOf(err))
}

func (s *PipelineServiceTestSuite) TestRun_ToolFailure() {
	report := models.QualityReport{Passed: true, FailedChecks: []string{}}
	s.expectThroughGate(models.Accepted(report))
	s.cleaner.EXPECT().Clean(gomock.Any()).Return(s.cleanResult())
	s.batches.EXPECT().WriteCanonicalBatch(gomock.Any(), gomock.Any()).Return(nil)
	s.warehouse.EXPECT().LoadRaw(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	s.warehouse.EXPECT().RefreshStaging(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	s.tool.EXPECT().Run(gomock.Any()).Return(&apperrors.ToolError{Step: "test", Err: errors.New("exit status 1")})
	s.metrics.EXPECT().Push(gomock.Any()).Return(nil)

	result, err := s.service.Run(s.ctx)

	s.Equal(apperrors.ExitToolFailed, apperrors.ExitCode(err))
	s.Require().NotNil(result)
	s.Equal(int64(1), result.StagedLoaded)
}

func (s *PipelineServiceTestSuite) TestRun_PushFailureDoesNotChangeOutcome() {
	s.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Snapshot{}, apperrors.NewInputError(apperrors.InputNotFound, "x", nil))
	s.metrics.EXPECT().Push(gomock.Any()).Return(errors.New("pushgateway unreachable"))

	_, err := s.service.Run(s.ctx)

	s.True(apperrors.IsInputError(err))
}

func (s *PipelineServiceTestSuite) TestRun_RecordsRunStatus() {
	ctrl := gomock.NewController(s.T())
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	extractor := service_mocks.NewMockExtractorInterface(ctrl)

	service := services.NewPipelineService(services.PipelineConfig{}, services.PipelineDependencies{
		Extractor: extractor,
		Metrics:   metrics,
		Logger:    services.NewPipelineLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})

	extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Snapshot{}, errors.New("boom"))
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().IncrementCounter(services.MetricRunsTotal, map[string]string{"status": services.RunStatusFailed})
	metrics.EXPECT().Push(gomock.Any()).Return(nil)

	_, err := service.Run(s.ctx)
	s.Error(err)
}

func (s *PipelineServiceTestSuite) TestRun_OptionalStepsSkipped() {
	report := models.QualityReport{Passed: true, FailedChecks: []string{}}
	cleaned := s.cleanResult()

	service := services.NewPipelineService(
		services.PipelineConfig{ProcessedDir: "data/processed", Thresholds: models.DefaultThresholds()},
		services.PipelineDependencies{
			Extractor: s.extractor,
			Batches:   s.batches,
			Reports:   s.reports,
			Gate:      s.gate,
			Cleaner:   s.cleaner,
		},
	)

	s.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.snapshot, nil)
	s.batches.EXPECT().ReadRawBatch(gomock.Any()).Return(s.batch, nil)
	s.gate.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(models.Accepted(report))
	s.reports.EXPECT().WriteReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.reportPath(), nil)
	s.cleaner.EXPECT().Clean(gomock.Any()).Return(cleaned)
	s.batches.EXPECT().WriteCanonicalBatch(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Run(s.ctx)

	s.Require().NoError(err)
	s.Zero(result.RawLoaded)
	s.Zero(result.StagedLoaded)
}

// TestRun_EndToEndWithFiles wires the real gate, cleaner and file repositories
func TestRun_EndToEndWithFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "raw.csv")
	content := "transaction_id,account_id,transaction_ts,posting_date,currency,amount,merchant_id,merchant_name,category,country,city,payment_method,status,is_refund,reference\n" +
		"t2,a1,2025-01-02T10:00:00Z,2025-01-02,sek,-20,m1,ICA,grocery,SE,Stockholm,card,booked,yes,r2\n" +
		"t1,a1,2025-01-01T10:00:00Z,2025-01-01,eur,12.345,m2,Bar,restaurant,SE,Lund,card,booked,false,r1\n"
	if err := os.WriteFile(input, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rules := models.DefaultRules()
	service := services.NewPipelineService(
		services.PipelineConfig{RawInputCSV: input, ProcessedDir: filepath.Join(dir, "processed"), Thresholds: rules.Thresholds},
		services.PipelineDependencies{
			Extractor: services.NewExtractService(nil),
			Batches:   repositories.NewCSVBatchRepository(),
			Reports:   repositories.NewFileReportRepository(),
			Gate:      services.NewQualityGate(rules),
			Cleaner:   services.NewCleaner(rules, services.NewCategoryMapper(rules.SynonymTable())),
			Logger:    services.NewPipelineLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		},
	)

	result, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(result.CleanPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "transaction_id,account_id,transaction_ts,posting_date,currency,amount,merchant_id,merchant_name,category,country,city,payment_method,status,is_refund,reference\n" +
		"t1,a1,2025-01-01T10:00:00Z,2025-01-01,EUR,12.34,m2,Bar,Dining,SE,Lund,card,BOOKED,false,r1\n" +
		"t2,a1,2025-01-02T10:00:00Z,2025-01-02,SEK,-20.00,m1,ICA,Groceries,SE,Stockholm,card,BOOKED,true,r2\n"
	if string(data) != want {
		t.Errorf("clean output mismatch:\n got: %q\nwant: %q", string(data), want)
	}

	if _, err := os.Stat(result.ReportPath); err != nil {
		t.Errorf("report not written: %v", err)
	}
}
