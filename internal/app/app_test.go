package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"finance-pipeline/internal/config"
	apperrors "finance-pipeline/internal/errors"
	"finance-pipeline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "transaction_id,account_id,transaction_ts,posting_date,currency,amount,merchant_id,merchant_name,category,country,city,payment_method,status,is_refund,reference\n"

func offlineConfig(t *testing.T, rows string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw.csv")
	require.NoError(t, os.WriteFile(raw, []byte(header+rows), 0o600))

	return &config.Config{
		Database: config.DatabaseConfig{SkipLoad: true},
		DBT:      config.DBTConfig{Skip: true},
		Paths: config.PathsConfig{
			RawInputCSV:  raw,
			ProcessedDir: filepath.Join(dir, "processed"),
		},
		Rules: models.DefaultRules(),
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	var logs bytes.Buffer
	a, err := New(context.Background(), cfg, slog.New(slog.NewJSONHandler(&logs, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNew_OfflineRun(t *testing.T) {
	cfg := offlineConfig(t,
		"t1,a1,2025-01-01T10:00:00Z,2025-01-02,sek,100.005,m1,Shop,grocery,SE,Stockholm,card,BOOKED,false,r1\n"+
			"t2,a2,2025-01-01T11:00:00Z,2025-01-02,EUR,-5,m2,Cafe,cafe,SE,Uppsala,card,booked,yes,r2\n")
	a := newTestApp(t, cfg)

	assert.Nil(t, a.DB)
	assert.Nil(t, a.HealthChecker())

	result, err := a.Pipeline.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowsRead)
	assert.Equal(t, 2, result.RowsCleaned)
	assert.True(t, result.Report.Passed)
	assert.FileExists(t, result.CleanPath)
	assert.FileExists(t, result.ReportPath)

	families, err := a.Registry.Gather()
	require.NoError(t, err)
	var names []string
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "pipeline_runs_total")
	assert.Contains(t, names, "go_goroutines")
}

func TestNew_OfflineRejection(t *testing.T) {
	cfg := offlineConfig(t, "t1,a1,2025-01-01T10:00:00Z,2025-01-02,SEK,abc,m1,Shop,grocery,SE,Stockholm,card,BOOKED,false,r1\n")
	a := newTestApp(t, cfg)

	result, err := a.Pipeline.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, apperrors.ExitCode(err))
	assert.False(t, result.Report.Passed)
	assert.Contains(t, result.Report.FailedChecks, models.RuleAmountParseable)

	report, err := a.Reports.ReadReport(result.ReportPath)
	require.NoError(t, err)
	assert.Equal(t, 1, report.RowCount)

	entries, err := os.ReadDir(cfg.Paths.ProcessedDir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), "clean_transactions_"), entry.Name())
	}
}
