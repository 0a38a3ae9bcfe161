package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"finance-pipeline/internal/app"
	"finance-pipeline/internal/config"
	"finance-pipeline/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Database: config.DatabaseConfig{SkipLoad: true},
		DBT:      config.DBTConfig{Skip: true},
		Paths: config.PathsConfig{
			RawInputCSV:  filepath.Join(dir, "missing.csv"),
			ProcessedDir: dir,
		},
		Rules: models.DefaultRules(),
	}
	a, err := app.New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return newServer(a)
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestServer_Routes(t *testing.T) {
	e := newTestServer(t)

	testCases := []struct {
		name     string
		method   string
		target   string
		status   int
		contains string
	}{
		{"health", http.MethodGet, "/health", http.StatusOK, `"database":"disabled"`},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "go_goroutines"},
		{"missing input", http.MethodPost, "/runs", http.StatusBadRequest, "INPUT_004"},
		{"bad run_ts", http.MethodGet, "/runs/latest/report", http.StatusBadRequest, "VALIDATION_002"},
		{"missing report", http.MethodGet, "/runs/20250101T000000Z/report", http.StatusNotFound, "VALIDATION_003"},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound, "REQUEST_002"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(e, tc.method, tc.target)

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.contains)
			assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
		})
	}
}
