package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"finance-pipeline/internal/app"
	"finance-pipeline/internal/config"
	apperrors "finance-pipeline/internal/errors"
)

// Exit codes: 0 success, 1 unexpected failure, 2 rejected by the quality gate,
// 3 transformation tool failure.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err.Error())
		return apperrors.ExitCode(err)
	}

	logger := cfg.Logging.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to start pipeline", "error", err.Error())
		return apperrors.ExitCode(err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("failed to close warehouse connection", "error", err.Error())
		}
	}()

	result, err := a.Pipeline.Run(ctx)
	if err != nil {
		logger.Error("pipeline run failed",
			"error_code", string(apperrors.CodeOf(err)),
			"exit_code", apperrors.ExitCode(err),
			"error", err.Error(),
		)
		return apperrors.ExitCode(err)
	}

	logger.Info("pipeline run succeeded",
		"run_ts", result.RunTS,
		"rows_read", result.RowsRead,
		"rows_cleaned", result.RowsCleaned,
		"rows_dropped", result.RowsDropped,
		"clean_path", result.CleanPath,
	)
	return 0
}
