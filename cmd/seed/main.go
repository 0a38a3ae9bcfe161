// Package main writes a synthetic raw transactions CSV for local pipeline runs.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"finance-pipeline/internal/models"
	"finance-pipeline/internal/repositories"
	"finance-pipeline/internal/services"
)

func main() {
	opts, out, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rows := services.NewTransactionGenerator().GenerateBatch(opts)
	if err := repositories.NewCSVBatchRepository().WriteRawBatch(out, rows); err != nil {
		slog.Error("failed to write seed file", "path", out, "error", err.Error())
		os.Exit(1)
	}

	slog.Info("seed file written",
		"path", out,
		"rows", len(rows),
		"seed", opts.Seed,
	)
}

func parseFlags(args []string) (services.GeneratorOptions, string, error) {
	defaults := services.DefaultGeneratorOptions()
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	rows := fs.Int("rows", defaults.Rows, "number of rows to generate")
	seed := fs.Uint64("seed", defaults.Seed, "random seed; the same seed yields the same file")
	start := fs.String("start", defaults.Start.Format(models.CanonicalDateLayout), "first transaction date (YYYY-MM-DD)")
	days := fs.Int("days", defaults.Days, "number of days covered by the batch")
	out := fs.String("out", "data/raw/financial_transactions.csv", "output CSV path")
	invalidCurrency := fs.Float64("invalid-currency-rate", 0, "fraction of rows with an invalid currency")
	badDates := fs.Float64("bad-date-rate", 0, "fraction of rows with an unparseable timestamp")
	duplicates := fs.Float64("duplicate-rate", 0, "fraction of rows repeating an earlier transaction_id")
	refunds := fs.Float64("refund-rate", defaults.RefundRate, "fraction of rows that are refunds")

	if err := fs.Parse(args); err != nil {
		return services.GeneratorOptions{}, "", err
	}

	startDate, err := time.Parse(models.CanonicalDateLayout, *start)
	if err != nil {
		return services.GeneratorOptions{}, "", fmt.Errorf("invalid -start: %w", err)
	}
	if *rows < 0 {
		return services.GeneratorOptions{}, "", fmt.Errorf("-rows must not be negative")
	}
	for name, rate := range map[string]float64{
		"invalid-currency-rate": *invalidCurrency,
		"bad-date-rate":         *badDates,
		"duplicate-rate":        *duplicates,
		"refund-rate":           *refunds,
	} {
		if rate < 0 || rate > 1 {
			return services.GeneratorOptions{}, "", fmt.Errorf("-%s must be within [0,1]", name)
		}
	}

	return services.GeneratorOptions{
		Rows:                *rows,
		Seed:                *seed,
		Start:               startDate,
		Days:                *days,
		InvalidCurrencyRate: *invalidCurrency,
		BadDateRate:         *badDates,
		DuplicateRate:       *duplicates,
		RefundRate:          *refunds,
	}, *out, nil
}
