package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finance-pipeline/internal/models"

	"github.com/lib/pq"
)

// Warehouse destinations
const (
	RawSchema     = "raw"
	RawTable      = "financial_transactions_raw"
	StagingSchema = "staging"
	StagingTable  = "financial_transactions"
)

var (
	ErrRawLoadFailed       = errors.New("raw load failed")
	ErrStagingLoadFailed   = errors.New("staging refresh failed")
	ErrWarehouseNotEnabled = errors.New("warehouse connection not configured")
)

// WarehouseRepository loads batches into Postgres with COPY
type WarehouseRepository struct {
	db *sql.DB
}

// NewWarehouseRepository creates a new warehouse repository over a lib/pq connection pool
func NewWarehouseRepository(db *sql.DB) WarehouseRepositoryInterface {
	return &WarehouseRepository{db: db}
}

// LoadRaw appends rows to raw.financial_transactions_raw. Empty fields are loaded as NULL.
func (r *WarehouseRepository) LoadRaw(ctx context.Context, rows []models.RawTransaction) (int64, error) {
	if r.db == nil {
		return 0, ErrWarehouseNotEnabled
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRawLoadFailed, err)
	}

	n, err := copyRows(ctx, tx, RawSchema, RawTable, len(rows), func(i int) []interface{} {
		return rawValues(&rows[i])
	})
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("%w: %w", ErrRawLoadFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRawLoadFailed, err)
	}
	return n, nil
}

// RefreshStaging truncates staging.financial_transactions and copies records in the same transaction
func (r *WarehouseRepository) RefreshStaging(ctx context.Context, records []models.CanonicalTransaction) (int64, error) {
	if r.db == nil {
		return 0, ErrWarehouseNotEnabled
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStagingLoadFailed, err)
	}

	truncate := fmt.Sprintf("TRUNCATE TABLE %s.%s", pq.QuoteIdentifier(StagingSchema), pq.QuoteIdentifier(StagingTable))
	if _, err := tx.ExecContext(ctx, truncate); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("%w: %w", ErrStagingLoadFailed, err)
	}

	n, err := copyRows(ctx, tx, StagingSchema, StagingTable, len(records), func(i int) []interface{} {
		return stagingValues(&records[i])
	})
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("%w: %w", ErrStagingLoadFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStagingLoadFailed, err)
	}
	return n, nil
}

func copyRows(ctx context.Context, tx *sql.Tx, schema, table string, n int, row func(i int) []interface{}) (int64, error) {
	stmt, err := tx.PrepareContext(ctx, pq.CopyInSchema(schema, table, models.TransactionColumns()...))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare copy: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, row(i)...); err != nil {
			return 0, fmt.Errorf("failed to copy row %d: %w", i+1, err)
		}
	}

	// An Exec without arguments flushes the buffered rows.
	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, fmt.Errorf("failed to flush copy: %w", err)
	}

	return int64(n), nil
}

func rawValues(row *models.RawTransaction) []interface{} {
	values := row.Values()
	out := make([]interface{}, len(values))
	for i, v := range values {
		if v == "" {
			out[i] = nil
			continue
		}
		out[i] = v
	}
	return out
}

func stagingValues(record *models.CanonicalTransaction) []interface{} {
	return []interface{}{
		record.TransactionID,
		record.AccountID,
		record.TransactionTS.UTC().Truncate(time.Second),
		record.FormattedPostingDate(),
		record.Currency,
		record.FormattedAmount(),
		nullable(record.MerchantID),
		nullable(record.MerchantName),
		record.Category,
		nullable(record.Country),
		nullable(record.City),
		nullable(record.PaymentMethod),
		record.Status,
		record.IsRefund,
		nullable(record.Reference),
	}
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
