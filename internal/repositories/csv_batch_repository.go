package repositories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "finance-pipeline/internal/errors"
	"finance-pipeline/internal/models"
)

var (
	ErrMissingColumns   = errors.New("missing required columns")
	ErrDuplicateColumns = errors.New("duplicate columns")
	ErrEmptyFile        = errors.New("file has no header row")
)

// CSVBatchRepository reads and writes transaction batches as comma-separated files
type CSVBatchRepository struct{}

// NewCSVBatchRepository creates a new CSV batch repository
func NewCSVBatchRepository() BatchRepositoryInterface {
	return &CSVBatchRepository{}
}

// ReadRawBatch reads a raw snapshot. Columns are matched by header name; extra
// columns are ignored. A file that cannot be read as a table yields an *errors.InputError.
func (r *CSVBatchRepository) ReadRawBatch(path string) (*models.RawBatch, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewInputError(apperrors.InputNotFound, path, err)
		}
		return nil, apperrors.NewInputError(apperrors.InputUnreadable, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.NewInputError(apperrors.InputMissingColumns, path, ErrEmptyFile)
	}
	if err != nil {
		return nil, apperrors.NewInputError(apperrors.InputUnreadable, path, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, apperrors.NewInputError(apperrors.InputMissingColumns, path, err)
	}

	batch := &models.RawBatch{Source: path, Rows: []models.RawTransaction{}}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewInputError(apperrors.InputMalformedRow, path, err)
		}

		var row models.RawTransaction
		for column, i := range index {
			row.Set(column, record[i])
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch, nil
}

// WriteCanonicalBatch writes records with a header row in canonical column order
func (r *CSVBatchRepository) WriteCanonicalBatch(path string, records []models.CanonicalTransaction) error {
	return writeFile(path, func(w io.Writer) error {
		return writeCanonical(w, records)
	})
}

// WriteRawBatch writes rows verbatim with a header row. It is used to produce synthetic raw inputs.
func (r *CSVBatchRepository) WriteRawBatch(path string, rows []models.RawTransaction) error {
	return writeFile(path, func(w io.Writer) error {
		return writeRows(w, len(rows), func(i int) []string { return rows[i].Values() })
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeCanonical(out io.Writer, records []models.CanonicalTransaction) error {
	return writeRows(out, len(records), func(i int) []string { return records[i].Values() })
}

func writeRows(out io.Writer, n int, row func(i int) []string) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(models.TransactionColumns()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := 0; i < n; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// columnIndex maps every required column to its position in header
func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	var duplicates []string
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, seen := positions[name]; seen {
			duplicates = append(duplicates, name)
			continue
		}
		positions[name] = i
	}

	index := make(map[string]int, len(models.TransactionColumns()))
	var missing []string
	for _, column := range models.TransactionColumns() {
		i, ok := positions[column]
		if !ok {
			missing = append(missing, column)
			continue
		}
		index[column] = i
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	for _, name := range duplicates {
		if _, required := index[name]; required {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumns, name)
		}
	}

	return index, nil
}
