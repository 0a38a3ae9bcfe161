package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	apperrors "finance-pipeline/internal/errors"
	"finance-pipeline/internal/models"
)

type extractService struct {
	now func() time.Time
}

// NewExtractService creates an ExtractorInterface. A nil clock uses time.Now.
func NewExtractService(now func() time.Time) ExtractorInterface {
	if now == nil {
		now = time.Now
	}
	return &extractService{now: now}
}

// Extract copies rawInput into processedDir as the immutable snapshot of a new run
func (s *extractService) Extract(ctx context.Context, rawInput, processedDir string) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return models.Snapshot{}, err
	}

	info, err := os.Stat(rawInput)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Snapshot{}, apperrors.NewInputError(apperrors.InputNotFound, rawInput, err)
		}
		return models.Snapshot{}, apperrors.NewInputError(apperrors.InputUnreadable, rawInput, err)
	}
	if info.IsDir() {
		return models.Snapshot{}, apperrors.NewInputError(apperrors.InputUnreadable, rawInput, errors.New("is a directory"))
	}

	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to create processed dir: %w", err)
	}

	runTS := models.NewRunTS(s.now())
	snapshotPath := filepath.Join(processedDir, models.SnapshotFileName(runTS))

	if err := copyFile(rawInput, snapshotPath); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to snapshot raw input: %w", err)
	}

	return models.Snapshot{RunTS: runTS, Path: snapshotPath}, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
