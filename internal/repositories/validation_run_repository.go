package repositories

import (
	"errors"
	"fmt"

	"finance-pipeline/internal/models"

	"gorm.io/gorm"
)

var ErrValidationRunNotFound = errors.New("validation run not found")

// ValidationRunRepository handles database operations for validation runs
type ValidationRunRepository struct {
	db *gorm.DB
}

// NewValidationRunRepository creates a new validation run repository
func NewValidationRunRepository(db *gorm.DB) ValidationRunRepositoryInterface {
	return &ValidationRunRepository{
		db: db,
	}
}

// Create records a gate decision
func (r *ValidationRunRepository) Create(run *models.ValidationRun) error {
	if run == nil {
		return errors.New("validation run cannot be nil")
	}

	if err := r.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to create validation run: %w", err)
	}

	return nil
}

// GetByRunTS retrieves the validation run of a pipeline run
func (r *ValidationRunRepository) GetByRunTS(runTS string) (*models.ValidationRun, error) {
	var run models.ValidationRun
	if err := r.db.Where("run_ts = ?", runTS).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidationRunNotFound
		}
		return nil, fmt.Errorf("failed to get validation run: %w", err)
	}

	return &run, nil
}

// ListRecent returns the latest validation runs, newest first
func (r *ValidationRunRepository) ListRecent(limit int) ([]models.ValidationRun, error) {
	if limit <= 0 {
		limit = 20
	}

	var runs []models.ValidationRun
	if err := r.db.Order("created_at DESC").Order("run_ts DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list validation runs: %w", err)
	}

	return runs, nil
}
