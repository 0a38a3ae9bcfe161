package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValidationRun records one quality gate decision in the audit table
type ValidationRun struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RunTS        string         `gorm:"type:varchar(32);not null;uniqueIndex" json:"run_ts"`
	File         string         `gorm:"type:text;not null" json:"file"`
	RowCount     int            `gorm:"not null" json:"row_count"`
	Passed       bool           `gorm:"not null;index" json:"passed"`
	FailedChecks string         `gorm:"type:text" json:"failed_checks"`
	ReportPath   string         `gorm:"type:text" json:"report_path"`
	Report       ReportDocument `gorm:"type:text" json:"report"`
	CreatedAt    time.Time      `gorm:"not null;index" json:"created_at"`
}

// TableName returns the table name for ValidationRun
func (ValidationRun) TableName() string {
	return "validation_runs"
}

// BeforeCreate hook for ValidationRun
func (v *ValidationRun) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	if v.RunTS == "" {
		return fmt.Errorf("validation run requires run_ts")
	}
	return nil
}

// NewValidationRun builds the audit record for a persisted report
func NewValidationRun(runTS, reportPath string, report QualityReport) *ValidationRun {
	return &ValidationRun{
		RunTS:        runTS,
		File:         report.File,
		RowCount:     report.RowCount,
		Passed:       report.Passed,
		FailedChecks: strings.Join(report.FailedChecks, ","),
		ReportPath:   reportPath,
		Report:       ReportDocument{QualityReport: report},
	}
}

// FailedCheckList returns the failed rule names in report order
func (v *ValidationRun) FailedCheckList() []string {
	if v.FailedChecks == "" {
		return []string{}
	}
	return strings.Split(v.FailedChecks, ",")
}

// ReportDocument stores a QualityReport as a JSON column
type ReportDocument struct {
	QualityReport
}

// Value implements driver.Valuer interface
func (d ReportDocument) Value() (driver.Value, error) {
	bytes, err := json.Marshal(d.QualityReport)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (d *ReportDocument) Scan(value interface{}) error {
	if value == nil {
		d.QualityReport = QualityReport{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ReportDocument", value)
	}

	if len(bytes) == 0 {
		d.QualityReport = QualityReport{}
		return nil
	}

	return json.Unmarshal(bytes, &d.QualityReport)
}
