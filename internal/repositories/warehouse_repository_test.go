package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"finance-pipeline/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestWarehouseRepository(t *testing.T) {
	suite.Run(t, new(WarehouseRepositorySuite))
}

type WarehouseRepositorySuite struct {
	suite.Suite
	mock sqlmock.Sqlmock
	repo WarehouseRepositoryInterface
	ctx  context.Context
}

func (s *WarehouseRepositorySuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })

	s.mock = mock
	s.repo = NewWarehouseRepository(db)
	s.ctx = context.Background()
}

func (s *WarehouseRepositorySuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func copyStatement(schema, table string) string {
	return regexp.QuoteMeta(pq.CopyInSchema(schema, table, models.TransactionColumns()...))
}

func (s *WarehouseRepositorySuite) TestLoadRaw() {
	rows := []models.RawTransaction{
		{TransactionID: "t1", AccountID: "a1", Amount: "10", Currency: "sek"},
		{TransactionID: "t2"},
	}

	s.mock.ExpectBegin()
	prep := s.mock.ExpectPrepare(copyStatement(RawSchema, RawTable))
	prep.ExpectExec().
		WithArgs("t1", "a1", nil, nil, "sek", "10", nil, nil, nil, nil, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().
		WithArgs("t2", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	n, err := s.repo.LoadRaw(s.ctx, rows)
	s.Require().NoError(err)
	s.Equal(int64(2), n)
}

func (s *WarehouseRepositorySuite) TestLoadRaw_CopyFailureRollsBack() {
	s.mock.ExpectBegin()
	prep := s.mock.ExpectPrepare(copyStatement(RawSchema, RawTable))
	prep.ExpectExec().WillReturnError(errors.New("pq: invalid input"))
	s.mock.ExpectRollback()

	_, err := s.repo.LoadRaw(s.ctx, []models.RawTransaction{{TransactionID: "t1"}})
	s.ErrorIs(err, ErrRawLoadFailed)
	s.Contains(err.Error(), "invalid input")
}

func (s *WarehouseRepositorySuite) TestLoadRaw_BeginFailure() {
	s.mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

	_, err := s.repo.LoadRaw(s.ctx, nil)
	s.ErrorIs(err, ErrRawLoadFailed)
}

func (s *WarehouseRepositorySuite) TestRefreshStaging() {
	ts := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	records := []models.CanonicalTransaction{
		{
			TransactionID: "t1",
			AccountID:     "a1",
			TransactionTS: ts.Add(700 * time.Millisecond),
			PostingDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Currency:      "SEK",
			Amount:        decimal.RequireFromString("-12.5"),
			MerchantName:  "ICA",
			Category:      models.CategoryGroceries,
			Status:        "BOOKED",
			IsRefund:      true,
		},
	}

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`TRUNCATE TABLE "staging"."financial_transactions"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	prep := s.mock.ExpectPrepare(copyStatement(StagingSchema, StagingTable))
	prep.ExpectExec().
		WithArgs("t1", "a1", ts, "2025-01-01", "SEK", "-12.50", nil, "ICA", "Groceries", nil, nil, nil, "BOOKED", true, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	n, err := s.repo.RefreshStaging(s.ctx, records)
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *WarehouseRepositorySuite) TestRefreshStaging_EmptyBatchStillTruncates() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("TRUNCATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	prep := s.mock.ExpectPrepare(copyStatement(StagingSchema, StagingTable))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	n, err := s.repo.RefreshStaging(s.ctx, nil)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *WarehouseRepositorySuite) TestRefreshStaging_TruncateFailure() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("TRUNCATE TABLE").WillReturnError(errors.New("permission denied"))
	s.mock.ExpectRollback()

	_, err := s.repo.RefreshStaging(s.ctx, nil)
	s.ErrorIs(err, ErrStagingLoadFailed)
}

func (s *WarehouseRepositorySuite) TestRefreshStaging_CommitFailure() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("TRUNCATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	prep := s.mock.ExpectPrepare(copyStatement(StagingSchema, StagingTable))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	_, err := s.repo.RefreshStaging(s.ctx, nil)
	s.ErrorIs(err, ErrStagingLoadFailed)
}

func TestWarehouseRepository_NotEnabled(t *testing.T) {
	repo := NewWarehouseRepository(nil)

	_, err := repo.LoadRaw(context.Background(), nil)
	if !errors.Is(err, ErrWarehouseNotEnabled) {
		t.Fatalf("expected ErrWarehouseNotEnabled, got %v", err)
	}
	_, err = repo.RefreshStaging(context.Background(), nil)
	if !errors.Is(err, ErrWarehouseNotEnabled) {
		t.Fatalf("expected ErrWarehouseNotEnabled, got %v", err)
	}
}
