package services

import (
	"finance-pipeline/internal/models"
	"finance-pipeline/internal/normalize"

	"github.com/shopspring/decimal"
)

type qualityGate struct {
	currencies models.ValueSet
	statuses   models.ValueSet
}

// NewQualityGate creates a QualityGateInterface using the accepted value sets of rules
func NewQualityGate(rules models.Rules) QualityGateInterface {
	return &qualityGate{
		currencies: rules.CurrencySet(),
		statuses:   rules.StatusSet(),
	}
}

// Validate computes the defect counts of batch and applies the hard and threshold rules
func (g *qualityGate) Validate(batch *models.RawBatch, thresholds models.Thresholds) models.QualityReport {
	rowCount := batch.Len()
	checks := models.QualityChecks{}

	if rowCount > 0 {
		seen := make(map[string]struct{}, rowCount)
		for i := range batch.Rows {
			g.scoreRow(&batch.Rows[i], &checks, seen)
		}
	}

	report := models.QualityReport{
		Checks:     checks,
		Thresholds: thresholds,
		RowCount:   rowCount,
		Pct: models.QualityPercentages{
			DuplicateTransactionID: fraction(checks.DuplicateTransactionID, rowCount),
			InvalidCurrency:        fraction(checks.InvalidCurrency, rowCount),
			UnparseableAnyDate:     fraction(checks.UnparseableAnyDate, rowCount),
		},
	}
	if batch != nil {
		report.File = batch.Source
	}

	report.FailedChecks = failedChecks(&report)
	report.Passed = len(report.FailedChecks) == 0

	return report
}

// Evaluate validates batch and wraps the report in an admission decision
func (g *qualityGate) Evaluate(batch *models.RawBatch, thresholds models.Thresholds) models.GateOutcome {
	report := g.Validate(batch, thresholds)
	if report.Passed {
		return models.Accepted(report)
	}
	return models.Rejected(report)
}

func (g *qualityGate) scoreRow(row *models.RawTransaction, checks *models.QualityChecks, seen map[string]struct{}) {
	if normalize.IsBlank(row.TransactionID) {
		checks.MissingTransactionID++
	}
	if normalize.IsBlank(row.AccountID) {
		checks.MissingAccountID++
	}

	_, tsOK := normalize.TimestampUTC(row.TransactionTS)
	_, dateOK := normalize.Date(row.PostingDate)
	if !tsOK {
		checks.UnparseableTransactionTS++
	}
	if !dateOK {
		checks.UnparseablePostingDate++
	}
	if !tsOK || !dateOK {
		checks.UnparseableAnyDate++
	}

	if !g.currencies.Contains(normalize.Upper(row.Currency)) {
		checks.InvalidCurrency++
	}
	if !g.statuses.Contains(normalize.Upper(row.Status)) {
		checks.InvalidStatus++
	}

	isRefund, refundOK := normalize.BoolLike(row.IsRefund)
	if !refundOK {
		checks.InvalidIsRefund++
	}
	amount, amountOK := normalize.Number(row.Amount)
	if !amountOK {
		checks.InvalidAmount++
	}
	if refundOK && amountOK && signMismatch(isRefund, amount) {
		checks.RefundSignMismatch++
	}

	// Blank ids are compared like any other value.
	if _, dup := seen[row.TransactionID]; dup {
		checks.DuplicateTransactionID++
	} else {
		seen[row.TransactionID] = struct{}{}
	}
}

// signMismatch flags non-refunds that are not strictly positive and refunds
// that are not strictly negative
func signMismatch(isRefund bool, amount decimal.Decimal) bool {
	if isRefund {
		return !amount.IsNegative()
	}
	return !amount.IsPositive()
}

func failedChecks(report *models.QualityReport) []string {
	checks := report.Checks
	failed := []string{}

	if checks.MissingTransactionID > 0 {
		failed = append(failed, models.RuleTransactionIDNotNull)
	}
	if checks.MissingAccountID > 0 {
		failed = append(failed, models.RuleAccountIDNotNull)
	}
	if checks.InvalidIsRefund > 0 {
		failed = append(failed, models.RuleIsRefundNormalizable)
	}
	if checks.InvalidAmount > 0 {
		failed = append(failed, models.RuleAmountParseable)
	}
	if checks.RefundSignMismatch > 0 {
		failed = append(failed, models.RuleAmountSignMatchesIsRefund)
	}
	if checks.InvalidStatus > 0 {
		failed = append(failed, models.RuleStatusAcceptedValues)
	}

	if report.Pct.InvalidCurrency > report.Thresholds.InvalidCurrencyPctMax {
		failed = append(failed, models.RuleInvalidCurrencyThreshold)
	}
	if report.Pct.UnparseableAnyDate > report.Thresholds.UnparseableDatesPctMax {
		failed = append(failed, models.RuleUnparseableDatesThreshold)
	}
	if report.Pct.DuplicateTransactionID > report.Thresholds.DuplicateTransactionIDPctMax {
		failed = append(failed, models.RuleDuplicateTransactionIDThreshold)
	}

	return failed
}

func fraction(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
