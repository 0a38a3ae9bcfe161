package models

// Names of the rules a batch can fail. They are stable identifiers consumed by
// downstream tooling.
const (
	RuleTransactionIDNotNull            = "transaction_id_not_null"
	RuleAccountIDNotNull                = "account_id_not_null"
	RuleIsRefundNormalizable            = "is_refund_normalizable"
	RuleAmountParseable                 = "amount_parseable"
	RuleAmountSignMatchesIsRefund       = "amount_sign_matches_is_refund"
	RuleStatusAcceptedValues            = "status_accepted_values"
	RuleInvalidCurrencyThreshold        = "invalid_currency_threshold_exceeded"
	RuleUnparseableDatesThreshold       = "unparseable_dates_threshold_exceeded"
	RuleDuplicateTransactionIDThreshold = "duplicate_transaction_id_threshold_exceeded"
)

// Default maximum fractions for the threshold rules
const (
	DefaultInvalidCurrencyPctMax        = 0.01
	DefaultUnparseableDatesPctMax       = 0.005
	DefaultDuplicateTransactionIDPctMax = 0.005
)

// Thresholds holds the maximum tolerated fraction of defective rows per threshold rule
type Thresholds struct {
	DuplicateTransactionIDPctMax float64 `json:"duplicate_transaction_id_pct_max" yaml:"duplicate_transaction_id_pct_max" validate:"gte=0,lte=1"`
	InvalidCurrencyPctMax        float64 `json:"invalid_currency_pct_max" yaml:"invalid_currency_pct_max" validate:"gte=0,lte=1"`
	UnparseableDatesPctMax       float64 `json:"unparseable_dates_pct_max" yaml:"unparseable_dates_pct_max" validate:"gte=0,lte=1"`
}

// DefaultThresholds returns the thresholds used when none are configured
func DefaultThresholds() Thresholds {
	return Thresholds{
		DuplicateTransactionIDPctMax: DefaultDuplicateTransactionIDPctMax,
		InvalidCurrencyPctMax:        DefaultInvalidCurrencyPctMax,
		UnparseableDatesPctMax:       DefaultUnparseableDatesPctMax,
	}
}

// QualityChecks holds defect counts over a whole batch.
// Fields are declared in key order so the persisted report is sorted.
type QualityChecks struct {
	DuplicateTransactionID   int `json:"duplicate_transaction_id"`
	InvalidAmount            int `json:"invalid_amount"`
	InvalidCurrency          int `json:"invalid_currency"`
	InvalidIsRefund          int `json:"invalid_is_refund"`
	InvalidStatus            int `json:"invalid_status"`
	MissingAccountID         int `json:"missing_account_id"`
	MissingTransactionID     int `json:"missing_transaction_id"`
	RefundSignMismatch       int `json:"refund_sign_mismatch"`
	UnparseableAnyDate       int `json:"unparseable_any_date"`
	UnparseablePostingDate   int `json:"unparseable_posting_date"`
	UnparseableTransactionTS int `json:"unparseable_transaction_ts"`
}

// QualityPercentages holds the fractions evaluated by the threshold rules
type QualityPercentages struct {
	DuplicateTransactionID float64 `json:"duplicate_transaction_id"`
	InvalidCurrency        float64 `json:"invalid_currency"`
	UnparseableAnyDate     float64 `json:"unparseable_any_date"`
}

// QualityReport is the audit artifact produced by the quality gate for one batch.
// It is written once and never modified.
type QualityReport struct {
	Checks       QualityChecks      `json:"checks"`
	FailedChecks []string           `json:"failed_checks"`
	File         string             `json:"file"`
	Passed       bool               `json:"passed"`
	Pct          QualityPercentages `json:"pct"`
	RowCount     int                `json:"row_count"`
	Thresholds   Thresholds         `json:"thresholds"`
}

// HasFailed reports whether the named rule is among the failed checks
func (r *QualityReport) HasFailed(rule string) bool {
	for _, name := range r.FailedChecks {
		if name == rule {
			return true
		}
	}
	return false
}
