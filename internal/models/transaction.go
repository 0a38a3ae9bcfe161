package models

import (
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// CanonicalTimestampLayout is the serialized form of transaction_ts
	CanonicalTimestampLayout = "2006-01-02T15:04:05Z"
	// CanonicalDateLayout is the serialized form of posting_date
	CanonicalDateLayout = "2006-01-02"
)

var (
	ErrRefundSignMismatch = errors.New("amount sign does not match is_refund")
	ErrMissingIdentifier  = errors.New("transaction_id and account_id are required")
)

// CanonicalTransaction is a cleaned transaction row ready for the staging table
type CanonicalTransaction struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	TransactionTS time.Time       `json:"transaction_ts"`
	PostingDate   time.Time       `json:"posting_date"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	MerchantID    string          `json:"merchant_id"`
	MerchantName  string          `json:"merchant_name"`
	Category      string          `json:"category"`
	Country       string          `json:"country"`
	City          string          `json:"city"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	IsRefund      bool            `json:"is_refund"`
	Reference     string          `json:"reference"`
}

// FormattedTransactionTS returns transaction_ts as a UTC instant with second precision
func (t *CanonicalTransaction) FormattedTransactionTS() string {
	return t.TransactionTS.UTC().Format(CanonicalTimestampLayout)
}

// FormattedPostingDate returns the posting calendar date
func (t *CanonicalTransaction) FormattedPostingDate() string {
	return t.PostingDate.Format(CanonicalDateLayout)
}

// FormattedAmount returns the amount with exactly two fractional digits
func (t *CanonicalTransaction) FormattedAmount() string {
	return t.Amount.StringFixed(2)
}

// Values returns the serialized row in TransactionColumns order
func (t *CanonicalTransaction) Values() []string {
	return []string{
		t.TransactionID,
		t.AccountID,
		t.FormattedTransactionTS(),
		t.FormattedPostingDate(),
		t.Currency,
		t.FormattedAmount(),
		t.MerchantID,
		t.MerchantName,
		t.Category,
		t.Country,
		t.City,
		t.PaymentMethod,
		t.Status,
		strconv.FormatBool(t.IsRefund),
		t.Reference,
	}
}

// Validate checks the canonical record invariants that do not depend on rule sets
func (t *CanonicalTransaction) Validate() error {
	if t.TransactionID == "" || t.AccountID == "" {
		return ErrMissingIdentifier
	}
	if t.IsRefund && !t.Amount.IsNegative() {
		return ErrRefundSignMismatch
	}
	if !t.IsRefund && t.Amount.IsNegative() {
		return ErrRefundSignMismatch
	}
	return nil
}
