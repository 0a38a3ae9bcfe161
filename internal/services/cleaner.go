package services

import (
	"sort"
	"time"

	"finance-pipeline/internal/models"
	"finance-pipeline/internal/normalize"
)

type cleaner struct {
	currencies models.ValueSet
	mapper     CategoryMapperInterface
}

// NewCleaner creates a CleanerInterface that admits only the accepted currencies of rules
func NewCleaner(rules models.Rules, mapper CategoryMapperInterface) CleanerInterface {
	return &cleaner{
		currencies: rules.CurrencySet(),
		mapper:     mapper,
	}
}

// Clean normalizes every row, drops rows that cannot form a canonical record,
// enforces the refund sign convention and keeps one record per transaction_id.
// Zero-amount refunds are dropped after deduplication.
// The result is ordered by transaction_id.
func (c *cleaner) Clean(batch *models.RawBatch) models.CleanResult {
	result := models.CleanResult{Records: []models.CanonicalTransaction{}}
	if batch.Len() == 0 {
		return result
	}

	admitted := make([]models.CanonicalTransaction, 0, batch.Len())
	for i := range batch.Rows {
		record, ok := c.normalizeRow(&batch.Rows[i])
		if !ok {
			result.Dropped++
			continue
		}

		enforceSign(&record)
		admitted = append(admitted, record)
	}

	winners := latestPerTransaction(admitted)
	result.Duplicates = len(admitted) - len(winners)

	// a zero refund that wins its id removes the id from the output
	result.Records = make([]models.CanonicalTransaction, 0, len(winners))
	for _, record := range winners {
		if record.IsRefund && record.Amount.IsZero() {
			result.ZeroRefundsDropped++
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result
}

// normalizeRow coerces a raw row and applies the admission filter
func (c *cleaner) normalizeRow(row *models.RawTransaction) (models.CanonicalTransaction, bool) {
	currency := normalize.Upper(row.Currency)
	status := normalize.Upper(row.Status)
	isRefund, refundOK := normalize.BoolLike(row.IsRefund)
	amount, amountOK := normalize.Amount(row.Amount)
	transactionTS, tsOK := normalize.TimestampUTC(row.TransactionTS)
	postingDate, dateOK := postingDateWithFallback(row)
	category := c.mapper.MapCategory(row.Category)

	switch {
	case normalize.IsBlank(row.TransactionID), normalize.IsBlank(row.AccountID):
		return models.CanonicalTransaction{}, false
	case !tsOK, !dateOK:
		return models.CanonicalTransaction{}, false
	case !c.currencies.Contains(currency):
		return models.CanonicalTransaction{}, false
	case !refundOK, !amountOK:
		return models.CanonicalTransaction{}, false
	}

	return models.CanonicalTransaction{
		TransactionID: row.TransactionID,
		AccountID:     row.AccountID,
		TransactionTS: transactionTS,
		PostingDate:   postingDate,
		Currency:      currency,
		Amount:        amount,
		MerchantID:    row.MerchantID,
		MerchantName:  row.MerchantName,
		Category:      category,
		Country:       row.Country,
		City:          row.City,
		PaymentMethod: row.PaymentMethod,
		Status:        status,
		IsRefund:      isRefund,
		Reference:     row.Reference,
	}, true
}

// postingDateWithFallback parses posting_date and, when that fails, re-parses
// transaction_ts and takes its UTC calendar date
func postingDateWithFallback(row *models.RawTransaction) (time.Time, bool) {
	if date, ok := normalize.Date(row.PostingDate); ok {
		return date, true
	}
	ts, ok := normalize.TimestampUTC(row.TransactionTS)
	if !ok {
		return time.Time{}, false
	}
	return normalize.CalendarDate(ts), true
}

// enforceSign rewrites the amount so that refunds are negative and everything else is not
func enforceSign(record *models.CanonicalTransaction) {
	if record.IsRefund {
		record.Amount = record.Amount.Abs().Neg()
		return
	}
	record.Amount = record.Amount.Abs()
}

// latestPerTransaction keeps, per transaction_id, the row with the latest
// (posting_date, transaction_ts). On a full tie the row later in input order wins.
func latestPerTransaction(records []models.CanonicalTransaction) []models.CanonicalTransaction {
	sorted := make([]models.CanonicalTransaction, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		if a.TransactionID != b.TransactionID {
			return a.TransactionID < b.TransactionID
		}
		if !a.PostingDate.Equal(b.PostingDate) {
			return a.PostingDate.Before(b.PostingDate)
		}
		return a.TransactionTS.Before(b.TransactionTS)
	})

	out := make([]models.CanonicalTransaction, 0, len(sorted))
	for i := range sorted {
		if i+1 < len(sorted) && sorted[i+1].TransactionID == sorted[i].TransactionID {
			continue
		}
		out = append(out, sorted[i])
	}
	return out
}
