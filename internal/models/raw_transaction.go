package models

// Column names shared by the raw snapshot and the canonical output
const (
	ColumnTransactionID = "transaction_id"
	ColumnAccountID     = "account_id"
	ColumnTransactionTS = "transaction_ts"
	ColumnPostingDate   = "posting_date"
	ColumnCurrency      = "currency"
	ColumnAmount        = "amount"
	ColumnMerchantID    = "merchant_id"
	ColumnMerchantName  = "merchant_name"
	ColumnCategory      = "category"
	ColumnCountry       = "country"
	ColumnCity          = "city"
	ColumnPaymentMethod = "payment_method"
	ColumnStatus        = "status"
	ColumnIsRefund      = "is_refund"
	ColumnReference     = "reference"
)

// TransactionColumns returns the 15 transaction columns in file order
func TransactionColumns() []string {
	return []string{
		ColumnTransactionID,
		ColumnAccountID,
		ColumnTransactionTS,
		ColumnPostingDate,
		ColumnCurrency,
		ColumnAmount,
		ColumnMerchantID,
		ColumnMerchantName,
		ColumnCategory,
		ColumnCountry,
		ColumnCity,
		ColumnPaymentMethod,
		ColumnStatus,
		ColumnIsRefund,
		ColumnReference,
	}
}

// RawTransaction is one untyped row of a raw snapshot. Every field holds the
// text exactly as it appeared in the file; an empty field is an absent value.
type RawTransaction struct {
	TransactionID string `json:"transaction_id"`
	AccountID     string `json:"account_id"`
	TransactionTS string `json:"transaction_ts"`
	PostingDate   string `json:"posting_date"`
	Currency      string `json:"currency"`
	Amount        string `json:"amount"`
	MerchantID    string `json:"merchant_id"`
	MerchantName  string `json:"merchant_name"`
	Category      string `json:"category"`
	Country       string `json:"country"`
	City          string `json:"city"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	IsRefund      string `json:"is_refund"`
	Reference     string `json:"reference"`
}

// Values returns the row in TransactionColumns order
func (r *RawTransaction) Values() []string {
	return []string{
		r.TransactionID,
		r.AccountID,
		r.TransactionTS,
		r.PostingDate,
		r.Currency,
		r.Amount,
		r.MerchantID,
		r.MerchantName,
		r.Category,
		r.Country,
		r.City,
		r.PaymentMethod,
		r.Status,
		r.IsRefund,
		r.Reference,
	}
}

// Set assigns the value of a named column. It returns false for unknown columns.
func (r *RawTransaction) Set(column, value string) bool {
	switch column {
	case ColumnTransactionID:
		r.TransactionID = value
	case ColumnAccountID:
		r.AccountID = value
	case ColumnTransactionTS:
		r.TransactionTS = value
	case ColumnPostingDate:
		r.PostingDate = value
	case ColumnCurrency:
		r.Currency = value
	case ColumnAmount:
		r.Amount = value
	case ColumnMerchantID:
		r.MerchantID = value
	case ColumnMerchantName:
		r.MerchantName = value
	case ColumnCategory:
		r.Category = value
	case ColumnCountry:
		r.Country = value
	case ColumnCity:
		r.City = value
	case ColumnPaymentMethod:
		r.PaymentMethod = value
	case ColumnStatus:
		r.Status = value
	case ColumnIsRefund:
		r.IsRefund = value
	case ColumnReference:
		r.Reference = value
	default:
		return false
	}
	return true
}

// RawBatch is the ordered set of raw rows read from one snapshot
type RawBatch struct {
	Source string
	Rows   []RawTransaction
}

// Len returns the number of rows in the batch
func (b *RawBatch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Rows)
}
