package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finance-pipeline/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// GeneratorOptions controls the size and defect mix of a synthetic batch
type GeneratorOptions struct {
	Rows int
	Seed uint64
	// Start and Days bound the generated transaction timestamps
	Start time.Time
	Days  int
	// Defect rates are fractions of Rows in [0,1]
	InvalidCurrencyRate float64
	BadDateRate         float64
	DuplicateRate       float64
	RefundRate          float64
}

// DefaultGeneratorOptions returns a clean thousand-row batch over thirty days
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Rows:       1000,
		Seed:       1,
		Start:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Days:       30,
		RefundRate: 0.05,
	}
}

// MerchantInfo describes one synthetic merchant
type MerchantInfo struct {
	Name     string
	Category string
	City     string
	Country  string
}

type transactionGenerator struct {
	merchantPool []MerchantInfo
}

// NewTransactionGenerator creates a new transaction generator
func NewTransactionGenerator() TransactionGeneratorInterface {
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
	}
}

// initializeMerchantPool creates merchants whose category text exercises the synonym table
func initializeMerchantPool() []MerchantInfo {
	return []MerchantInfo{
		// Groceries
		{"ICA Maxi", "grocery", "Stockholm", "SE"},
		{"Coop Konsum", "Mat", "Uppsala", "SE"},
		{"Willys", "groceries", "Gothenburg", "SE"},
		{"REMA 1000", "Grocery", "Oslo", "NO"},

		// Dining
		{"Espresso House", "cafe", "Stockholm", "SE"},
		{"Max Burgers", "restaurang", "Malmo", "SE"},
		{"Pret A Manger", "Restaurant", "London", "GB"},

		// Transport
		{"Uber", "uber", "Stockholm", "SE"},
		{"SL Access", "transit", "Stockholm", "SE"},
		{"Taxi Kurir", "TAXI", "Gothenburg", "SE"},

		// Utilities
		{"Vattenfall", "power", "Stockholm", "SE"},
		{"Telia", "internet", "Stockholm", "SE"},

		// Entertainment
		{"Spotify", "streaming", "Stockholm", "SE"},
		{"Netflix", "Streaming", "Amsterdam", "NL"},
		{"SF Bio", "entertainment", "Uppsala", "SE"},

		// Shopping
		{"Elgiganten", "electronics", "Stockholm", "SE"},
		{"Adlibris", "books", "Stockholm", "SE"},
		{"H&M", "shopping", "Stockholm", "SE"},

		// Travel
		{"SAS", "flight", "Copenhagen", "DK"},
		{"Scandic Hotels", "hotel", "Helsinki", "FI"},

		// Healthcare
		{"Apotek Hjartat", "health", "Stockholm", "SE"},

		// Income and fees
		{"Employer AB", "salary", "Stockholm", "SE"},
		{"Nordea", "fee", "Stockholm", "SE"},

		// Unmapped
		{"Mystery Vendor", "misc", "Berlin", "DE"},
	}
}

// GetMerchantPool returns the merchants used by the generator
func (g *transactionGenerator) GetMerchantPool() []MerchantInfo {
	return g.merchantPool
}

// GenerateBatch returns opts.Rows synthetic raw rows. The same options always
// produce the same rows.
func (g *transactionGenerator) GenerateBatch(opts GeneratorOptions) []models.RawTransaction {
	if opts.Rows <= 0 {
		return []models.RawTransaction{}
	}
	if opts.Days <= 0 {
		opts.Days = 1
	}
	if opts.Start.IsZero() {
		opts.Start = DefaultGeneratorOptions().Start
	}

	faker := gofakeit.New(opts.Seed)
	accounts := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		accounts = append(accounts, fmt.Sprintf("ACC%06d", faker.Number(1, 999999)))
	}

	rows := make([]models.RawTransaction, 0, opts.Rows)
	for i := 0; i < opts.Rows; i++ {
		if i > 0 && faker.Float64Range(0, 1) < opts.DuplicateRate {
			rows = append(rows, g.duplicateOf(faker, rows[faker.IntN(len(rows))]))
			continue
		}
		rows = append(rows, g.generateRow(faker, i, accounts, opts))
	}

	return rows
}

func (g *transactionGenerator) generateRow(faker *gofakeit.Faker, i int, accounts []string, opts GeneratorOptions) models.RawTransaction {
	merchant := g.merchantPool[faker.IntN(len(g.merchantPool))]
	end := opts.Start.Add(time.Duration(opts.Days) * 24 * time.Hour)
	ts := faker.DateRange(opts.Start, end).UTC().Truncate(time.Second)

	isRefund := faker.Float64Range(0, 1) < opts.RefundRate
	amount := g.generateAmount(faker, merchant.Category)
	if isRefund {
		amount = amount.Neg()
	}

	currency := faker.RandomString(models.DefaultAcceptedCurrencies())
	if faker.Float64Range(0, 1) < opts.InvalidCurrencyRate {
		currency = faker.RandomString([]string{"XXX", "BTC", "", "S E K"})
	}

	tsText := formatTimestamp(faker, ts)
	postingText := ts.Add(time.Duration(faker.IntN(3)) * 24 * time.Hour).Format(models.CanonicalDateLayout)
	if faker.Float64Range(0, 1) < opts.BadDateRate {
		tsText = faker.RandomString([]string{"not-a-date", "31/31/2025", "yesterday"})
	}

	return models.RawTransaction{
		TransactionID: fmt.Sprintf("TXN%08d", i+1),
		AccountID:     faker.RandomString(accounts),
		TransactionTS: tsText,
		PostingDate:   postingText,
		Currency:      randomCase(faker, currency),
		Amount:        amount.StringFixed(2),
		MerchantID:    "M" + strconv.Itoa(faker.Number(1000, 9999)),
		MerchantName:  merchant.Name,
		Category:      merchant.Category,
		Country:       merchant.Country,
		City:          merchant.City,
		PaymentMethod: faker.RandomString([]string{"card", "swish", "bank_transfer", "direct_debit"}),
		Status:        randomCase(faker, faker.RandomString(models.DefaultAcceptedStatuses())),
		IsRefund:      faker.RandomString(refundEncodings(isRefund)),
		Reference:     faker.UUID(),
	}
}

// duplicateOf re-emits an existing transaction with a later posting date and new reference
func (g *transactionGenerator) duplicateOf(faker *gofakeit.Faker, original models.RawTransaction) models.RawTransaction {
	dup := original
	dup.Reference = faker.UUID()
	if posted, err := time.Parse(models.CanonicalDateLayout, original.PostingDate); err == nil {
		dup.PostingDate = posted.AddDate(0, 0, 1).Format(models.CanonicalDateLayout)
	}
	return dup
}

func (g *transactionGenerator) generateAmount(faker *gofakeit.Faker, category string) decimal.Decimal {
	minAmount, maxAmount := 20.0, 800.0
	switch category {
	case "salary":
		minAmount, maxAmount = 25000, 45000
	case "fee":
		minAmount, maxAmount = 5, 50
	case "flight", "hotel":
		minAmount, maxAmount = 800, 6000
	}
	return decimal.NewFromFloat(faker.Float64Range(minAmount, maxAmount)).Round(2)
}

// formatTimestamp varies the textual encoding the way real exports do
func formatTimestamp(faker *gofakeit.Faker, ts time.Time) string {
	switch faker.IntN(4) {
	case 0:
		return ts.Format(time.RFC3339)
	case 1:
		return ts.Format("2006-01-02 15:04:05")
	case 2:
		return ts.In(time.FixedZone("CET", 3600)).Format("2006-01-02T15:04:05-07:00")
	default:
		return ts.Format("2006-01-02T15:04:05.000Z")
	}
}

func refundEncodings(isRefund bool) []string {
	if isRefund {
		return []string{"true", "True", "1", "yes", "t"}
	}
	return []string{"false", "False", "0", "no", "f"}
}

func randomCase(faker *gofakeit.Faker, s string) string {
	if faker.Bool() {
		return s
	}
	return strings.ToLower(s)
}
