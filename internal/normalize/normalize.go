// Package normalize holds the per-field coercion primitives shared by the
// quality gate and the cleaner. Every function is total: a value that cannot
// be coerced is reported through the ok result, never through an error.
package normalize

import (
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of fractional digits kept on amounts
const AmountPlaces = 2

var boolLike = map[string]bool{
	"1":     true,
	"0":     false,
	"true":  true,
	"false": false,
	"t":     true,
	"f":     false,
	"yes":   true,
	"no":    false,
}

// Layouts tried before falling back to the generic parser. Layouts without a
// zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-0700",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"20060102T150405Z",
}

// IsBlank reports whether a required text field is absent
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// Upper upper-cases free-form code values like currency and status
func Upper(value string) string {
	return strings.ToUpper(value)
}

// BoolLike normalizes boolean-like encodings. Native booleans pass through;
// text is trimmed and case-folded. Anything else is not ok.
func BoolLike(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case *bool:
		if v == nil {
			return false, false
		}
		return *v, true
	case string:
		b, ok := boolLike[strings.ToLower(strings.TrimSpace(v))]
		return b, ok
	default:
		return false, false
	}
}

// Number parses numeric text into an exact decimal
func Number(value string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Amount parses numeric text into a decimal rounded to two places
func Amount(value string) (decimal.Decimal, bool) {
	d, ok := Number(value)
	if !ok {
		return decimal.Zero, false
	}
	return d.RoundBank(AmountPlaces), true
}

// TimestampUTC parses a timestamp in any supported encoding and returns the UTC instant
func TimestampUTC(value string) (time.Time, bool) {
	t, ok := parseInstant(value)
	if !ok {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// Date parses a date or timestamp and returns its calendar date as UTC midnight.
// The calendar date is taken in the offset written in the text, if any.
func Date(value string) (time.Time, bool) {
	t, ok := parseInstant(value)
	if !ok {
		return time.Time{}, false
	}
	return CalendarDate(t), true
}

// CalendarDate truncates t to its calendar date in t's own location
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseInstant(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" || !strings.ContainsFunc(s, unicode.IsDigit) {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return parseLoose(s)
}

func parseLoose(s string) (t time.Time, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t, ok = time.Time{}, false
		}
	}()

	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
