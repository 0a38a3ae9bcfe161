package models

import "strings"

// DefaultAcceptedCurrencies returns the currencies a canonical record may carry
func DefaultAcceptedCurrencies() []string {
	return []string{"SEK", "EUR", "USD", "GBP", "NOK", "DKK"}
}

// DefaultAcceptedStatuses returns the statuses a canonical record may carry
func DefaultAcceptedStatuses() []string {
	return []string{"BOOKED", "PENDING", "FAILED"}
}

// Rules is the immutable rule set injected into the quality gate and the cleaner
type Rules struct {
	Thresholds         Thresholds        `yaml:"thresholds"`
	AcceptedCurrencies []string          `yaml:"accepted_currencies" validate:"required,min=1,dive,currency_code"`
	AcceptedStatuses   []string          `yaml:"accepted_statuses" validate:"required,min=1,dive,required,uppercase"`
	CategorySynonyms   map[string]string `yaml:"category_synonyms" validate:"dive,keys,required,endkeys,canonical_category"`
}

// DefaultRules returns the built-in rule set
func DefaultRules() Rules {
	return Rules{
		Thresholds:         DefaultThresholds(),
		AcceptedCurrencies: DefaultAcceptedCurrencies(),
		AcceptedStatuses:   DefaultAcceptedStatuses(),
		CategorySynonyms:   DefaultCategorySynonyms(),
	}
}

// ValueSet is a closed set of accepted upper-case values
type ValueSet map[string]struct{}

// NewValueSet builds a set from the given values
func NewValueSet(values []string) ValueSet {
	set := make(ValueSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Contains reports whether value is a member of the set
func (s ValueSet) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

// CurrencySet returns the accepted currencies as a lookup set
func (r Rules) CurrencySet() ValueSet {
	return NewValueSet(r.AcceptedCurrencies)
}

// StatusSet returns the accepted statuses as a lookup set
func (r Rules) StatusSet() ValueSet {
	return NewValueSet(r.AcceptedStatuses)
}

// SynonymTable returns the category synonyms keyed by trimmed, case-folded text
func (r Rules) SynonymTable() map[string]string {
	table := make(map[string]string, len(r.CategorySynonyms))
	for k, v := range r.CategorySynonyms {
		table[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return table
}
