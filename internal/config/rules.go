package config

import (
	"fmt"
	"os"
	"strings"

	"finance-pipeline/internal/models"

	"gopkg.in/yaml.v3"
)

// rulesFile mirrors the YAML rules document. Absent keys keep the base value.
type rulesFile struct {
	Thresholds         *thresholdsFile   `yaml:"thresholds"`
	AcceptedCurrencies []string          `yaml:"accepted_currencies"`
	AcceptedStatuses   []string          `yaml:"accepted_statuses"`
	CategorySynonyms   map[string]string `yaml:"category_synonyms"`
}

type thresholdsFile struct {
	InvalidCurrencyPctMax        *float64 `yaml:"invalid_currency_pct_max"`
	UnparseableDatesPctMax       *float64 `yaml:"unparseable_dates_pct_max"`
	DuplicateTransactionIDPctMax *float64 `yaml:"duplicate_transaction_id_pct_max"`
}

// LoadRules reads a YAML rules file over base. Accepted value lists replace
// the base lists; category synonyms are merged into the base table.
func LoadRules(path string, base models.Rules) (models.Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return models.Rules{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return file.apply(base), nil
}

func (f *rulesFile) apply(base models.Rules) models.Rules {
	rules := models.Rules{
		Thresholds:         base.Thresholds,
		AcceptedCurrencies: append([]string(nil), base.AcceptedCurrencies...),
		AcceptedStatuses:   append([]string(nil), base.AcceptedStatuses...),
		CategorySynonyms:   make(map[string]string, len(base.CategorySynonyms)+len(f.CategorySynonyms)),
	}
	for k, v := range base.CategorySynonyms {
		rules.CategorySynonyms[k] = v
	}

	if t := f.Thresholds; t != nil {
		if t.InvalidCurrencyPctMax != nil {
			rules.Thresholds.InvalidCurrencyPctMax = *t.InvalidCurrencyPctMax
		}
		if t.UnparseableDatesPctMax != nil {
			rules.Thresholds.UnparseableDatesPctMax = *t.UnparseableDatesPctMax
		}
		if t.DuplicateTransactionIDPctMax != nil {
			rules.Thresholds.DuplicateTransactionIDPctMax = *t.DuplicateTransactionIDPctMax
		}
	}

	if len(f.AcceptedCurrencies) > 0 {
		rules.AcceptedCurrencies = upperAll(f.AcceptedCurrencies)
	}
	if len(f.AcceptedStatuses) > 0 {
		rules.AcceptedStatuses = upperAll(f.AcceptedStatuses)
	}
	for k, v := range f.CategorySynonyms {
		rules.CategorySynonyms[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}

	return rules
}

func upperAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToUpper(strings.TrimSpace(v)))
	}
	return out
}
