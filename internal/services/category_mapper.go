package services

import (
	"strings"
	"unicode"

	"finance-pipeline/internal/models"
)

type categoryMapper struct {
	synonyms map[string]string
}

// NewCategoryMapper creates a CategoryMapperInterface over a synonym table keyed
// by case-folded text. Entries that would remap a canonical label onto another
// category, or that target a non-canonical label, are ignored.
func NewCategoryMapper(synonyms map[string]string) CategoryMapperInterface {
	table := make(map[string]string, len(synonyms))
	for key, category := range synonyms {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" || !models.IsCanonicalCategory(category) {
			continue
		}
		if canonical := titleCase(key); models.IsCanonicalCategory(canonical) && canonical != category {
			continue
		}
		table[key] = category
	}
	return &categoryMapper{synonyms: table}
}

// MapCategory returns the canonical category for raw merchant category text
func (m *categoryMapper) MapCategory(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.CategoryOther
	}

	if category, ok := m.synonyms[strings.ToLower(s)]; ok {
		return category
	}

	if titled := titleCase(s); models.IsCanonicalCategory(titled) {
		return titled
	}

	return models.CategoryOther
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
// A word starts at any letter not preceded by another letter.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}

	return b.String()
}
