package models

// Canonical transaction categories
const (
	CategoryGroceries     = "Groceries"
	CategoryDining        = "Dining"
	CategoryTransport     = "Transport"
	CategoryUtilities     = "Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryTravel        = "Travel"
	CategoryHealthcare    = "Healthcare"
	CategoryIncome        = "Income"
	CategoryFees          = "Fees"
	CategoryOther         = "Other"
)

// AllCategories returns all canonical category labels
func AllCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryDining,
		CategoryTransport,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryShopping,
		CategoryTravel,
		CategoryHealthcare,
		CategoryIncome,
		CategoryFees,
		CategoryOther,
	}
}

// IsCanonicalCategory reports whether category is exactly one of the canonical labels
func IsCanonicalCategory(category string) bool {
	switch category {
	case CategoryGroceries, CategoryDining, CategoryTransport, CategoryUtilities,
		CategoryEntertainment, CategoryShopping, CategoryTravel, CategoryHealthcare,
		CategoryIncome, CategoryFees, CategoryOther:
		return true
	default:
		return false
	}
}

// DefaultCategorySynonyms maps case-folded merchant category text to a canonical label
func DefaultCategorySynonyms() map[string]string {
	return map[string]string{
		"grocery":       CategoryGroceries,
		"groceries":     CategoryGroceries,
		"mat":           CategoryGroceries,
		"restaurant":    CategoryDining,
		"restaurang":    CategoryDining,
		"dining":        CategoryDining,
		"cafe":          CategoryDining,
		"uber":          CategoryTransport,
		"taxi":          CategoryTransport,
		"transport":     CategoryTransport,
		"transit":       CategoryTransport,
		"utilities":     CategoryUtilities,
		"power":         CategoryUtilities,
		"internet":      CategoryUtilities,
		"entertainment": CategoryEntertainment,
		"streaming":     CategoryEntertainment,
		"shopping":      CategoryShopping,
		"electronics":   CategoryShopping,
		"books":         CategoryShopping,
		"book":          CategoryShopping,
		"travel":        CategoryTravel,
		"flight":        CategoryTravel,
		"hotel":         CategoryTravel,
		"health":        CategoryHealthcare,
		"healthcare":    CategoryHealthcare,
		"income":        CategoryIncome,
		"salary":        CategoryIncome,
		"fees":          CategoryFees,
		"fee":           CategoryFees,
	}
}
