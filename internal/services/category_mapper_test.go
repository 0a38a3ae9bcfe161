package services

import (
	"testing"

	"finance-pipeline/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
)

type CategoryMapperTestSuite struct {
	suite.Suite
	mapper CategoryMapperInterface
}

func TestCategoryMapperSuite(t *testing.T) {
	suite.Run(t, new(CategoryMapperTestSuite))
}

func (s *CategoryMapperTestSuite) SetupTest() {
	s.mapper = NewCategoryMapper(models.DefaultRules().SynonymTable())
}

func (s *CategoryMapperTestSuite) TestMapCategory_Synonyms() {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"grocery", models.CategoryGroceries},
		{"MAT", models.CategoryGroceries},
		{"  Restaurang ", models.CategoryDining},
		{"cafe", models.CategoryDining},
		{"Uber", models.CategoryTransport},
		{"internet", models.CategoryUtilities},
		{"streaming", models.CategoryEntertainment},
		{"book", models.CategoryShopping},
		{"hotel", models.CategoryTravel},
		{"health", models.CategoryHealthcare},
		{"salary", models.CategoryIncome},
		{"fee", models.CategoryFees},
	}

	for _, tc := range testCases {
		s.Run(tc.raw, func() {
			s.Equal(tc.expected, s.mapper.MapCategory(tc.raw))
		})
	}
}

func (s *CategoryMapperTestSuite) TestMapCategory_TitleCaseFallback() {
	s.Equal(models.CategoryOther, s.mapper.MapCategory("other"))
	s.Equal(models.CategoryTravel, s.mapper.MapCategory("tRAVEL"))
	s.Equal(models.CategoryHealthcare, s.mapper.MapCategory("HEALTHCARE"))
}

func (s *CategoryMapperTestSuite) TestMapCategory_UnknownAndBlank() {
	for _, raw := range []string{"", "   ", "crypto", "Pet Supplies", "123"} {
		s.Equal(models.CategoryOther, s.mapper.MapCategory(raw), "input %q", raw)
	}
}

func (s *CategoryMapperTestSuite) TestMapCategory_TotalAndIdempotent() {
	inputs := []string{"grocery", "Dining", "unknown", "", "FEES", "transit"}
	for i := 0; i < 50; i++ {
		inputs = append(inputs, gofakeit.Word(), gofakeit.BuzzWord())
	}

	for _, raw := range inputs {
		once := s.mapper.MapCategory(raw)
		s.True(models.IsCanonicalCategory(once), "input %q mapped to %q", raw, once)
		s.Equal(once, s.mapper.MapCategory(once), "input %q", raw)
	}
}

func (s *CategoryMapperTestSuite) TestNewCategoryMapper_IgnoresConflictingSynonyms() {
	mapper := NewCategoryMapper(map[string]string{
		"dining": models.CategoryTravel,
		"Snacks": models.CategoryGroceries,
		"pets":   "Animals",
	})

	s.Equal(models.CategoryDining, mapper.MapCategory("dining"))
	s.Equal(models.CategoryGroceries, mapper.MapCategory("snacks"))
	s.Equal(models.CategoryOther, mapper.MapCategory("pets"))
}

func (s *CategoryMapperTestSuite) TestTitleCase() {
	s.Equal("Groceries", titleCase("gROCERIES"))
	s.Equal("Pet Supplies", titleCase("pet supplies"))
	s.Equal("1A-B", titleCase("1a-b"))
}
