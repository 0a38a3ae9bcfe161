package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"finance-pipeline/internal/models"

	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("canonical_category", validateCanonicalCategory)
	_ = v.RegisterValidation("run_ts", validateRunTS)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a tagged struct
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateRules checks a rule set before it is handed to the gate and the cleaner
func (v *Validator) ValidateRules(rules *models.Rules) error {
	if rules == nil {
		return errors.New("rules cannot be nil")
	}
	if err := v.validate.Struct(rules); err != nil {
		return FormatErrors(err)
	}
	return nil
}

// ValidateRunTS checks that s is a run identifier such as 20250101T120000Z
func (v *Validator) ValidateRunTS(s string) error {
	if err := v.validate.Var(s, "required,run_ts"); err != nil {
		return fmt.Errorf("invalid run_ts %q", s)
	}
	return nil
}

// FormatErrors flattens validator field errors into a single readable error
func FormatErrors(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(messages, "; "))
}

// validateCurrencyCode validates a three letter upper-case ISO 4217 style code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}

func validateCanonicalCategory(fl validator.FieldLevel) bool {
	return models.IsCanonicalCategory(fl.Field().String())
}

func validateRunTS(fl validator.FieldLevel) bool {
	_, err := models.ParseRunTS(fl.Field().String())
	return err == nil
}
