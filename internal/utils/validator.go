package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sehat-jiwa/assessment-service/internal/catalog"
	apperrors "github.com/sehat-jiwa/assessment-service/internal/errors"
)

// Validator wraps go-playground struct validation with the service's
// custom rules and error translation.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()
	registerCustomValidators(validate)
	return &Validator{validate: validate}
}

// Validate checks struct tags and translates failures into ValidationErrors.
func (v *Validator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		if translated := apperrors.ToValidationErrors(err); len(translated) > 0 {
			return translated
		}
		return err
	}
	return nil
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("instrument_id", validateInstrumentID)

	// Report json field names in error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateInstrumentID(fl validator.FieldLevel) bool {
	_, err := catalog.Get(fl.Field().String())
	return err == nil
}
