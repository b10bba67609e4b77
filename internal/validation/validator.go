package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	})

	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse("15:04", value)
		return err == nil
	})

	phoneRegex := regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return phoneRegex.MatchString(value)
	})

	// Prices and order totals travel as decimal strings ("120.00").
	decimalRegex := regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
	v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return decimalRegex.MatchString(value)
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}
	return nil
}
