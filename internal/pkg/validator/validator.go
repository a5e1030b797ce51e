package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return IsHHMM(fl.Field().String())
	})
	_ = validate.RegisterValidation("civildate", func(fl validator.FieldLevel) bool {
		return IsCivilDate(fl.Field().String())
	})
}

// IsHHMM reports whether s is a 24h "HH:MM" time.
func IsHHMM(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// IsCivilDate reports whether s is a "YYYY-MM-DD" calendar date.
func IsCivilDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	errors := make(map[string]string)
	for _, err := range errs {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
