package utils

import (
	"beauty-clinic-service/internal/pkg/constvars"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("hhmm", validateTimeLabel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsValidDate reports whether value is a calendar date in YYYY-MM-DD form.
func IsValidDate(value string) bool {
	return validate.Var(value, "required,datetime="+constvars.DateLayout) == nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateTimeLabel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != len(constvars.TimeLayout) {
		return false
	}
	_, err := time.Parse(constvars.TimeLayout, value)
	return err == nil
}
