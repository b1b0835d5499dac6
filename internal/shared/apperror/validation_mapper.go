package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// humanize: "start_date" -> "Start Date"
func humanize(field string) string {
	return titleCaser.String(strings.ReplaceAll(field, "_", " "))
}

// MapValidationError mengubah kegagalan validator pertama menjadi AppError yang bisa dibaca user.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeValidation, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := humanize(e.Field())

	var msg string
	switch e.Tag() {
	case "required", "required_without", "notblank":
		return RequiredField(field)
	case "min":
		msg = fmt.Sprintf("%s must be at least %s%s", field, e.Param(), unit(e.Kind()))
	case "max":
		msg = fmt.Sprintf("%s must be at most %s%s", field, e.Param(), unit(e.Kind()))
	case "email":
		msg = fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(e.Param()), ", "))
	default:
		return InvalidField(field)
	}
	return New(CodeValidation, msg, http.StatusBadRequest)
}

func unit(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	}
	return ""
}
