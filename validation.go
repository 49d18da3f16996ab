package backoffice

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// nrcRE matches a Zambian National Registration Card number, e.g. "123456/78/9".
var nrcRE = regexp.MustCompile(`^\d{6}/\d{2}/\d$`)

// validate is the shared struct validator. Field names in failure messages come
// from the json tags so they match the persisted column names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("nrc", func(fl validator.FieldLevel) bool {
		return nrcRE.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// fieldErrors converts the validator's failures into a ValidationError so
// every save reports per-field messages the same way.
func fieldErrors(err error) *ValidationError {
	ve := &ValidationError{}
	if err == nil {
		return ve
	}
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		ve.AddNonField(err.Error())
		return ve
	}
	for _, f := range failures {
		ve.Add(f.Field(), failureMessage(f))
	}
	return ve
}

func failureMessage(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "nrc":
		return "NRC must be in the format 123456/78/9"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(f.Param()), ", "))
	default:
		return fmt.Sprintf("failed %q validation", f.Tag())
	}
}
