package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NewCustomValidator adapts v to echo's Validator so handlers can call
// c.Validate on bound request bodies.  Field errors are reported under
// their JSON names.
func NewCustomValidator(v *validator.Validate) echo.Validator {
	v.RegisterTagNameFunc(jsonName)
	return &CustomValidator{v}
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// FirstError renders the first failing field of a validation error as
// "<field> failed <tag>", or err's message for any other error.
func FirstError(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field() + " failed " + fe.Tag()
	}
	return err.Error()
}
