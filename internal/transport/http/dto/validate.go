package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/legislate-ai/core-service/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their json name so error messages match the wire.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// check runs struct validation and maps the first violation onto the
// domain error taxonomy.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return domain.ErrInvalidField("body", "invalid")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(fe.Field())
	case "oneof":
		return domain.ErrInvalidField(fe.Field(), "must be one of: "+fe.Param())
	default:
		return domain.ErrInvalidField(fe.Field(), "invalid value")
	}
}
