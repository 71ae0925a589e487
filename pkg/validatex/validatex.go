package validatex

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/go-playground/validator/v10"
)

var ErrRegistry = errx.NewRegistry("REQUEST")

var (
	CodeValidationFailed = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")
	CodeInvalidBody      = ErrRegistry.Register("INVALID_BODY", errx.TypeValidation, http.StatusBadRequest, "Request body could not be parsed")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so clients can map errors to inputs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s against its `validate` tags
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrRegistry.NewWithCause(CodeValidationFailed, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = rule(fe)
	}
	return ErrRegistry.New(CodeValidationFailed).WithDetail("fields", fields)
}

// ErrInvalidBody is returned by handlers when the body does not decode
func ErrInvalidBody(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeInvalidBody, cause).WithDetail("parse_error", cause.Error())
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
