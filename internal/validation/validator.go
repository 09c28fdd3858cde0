// Package validation enforces request field rules and the translation-set
// uniqueness pre-condition before a payload reaches storage.
package validation

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
	"github.com/shopspring/decimal"

	"github.com/mkalns/samplestore/internal/apierr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Let numeric comparison tags (gte, lte) apply to decimal amounts.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// Validate runs the struct rules on v and maps failures into the error
// envelope, one detail per violated rule, with JSON-pointer sources.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return apierr.InternalServer()
	}

	details := make([]apierr.ErrorDetail, len(violations))
	for i, violation := range violations {
		details[i] = mapViolation(violation)
	}

	return &apierr.ErrorResult{
		Status: http.StatusBadRequest,
		Errors: details,
	}
}

func mapViolation(v validator.FieldError) apierr.ErrorDetail {
	code := apierr.CodeInvalid
	if v.Tag() == "required" {
		code = apierr.CodeRequired
	}

	var meta map[string]any
	if v.Param() != "" {
		meta = map[string]any{v.Tag(): v.Param()}
	}

	return apierr.ErrorDetail{
		Code: code,
		Source: apierr.ErrorSource{
			Pointer: pointer(v.Namespace()),
			Meta:    meta,
		},
	}
}

// pointer turns a validator namespace like
// "SampleRequest.Translations[2].Ordinal" into "/body/translations/2/ordinal".
func pointer(namespace string) string {
	parts := strings.Split(namespace, ".")[1:]

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Replace(part, "[", "/", 1)
		part = strings.Replace(part, "]", "", 1)
		for _, seg := range strings.Split(part, "/") {
			if seg == "" {
				continue
			}
			if seg[0] >= '0' && seg[0] <= '9' {
				segments = append(segments, seg)
				continue
			}
			segments = append(segments, strcase.ToLowerCamel(seg))
		}
	}

	return "/body/" + strings.Join(segments, "/")
}
