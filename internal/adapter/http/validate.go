package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"erogram-ads/internal/core/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// errMalformedBody is returned when the request body is not valid JSON.
var errMalformedBody = errors.New("invalid JSON")

// requestValidationError lists failing fields by their JSON name.
type requestValidationError struct {
	Fields map[string]string
}

func (e *requestValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("slot", func(fl validator.FieldLevel) bool {
			return domain.Slot(fl.Field().String()).Valid()
		})
	})
	return validate
}

// decodeJSON decodes the request body into dst and validates it.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	return validateStruct(dst)
}

func validateStruct(v any) error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &requestValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a UUID"
	case "url":
		return "must be a URL"
	case "slot":
		return "must be a known slot"
	case "oneof":
		return "must be one of " + fe.Param()
	case "gtefield":
		return "must not be before " + fe.Param()
	case "min", "max":
		return fmt.Sprintf("violates %s=%s", fe.Tag(), fe.Param())
	default:
		return "is invalid"
	}
}

// writeRequestError answers a decodeJSON failure with 400.
func writeRequestError(w http.ResponseWriter, err error) {
	var verr *requestValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: verr.Fields})
		return
	}
	writeError(w, http.StatusBadRequest, errMalformedBody.Error())
}
