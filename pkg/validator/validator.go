// Package validator decodes and validates request DTOs with
// go-playground/validator and renders failures as a per-field message map.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizservices/pkg/httpx"
)

// DateLayout is the ISO-8601 calendar date format accepted by date fields.
const DateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Decimals are compared as float64 so numeric tags (gte, lte) apply to money fields.
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		d, ok := v.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})

	_ = validate.RegisterValidation("pastorpresent", pastOrPresent)
	_ = validate.RegisterValidation("decimal", decimalFits)
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
}

// decimalFits checks a decimal against a NUMERIC(precision, scale) column.
// The tag parameter is "precision scale", e.g. decimal=10 2. Values with more
// fractional digits than scale, or too many integer digits, fail.
func decimalFits(fl validator.FieldLevel) bool {
	precision, scale, ok := parseDecimalParam(fl.Param())
	if !ok {
		panic(fmt.Sprintf("validator: bad decimal parameter %q on %s", fl.Param(), fl.StructFieldName()))
	}
	d, ok := fieldDecimal(fl)
	if !ok {
		return false
	}
	if !d.Equal(d.Truncate(scale)) {
		return false
	}
	limit := decimal.New(1, precision-scale)
	return d.Abs().LessThan(limit)
}

func parseDecimalParam(param string) (precision, scale int32, ok bool) {
	parts := strings.Fields(param)
	if len(parts) != 2 {
		return 0, 0, false
	}
	p, err1 := strconv.ParseInt(parts[0], 10, 32)
	s, err2 := strconv.ParseInt(parts[1], 10, 32)
	if err1 != nil || err2 != nil || p <= 0 || s < 0 || s > p {
		return 0, 0, false
	}
	return int32(p), int32(s), true
}

// fieldDecimal reads the decimal under validation from its parent struct. The
// registered type func hands tags a float64, which would hide extra digits.
func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if parent := reflect.Indirect(fl.Parent()); parent.Kind() == reflect.Struct {
		if f := reflect.Indirect(parent.FieldByName(fl.StructFieldName())); f.IsValid() {
			if d, ok := f.Interface().(decimal.Decimal); ok {
				return d, true
			}
		}
	}
	if fl.Field().Kind() == reflect.Float64 {
		return decimal.NewFromFloat(fl.Field().Float()), true
	}
	return decimal.Decimal{}, false
}

// pastOrPresent accepts a YYYY-MM-DD string that is not after today (UTC).
// Empty strings pass; combine with required to reject them.
func pastOrPresent(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return !d.After(today)
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field path → human-readable message. Nested fields keep their JSON path,
// e.g. "orderItems[0].quantity".
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[fieldPath(e)] = formatFieldError(e)
	}
	return errs
}

// fieldPath strips the top-level struct name from the error namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "notblank":
		return "Must not be blank"
	case "decimal":
		return decimalMessage(e.Param())
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "email":
		return "Must be a valid email address"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "datetime":
		return "Must be a date in YYYY-MM-DD format"
	case "pastorpresent":
		return "Must be a date in the past or present"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

func decimalMessage(param string) string {
	precision, scale, ok := parseDecimalParam(param)
	if !ok {
		return "Must be a valid amount"
	}
	return fmt.Sprintf("Must have at most %d integer digits and %d decimal places", precision-scale, scale)
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an appropriate error response if either step fails.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Validation failed",
			"fields": FormatValidationErrors(err),
		})
		return nil, false
	}
	return &req, true
}
