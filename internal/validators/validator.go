package validators

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator"
)

// DateLayout is the calendar date format of the forms.
const DateLayout = "2006-01-02"

const (
	tagEmail       = "emailaddr"
	tagDate        = "calendardate"
	tagNonNegative = "nonnegative"
)

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// StructValidator implements [Validator] on top of go-playground/validator.
type StructValidator struct {
	validate *validator.Validate
}

// NewValidator constructs a [StructValidator] with the custom tags
// registered and JSON field names used in the reported errors.
func NewValidator() Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// registration fails only for an empty tag or a nil func
	_ = v.RegisterValidation(tagEmail, isEmail)
	_ = v.RegisterValidation(tagDate, isCalendarDate)
	_ = v.RegisterValidation(tagNonNegative, isNonNegativeNumber)

	return &StructValidator{validate: v}
}

// Validate implements [Validator]. obj must be a struct or a pointer to one.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func isEmail(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String && IsEmail(fl.Field().String())
}

func isCalendarDate(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func isNonNegativeNumber(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := ParseAmount(fl.Field().String())
	return err == nil
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseAmount parses a finite, non-negative amount.
func ParseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}
	return f, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be " + fe.Param() + " or greater"
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be " + fe.Param() + " or less"
	case "eqfield":
		return "does not match the password"
	case tagEmail:
		return "must be a valid email address"
	case tagDate:
		return "must be a date in YYYY-MM-DD format"
	case tagNonNegative:
		return "must be a number of 0 or more"
	default:
		return "is invalid"
	}
}
