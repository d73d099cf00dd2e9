package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/hakwonlab/acadpanel/web/entity"

	"github.com/go-playground/validator/v10"
)

// Sentinel outcomes every org-scoped operation can surface. Controllers map
// them onto HTTP statuses and localized messages; anything else is treated
// as an internal error and logged without leaking detail to the caller.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrNotFound        = errors.New("record not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrCapacity        = errors.New("capacity reached")
	ErrProfileNotFound = errors.New("profile not found")
	ErrFeatureDisabled = errors.New("feature disabled")
)

// ValidationError rejects a payload before it reaches the store, carrying
// per-field detail.
type ValidationError struct {
	Fields entity.FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

// newValidator builds the shared validator, reporting fields under their
// json names so clients can match errors to inputs.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs validator tags over a form and converts failures into a
// ValidationError. A nil return means the payload may touch the store.
func checkStruct(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}

	fields := entity.FieldErrors{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			fields[fe.Field()] = fmt.Sprintf("failed on '%s' rule", fe.Tag())
		}
	}
	return &ValidationError{Fields: fields}
}

func newFieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: entity.FieldErrors{field: msg}}
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure, which the scoping contract surfaces as ErrConflict.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
