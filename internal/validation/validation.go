// Package validation checks request payloads against their struct tags and
// reports failures as domain validation errors keyed by JSON field path.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ashureev/symcheck/internal/domain"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
	return instance
}

// Struct validates v. Field paths in the returned *domain.ValidationError
// are prefixed with prefix when it is non-empty.
func Struct(prefix string, v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %s: %w", prefix, err)
	}

	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Add(fieldPath(prefix, fe.Namespace()), message(fe))
	}
	return out
}

// Merge folds any validation errors in errs into one. A non-validation error
// is returned as is.
func Merge(errs ...error) error {
	var merged *domain.ValidationError
	for _, err := range errs {
		if err == nil {
			continue
		}
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		if merged == nil {
			merged = &domain.ValidationError{}
		}
		merged.Fields = append(merged.Fields, ve.Fields...)
	}
	if merged == nil {
		return nil
	}
	return merged
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(prefix, namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		rest = namespace
	}
	if prefix == "" {
		return rest
	}
	return prefix + "." + rest
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
