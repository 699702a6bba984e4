package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/go-drift/ripplebutton/pkg/button"
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the package's custom
// tags registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("schema_version", func(fl validator.FieldLevel) bool {
			return checkVersion(fl.Field().String()) == nil
		})

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			_, err := button.ParseVariant(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("step_op", func(fl validator.FieldLevel) bool {
			op := fl.Field().String()
			switch op {
			case OpFlush, OpAdvance, OpDispose, OpElementFocus, OpElementBlur:
				return true
			}
			_, ok := dom.ParseEventType(op)
			return ok
		})

		validateInst = v
	})
	return validateInst
}

// checkVersion accepts semantic versions whose major is SchemaMajor. A
// leading "v" is optional.
func checkVersion(version string) error {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("%q is not a semantic version", version)
	}
	if major := semver.Major(version); major != SchemaMajor {
		return fmt.Errorf("schema %s is not supported, want %s", major, SchemaMajor)
	}
	return nil
}

// convertValidationError normalizes validator errors into validation errors
// carrying a yaml-style field path.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if stderrors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := yamlField(fe)
		return errors.NewValidationError(field, describe(fe), err)
	}

	return errors.NewValidationError("config", err.Error(), err)
}

// yamlField drops the root type name from the namespace.
func yamlField(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return fmt.Sprintf("is required when %s", strings.Replace(fe.Param(), " ", " is ", 1))
	case "min":
		return fmt.Sprintf("needs at least %s entries", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "schema_version":
		return checkVersion(fmt.Sprint(fe.Value())).Error()
	case "variant":
		return fmt.Sprintf("unknown variant %q", fe.Value())
	case "step_op":
		return fmt.Sprintf("unknown op %q", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
