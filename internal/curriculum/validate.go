package curriculum

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

var validate *validator.Validate

const (
	clockTag   = "clock"
	weekdayTag = "weekday"
)

func init() {
	validate = validator.New()

	// Report YAML field names instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(clockTag, func(fl validator.FieldLevel) bool {
		_, _, err := domain.ParseClock(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation(weekdayTag, func(fl validator.FieldLevel) bool {
		_, err := domain.ParseWeekday(fl.Field().String())
		return err == nil
	})
}

// validateFile runs struct validation and converts the first failure into a
// *domain.ValidationError keyed by its YAML path.
func validateFile(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return domain.NewValidationError(fieldPath(fe.Namespace()), describe(fe))
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + fe.Param() + " entries"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case clockTag:
		return "must be a time of day in HH:MM form"
	case weekdayTag:
		return "must be a weekday name"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
