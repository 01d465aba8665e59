package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"complaint-portal/internal/common/enum"
	types "complaint-portal/internal/common/type"
	"complaint-portal/internal/pkg/helper"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	val     *validator.Validate
	valOnce sync.Once
	valErr  error
)

// ErrValidation marks payloads rejected before any network call.
var ErrValidation = errors.New("validation failed")

var validationMessages = map[string]string{
	"required":     "is required",
	"url":          "must be a valid URL",
	"number":       "must be a number",
	"oneof":        "must be one of the allowed values: %s",
	"email":        "must be a valid email address",
	"min":          "must be greater than or equal to %s",
	"max":          "must be less than or equal to %s",
	"len":          "must have the exact length of %s",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"startswith":   "must start with %s",
	"datetime":     "must match the date format %s",
	"enum":         "must be one of the allowed enum values: %s",
	"stringToBool": "must be a boolean value",
	"videolink":    "must be a YouTube video link",
	"notblank":     "must not be blank",
}

// Setup builds the package validator and registers the custom tags on gin's
// binding engine as well.
func Setup() error {
	if err := initValidator(); err != nil {
		return err
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := RegisterValidations(v); err != nil {
			return fmt.Errorf("failed to register custom validations in Gin engine: %w", err)
		}
	} else {
		return fmt.Errorf("failed to get validation engine")
	}

	return nil
}

func initValidator() error {
	valOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := RegisterValidations(v); err != nil {
			valErr = fmt.Errorf("failed to register custom validations: %w", err)
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
		val = v
	})
	return valErr
}

func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("enum", enum.ValidateEnum); err != nil {
		return fmt.Errorf("failed to register enum validation: %w", err)
	}
	if err := v.RegisterValidation("stringToBool", types.ValidateStringToBool); err != nil {
		return fmt.Errorf("failed to register stringToBool validation: %w", err)
	}
	if err := v.RegisterValidation("videolink", validateVideoLink); err != nil {
		return fmt.Errorf("failed to register videolink validation: %w", err)
	}
	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		return fmt.Errorf("failed to register notblank validation: %w", err)
	}
	return nil
}

func validateVideoLink(fl validator.FieldLevel) bool {
	link := fl.Field().String()
	if link == "" {
		return true
	}
	_, ok := helper.ExtractVideoID(link)
	return ok
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate checks payload against its struct tags. Failures wrap
// ErrValidation.
func Validate(payload interface{}) error {
	if err := initValidator(); err != nil {
		return err
	}
	if err := val.Struct(payload); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, parsingErrorValidate(err))
	}
	return nil
}

func parsingErrorValidate(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		var sb strings.Builder
		for _, e := range errs {
			msg := validationMessages[e.Tag()]
			if msg == "" {
				msg = "is invalid (" + e.Tag() + ")"
			}
			switch e.Tag() {
			case "enum":
				msg = fmt.Sprintf(msg, e.Type())
			default:
				if strings.Contains(msg, "%s") {
					msg = fmt.Sprintf(msg, e.Param())
				}
			}
			sb.WriteString(fmt.Sprintf("%s %s", e.Field(), msg))
			sb.WriteString(", ")
		}
		return strings.TrimSuffix(sb.String(), ", ")
	}
	return err.Error()
}
