package middleware

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/RizalSwikey/web-akuntansi/internal/interfaces/http/dto"
)

// PTKP status codes follow the DJP format: TK/0..TK/3, K/0..K/3,
// K/I/0..K/I/3
var ptkpPattern = regexp.MustCompile(`^(TK|K|K/I)/[0-3]$`)

// SetupValidator configures gin's validator with JSON field names and
// the custom tags request DTOs bind with. Safe to call more than once.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("ptkp", func(fl validator.FieldLevel) bool {
		return ptkpPattern.MatchString(fl.Field().String())
	})
}

// ValidationDetails converts validator errors into response details
func ValidationDetails(errs validator.ValidationErrors) []dto.ValidationDetail {
	details := make([]dto.ValidationDetail, 0, len(errs))
	for _, e := range errs {
		details = append(details, dto.ValidationDetail{
			Field:   e.Field(),
			Message: validationMessage(e),
		})
	}
	return details
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Must be at least " + e.Param()
	case "max":
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "ptkp":
		return "Must be a PTKP status code such as TK/0 or K/2"
	default:
		return "Invalid value"
	}
}
