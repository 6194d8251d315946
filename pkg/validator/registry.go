// Package validator registers the CRM's custom binding rules with
// go-playground/validator and turns validation failures into field messages.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
	"github.com/ldanie38/geniuscrm/pkg/constants"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHexColor reports whether s is a #RRGGBB colour
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// customTags maps binding tag names to their rule
var customTags = map[string]playground.Func{
	"leadstatus": func(fl playground.FieldLevel) bool {
		return constants.LeadStatus(fl.Field().String()).IsValid()
	},
	"rgbhex": func(fl playground.FieldLevel) bool {
		return IsHexColor(fl.Field().String())
	},
}

// Register installs the custom tags on v and reports fields by their JSON name
func Register(v *playground.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	for tag, fn := range customTags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin installs the custom tags on gin's default validator
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// FieldErrors converts validator errors into field -> message. Other errors
// (malformed JSON, type mismatches) are reported under "body".
func FieldErrors(err error) map[string]string {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = Message(fe)
	}
	return out
}

// Message renders a single field failure
func Message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "leadstatus":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "rgbhex":
		return "Enter a valid hex color, e.g. #1A2B3C"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
