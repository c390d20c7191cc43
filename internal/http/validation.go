package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/postage-comparator/internal/domain/model"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the custom `postcode` and `theme` tags on gin's validator
// and reports field names by their JSON name. Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
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
		_ = v.RegisterValidation("postcode", func(fl validator.FieldLevel) bool {
			return model.IsValidPostcode(fl.Field().String())
		})
		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return model.IsValidTheme(fl.Field().String())
		})
	})
}

// fieldMessages maps a struct field and failing tag to the message shown to the user.
// The texts match the ones the service layer produces for the same rule.
var fieldMessages = map[string]map[string]string{
	"Postcode": {
		"required": "Postcode is required",
		"postcode": "Postcode must be 4 digits",
	},
	"Suburb":  {"required": "Suburb is required"},
	"State":   {"required": "State is required"},
	"Country": {"required": "Country is required", "alpha": "Country must be a 2-letter code", "len": "Country must be a 2-letter code"},
	"ThemePreference": {
		"required": "Theme preference must be dark, light, or sepia",
		"theme":    "Theme preference must be dark, light, or sepia",
	},
	"DestinationPostcode": {
		"required": "Destination postcode is required",
		"postcode": "Destination postcode must be 4 digits",
	},
	"Items":            {"required": "At least one item is required", "min": "At least one item is required"},
	"ItemID":           {"required": "Item id is required"},
	"Quantity":         {"gte": "Item quantity must be greater than 0"},
	"PackagingID":      {"required": "Packaging is required"},
	"UnitWeightGrams":  {"gte": "Item unit weight must be greater than 0"},
	"LengthCm":         {"gte": "Packaging dimensions (length, height, width) must be greater than 0"},
	"WidthCm":          {"gte": "Packaging dimensions (length, height, width) must be greater than 0"},
	"HeightCm":         {"gte": "Packaging dimensions (length, height, width) must be greater than 0"},
	"PackagingCostAud": {"gte": "Packaging cost must be greater than 0"},
}

// bindError classifies a failure from ShouldBindJSON.
type bindError struct {
	malformed bool
	message   string
	err       error
}

func (e *bindError) Error() string {
	return e.err.Error()
}

func (e *bindError) Unwrap() error {
	return e.err
}

// classifyBindError turns a binding failure into either a malformed-body error or
// the first field validation message.
func classifyBindError(err error) *bindError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &bindError{message: validationMessage(verrs[0]), err: err}
	}
	return &bindError{malformed: isMalformedJSON(err), err: err}
}

func isMalformedJSON(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

func validationMessage(fe validator.FieldError) string {
	if byTag, ok := fieldMessages[fe.StructField()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
