package validation

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"prompt-manager/pkg/richtext"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the app's custom tags:
//
//	visible  string renders to non-blank text once markup is stripped
//	utf8     string is valid UTF-8 and survives a JSON round trip unchanged
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("visible", func(fl validator.FieldLevel) bool {
			return !richtext.IsBlank(fl.Field().String())
		})
		_ = validate.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
			return utf8.ValidString(fl.Field().String())
		})
	})
	return validate
}

func Struct(s interface{}) error {
	return Validator().Struct(s)
}

// FieldErrors flattens validator errors into field -> failed tag.
// Returns nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return out
}
