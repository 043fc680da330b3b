package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/anshy0304/veggiefinder/internal/pkg/strcase"
)

// Lower bound is the product rule; upper bound is the bcrypt input limit.
var rePassword = regexp.MustCompile(`^.{6,72}$`)

// ErrTranslatorNotFound is returned when the English translator cannot be
// loaded at startup.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator on go-playground/validator v10 with
// English messages and the custom password rule registered.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewV10Validator builds the validator.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	translator, ok := ut.New(enLocale, enLocale).GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}
	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}
	registerPasswordRule(validate, translator)

	return &V10Validator{validate: validate, translator: translator}, nil
}

// Validate checks data against its validate tags. On failure it returns a
// V10ValidationError keyed by snake_case field name.
func (v *V10Validator) Validate(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(V10ValidationError, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[strcase.ToLowerSnake(fe.Field())] = fe.Translate(v.translator)
	}
	return out
}

// V10ValidationError maps snake_case field names to translated messages.
// The HTTP layer flattens it into the error body of a 422 response.
type V10ValidationError map[string]string

func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}
	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values exposes the field map.
func (vs V10ValidationError) Values() map[string]string { return vs }

//nolint:errcheck,gosec,forcetypeassert // make linter silent
func registerPasswordRule(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		p, ok := fl.Field().Interface().(string)
		return ok && rePassword.MatchString(p)
	})

	validate.RegisterTranslation("password", translator,
		func(ut ut.Translator) error {
			return ut.Add("password", "{0} must be 6-72 characters", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				slog.Warn("translate validation message", "FieldError", fe, "error", err)
				return fe.(error).Error()
			}
			return t
		},
	)
}
