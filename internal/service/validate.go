package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// requestValidator checks struct tags on request messages and reports
// failures as readable English.
type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// newRequestValidator panics if the English translations cannot be set up.
// Services build one at construction time, so this fails at startup.
func newRequestValidator() *requestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names rather than Go ones.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	eng := en.New()
	uni := ut.New(eng, eng)
	trans, found := uni.GetTranslator("en")
	if !found {
		panic("validator: english translator not registered")
	}
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Sprintf("validator: failed to register english translations: %v", err))
	}

	return &requestValidator{validate: validate, trans: trans}
}

// check returns a CodeInvalidArgument error when msg fails validation.
func (v *requestValidator) check(msg any) error {
	err := v.validate.Struct(msg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	messages := make([]string, len(verrs))
	for i, e := range verrs {
		messages[i] = e.Translate(v.trans)
	}
	return connect.NewError(connect.CodeInvalidArgument, errors.New(strings.Join(messages, ", ")))
}
