// Package validate wraps go-playground/validator with english translations
// and converts schema violations into the domain validation error, one
// source entry per violated field. Handlers validate the decoded DTO and
// hand any error straight to the response writer.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"

	"github.com/baechuer/blog-api/internal/domain"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()

	// Report field names from json tags so violation paths match the wire
	// format of the request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = entrans.RegisterDefaultTranslations(validate, trans)
}

// Struct validates dst against its validate tags. It returns nil when valid,
// otherwise a single domain validation error carrying every violation.
func Struct(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-field error (e.g. dst is not a struct). Programming mistake.
		return domain.ErrInternal(err)
	}

	sources := make([]domain.ErrorSource, 0, len(verrs))
	for _, fe := range verrs {
		sources = append(sources, domain.ErrorSource{
			Path:    fe.Field(),
			Message: fe.Translate(trans),
		})
	}
	return domain.ErrValidation(sources)
}
