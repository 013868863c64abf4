package i18n

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/userprofile/pkg/validator"
)

// Localize returns a copy of errs with messages translated into the language
// that best matches lang. Errors without a translation key, or whose key has
// no translation, keep their original message. Field names and order are
// preserved and errs itself is not modified.
func (t *Translator) Localize(lang string, errs validator.ValidationErrors) validator.ValidationErrors {
	if len(errs) == 0 {
		return errs
	}

	lang = t.Match(lang)
	out := make(validator.ValidationErrors, len(errs))
	for i, e := range errs {
		out[i] = e
		if e.TranslationKey == "" || !t.HasTranslation(lang, e.TranslationKey) {
			continue
		}
		out[i].Message = t.T(lang, e.TranslationKey, translationArgs(e.TranslationValues)...)
	}
	return out
}

// LocalizeContext is Localize using the locale stored in ctx.
func (t *Translator) LocalizeContext(ctx context.Context, errs validator.ValidationErrors) validator.ValidationErrors {
	return t.Localize(GetLocale(ctx), errs)
}

// translationArgs flattens values into sorted key, value pairs for T.
func translationArgs(values map[string]any) []string {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, formatValue(values[k]))
	}
	return args
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}
