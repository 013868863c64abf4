package i18n

import (
	"golang.org/x/text/language"
)

// Match returns the supported language that best serves the requested tag,
// e.g. "es-MX" resolves to "es" when only "es" is loaded. Unparseable or
// unsupported tags resolve to the default language.
func (t *Translator) Match(tag string) string {
	supported := t.SupportedLanguages()
	if len(supported) == 0 {
		return t.defaultLang
	}

	// The first candidate is what the matcher falls back to.
	candidates := make([]string, 0, len(supported)+1)
	candidates = append(candidates, t.defaultLang)
	for _, lang := range supported {
		if lang != t.defaultLang {
			candidates = append(candidates, lang)
		}
	}

	tags := make([]language.Tag, len(candidates))
	for i, c := range candidates {
		tags[i] = language.Make(c)
	}

	requested, err := language.Parse(tag)
	if err != nil {
		return t.defaultLang
	}

	_, idx, confidence := language.NewMatcher(tags).Match(requested)
	if confidence == language.No {
		return t.defaultLang
	}
	return candidates[idx]
}
