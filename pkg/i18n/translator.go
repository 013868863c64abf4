package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is the language used when no other language is configured.
const DefaultLanguage = "en"

// Translator resolves translation keys for a set of languages loaded through
// a TranslationAdapter. It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:        adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// validateTranslations rejects empty language codes and nil language maps.
func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations map for language %s", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "profile.name.required" walks m["profile"]["name"]["required"].
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}

			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return nil, false
}

// HasTranslation checks if a string translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		return false
	}
	_, isString := val.(string)
	return isString
}

// buildParams converts key, value, key, value... into a map.
// An odd trailing argument is ignored.
func (t *Translator) buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

func (t *Translator) sprintf(tmpl string, args []string) string {
	return t.namedSprintf(tmpl, t.buildParams(args))
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes %{name} placeholders; unknown placeholders are kept verbatim.
func (t *Translator) namedSprintf(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// T translates a key for the given language.
// Additional arguments are key-value pairs substituted into "%{name}" placeholders:
//
//	// With translation "welcome": "Hello, %{name}!"
//	msg := translator.T("en", "welcome", "name", "John")
//	// Returns: "Hello, John!"
//
// When the key is missing it returns the key itself if fallback to key is
// enabled, and an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		if t.fallbackToKey {
			return t.sprintf(key, args)
		}
		return ""
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		if t.fallbackToKey {
			return t.sprintf(key, args)
		}
		return ""
	}

	switch v := val.(type) {
	case string:
		return t.sprintf(v, args)
	case fmt.Stringer:
		return t.sprintf(v.String(), args)
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		if t.fallbackToKey {
			return t.sprintf(key, args)
		}
		return ""
	}
}

// Td translates a key, returning defaultValue (with placeholders substituted)
// when the language or key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return t.sprintf(defaultValue, args)
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return t.sprintf(defaultValue, args)
	}

	strVal, ok := val.(string)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
		}
		return t.sprintf(defaultValue, args)
	}

	return t.sprintf(strVal, args)
}

// Tc translates a key using the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}
