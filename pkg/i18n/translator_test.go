package i18n_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userprofile/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{
		Data: map[string]map[string]any{
			"en": {
				"hello":   "Hello",
				"welcome": "Welcome, %{name}!",
				"nested": map[string]any{
					"greeting": "Nested greeting",
				},
				"count": 42,
			},
			"es": {
				"hello":   "Hola",
				"welcome": "¡Bienvenido, %{name}!",
			},
		},
	}

	translator, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return translator
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		translator, err := i18n.NewTranslator(context.Background(), nil)
		require.ErrorIs(t, err, i18n.ErrNilAdapter)
		assert.Nil(t, translator)
	})

	t.Run("empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"hello": "Hello"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		require.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("nil language map", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		require.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("empty adapter is allowed", func(t *testing.T) {
		translator, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, translator.SupportedLanguages())
		assert.Equal(t, "hello", translator.T("en", "hello"))
	})
}

func TestTranslatorSupportedLanguages(t *testing.T) {
	translator := newTestTranslator(t)
	assert.Equal(t, []string{"en", "es"}, translator.SupportedLanguages())
	assert.Equal(t, i18n.DefaultLanguage, translator.DefaultLanguage())
}

func TestTranslatorHasTranslation(t *testing.T) {
	translator := newTestTranslator(t)

	assert.True(t, translator.HasTranslation("en", "hello"))
	assert.True(t, translator.HasTranslation("en", "nested.greeting"))
	assert.False(t, translator.HasTranslation("en", "nested"), "maps are not translations")
	assert.False(t, translator.HasTranslation("en", "missing"))
	assert.False(t, translator.HasTranslation("fr", "hello"))
}

func TestTranslatorT(t *testing.T) {
	translator := newTestTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"simple", "en", "hello", nil, "Hello"},
		{"other language", "es", "hello", nil, "Hola"},
		{"named parameter", "en", "welcome", []string{"name", "John"}, "Welcome, John!"},
		{"missing parameter kept", "en", "welcome", nil, "Welcome, %{name}!"},
		{"odd argument ignored", "en", "welcome", []string{"name", "Ann", "extra"}, "Welcome, Ann!"},
		{"nested key", "en", "nested.greeting", nil, "Nested greeting"},
		{"missing key falls back to key", "en", "missing.key", nil, "missing.key"},
		{"unsupported language falls back to key", "fr", "hello", nil, "hello"},
		{"non-string value falls back to key", "en", "count", nil, "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translator.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslatorWithoutFallback(t *testing.T) {
	translator := newTestTranslator(t, i18n.WithFallbackToKey(false))

	assert.Equal(t, "", translator.T("en", "missing"))
	assert.Equal(t, "", translator.T("fr", "hello"))
	assert.Equal(t, "Hello", translator.T("en", "hello"))
}

func TestTranslatorTd(t *testing.T) {
	translator := newTestTranslator(t)

	assert.Equal(t, "Hello", translator.Td("en", "hello", "default"))
	assert.Equal(t, "Hi Bob", translator.Td("en", "missing", "Hi %{name}", "name", "Bob"))
	assert.Equal(t, "default", translator.Td("fr", "hello", "default"))
	assert.Equal(t, "default", translator.Td("en", "nested", "default"))
}

func TestTranslatorTc(t *testing.T) {
	translator := newTestTranslator(t)

	assert.Equal(t, "Hello", translator.Tc(context.Background(), "hello"))
	ctx := i18n.SetLocale(context.Background(), "es")
	assert.Equal(t, "Hola", translator.Tc(ctx, "hello"))
	assert.Equal(t, "es", i18n.GetLocale(ctx))
}

func TestTranslatorMissingTranslationsLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	translator := newTestTranslator(t,
		i18n.WithLogger(logger),
		i18n.WithMissingTranslationsLogging(true),
	)
	translator.T("en", "missing")
	assert.Contains(t, buf.String(), "translation not found")

	buf.Reset()
	quiet := newTestTranslator(t, i18n.WithLogger(logger), i18n.WithNoLogging())
	quiet.T("en", "missing")
	assert.Empty(t, buf.String())
}

func TestTranslatorMatch(t *testing.T) {
	translator := newTestTranslator(t)

	tests := []struct {
		tag  string
		want string
	}{
		{"en", "en"},
		{"es", "es"},
		{"es-MX", "es"},
		{"EN-gb", "en"},
		{"fr", "en"},
		{"", "en"},
		{"not a tag!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, translator.Match(tt.tag))
		})
	}

	t.Run("custom default", func(t *testing.T) {
		es := newTestTranslator(t, i18n.WithDefaultLanguage("es"))
		assert.Equal(t, "es", es.Match("de"))
	})
}

func TestTranslatorConcurrency(t *testing.T) {
	translator := newTestTranslator(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "Welcome, X!", translator.T("en", "welcome", "name", "X"))
			assert.Equal(t, "es", translator.Match("es-AR"))
		}()
	}
	wg.Wait()
}
