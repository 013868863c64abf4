package profile

import (
	"context"
	"embed"

	"github.com/dmitrymomot/userprofile/pkg/i18n"
)

// Locales holds the bundled translations for profile validation messages.
//
//go:embed locales/*.yaml
var Locales embed.FS

// NewTranslator returns a translator loaded with the bundled locales.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), Locales, "locales"), opts...)
}
