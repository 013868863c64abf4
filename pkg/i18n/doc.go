// Package i18n loads translations and localizes messages, including
// validation errors produced by package validator.
//
// A Translator delegates storage to a TranslationAdapter. MapAdapter serves
// in-memory data, FileAdapter a single file and FSAdapter a directory in any
// fs.FS (embed.FS, os.DirFS). Files are decoded by a Parser chosen by
// extension: YAML (gopkg.in/yaml.v3) or JSON. Each file maps language codes to
// nested keys:
//
//	en:
//	  profile:
//	    name:
//	      required: Name is required.
//
// Keys are addressed with dots ("profile.name.required") and templates use
// named placeholders:
//
//	translator, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"))
//	msg := translator.T("en", "welcome", "name", "John")
//
// Match resolves a requested BCP 47 tag (golang.org/x/text/language) to the
// closest loaded language, so "es-MX" uses "es" and unknown tags use the
// default language. Localize rewrites the messages of a
// validator.ValidationErrors using each error's translation key and values,
// keeping the original message whenever a translation is missing.
//
// Translator is safe for concurrent use.
package i18n
