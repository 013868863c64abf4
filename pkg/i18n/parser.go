package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser turns the content of a translation file into per-language maps.
type Parser interface {
	// Parse returns a map keyed by language code; each value holds that
	// language's (possibly nested) translation keys.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil when
// the extension is not recognised.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
