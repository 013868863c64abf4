package i18n

import "errors"

// Context cancellation errors are kept apart from I/O and parse failures so
// timeouts can be told from broken translation files.
var (
	ErrNilAdapter          = errors.New("translation adapter is nil")
	ErrInvalidTranslations = errors.New("invalid translations")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrEmptyFile            = errors.New("translation file is empty")

	// File system operations
	ErrLoadingTranslationsCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory        = errors.New("failed to read translation directory")
	ErrNoTranslationFiles           = errors.New("no valid translation files found")
)
