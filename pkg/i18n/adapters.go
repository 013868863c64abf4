package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// TranslationAdapter interface defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from a single file on disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
// Returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(a.path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, a.path)
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}

	return translations, nil
}

// FSAdapter loads every file of a directory in an fs.FS whose extension the
// parser supports, merging languages across files. It serves embed.FS and
// os.DirFS alike.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates a new FSAdapter instance.
// Returns nil if parser or fsys is nil; an empty dir means the root.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the TranslationAdapter interface.
// Files that fail to read or parse are skipped; Load fails only when no file
// could be used, reporting the collected errors.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	allTranslations := make(map[string]map[string]any)
	var fileErrs []error
	processed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := path.Ext(entry.Name())
		if ext == "" || !a.parser.SupportsFileExtension(ext) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		if err := a.processFile(ctx, filePath, allTranslations); err != nil {
			fileErrs = append(fileErrs, fmt.Errorf("%s: %w", filePath, err))
			continue
		}
		processed++
	}

	if processed == 0 {
		return nil, errors.Join(append([]error{fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)}, fileErrs...)...)
	}

	return allTranslations, nil
}

func (a *FSAdapter) processFile(ctx context.Context, filePath string, allTranslations map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}

	if len(content) == 0 {
		return ErrEmptyFile
	}

	fileTranslations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseFile, err)
	}

	for lang, translations := range fileTranslations {
		if allTranslations[lang] == nil {
			allTranslations[lang] = make(map[string]any)
		}
		maps.Copy(allTranslations[lang], translations)
	}

	return nil
}
