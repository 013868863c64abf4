package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/userprofile/pkg/profile"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"

	stdinName = "-"
)

var (
	errUnknownFormat = errors.New("unknown input format")
	errNoRecords     = errors.New("no records found")
)

// resolveFormat returns the decoder for name. A non-empty override wins;
// otherwise the extension decides and stdin defaults to JSON.
func resolveFormat(name, override string) (string, error) {
	if override != "" {
		return normalizeFormat(override)
	}
	if name == stdinName {
		return formatJSON, nil
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".jsonl", ".ndjson":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("%w for %q: use --format json|yaml", errUnknownFormat, name)
	}
}

func normalizeFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return formatJSON, nil
	case "yaml", "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("%w %q: must be json or yaml", errUnknownFormat, s)
	}
}

// decodeRecords reads every record in r. A document may hold a single record
// or a list; several JSON values or YAML documents may follow each other.
func decodeRecords(r io.Reader, format string) ([]profile.UserRecord, error) {
	var (
		records []profile.UserRecord
		err     error
	)
	switch format {
	case formatJSON:
		records, err = decodeJSON(r)
	case formatYAML:
		records, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w %q", errUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errNoRecords
	}
	return records, nil
}

func decodeJSON(r io.Reader) ([]profile.UserRecord, error) {
	var records []profile.UserRecord
	dec := json.NewDecoder(r)
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("decode json: %w", err)
		}

		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '[' {
			var batch []profile.UserRecord
			if err := json.Unmarshal(raw, &batch); err != nil {
				return nil, fmt.Errorf("decode json: %w", err)
			}
			records = append(records, batch...)
			continue
		}

		var rec profile.UserRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		records = append(records, rec)
	}
}

func decodeYAML(r io.Reader) ([]profile.UserRecord, error) {
	var records []profile.UserRecord
	dec := yaml.NewDecoder(r)
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
			continue
		}

		node := doc.Content[0]
		if node.Kind == yaml.SequenceNode {
			var batch []profile.UserRecord
			if err := node.Decode(&batch); err != nil {
				return nil, fmt.Errorf("decode yaml: %w", err)
			}
			records = append(records, batch...)
			continue
		}

		var rec profile.UserRecord
		if err := node.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		records = append(records, rec)
	}
}
