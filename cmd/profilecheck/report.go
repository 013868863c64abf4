package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrymomot/userprofile/pkg/validator"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// report is the outcome for one input.
type report struct {
	Input   string
	Err     error
	Records []recordResult
}

type recordResult struct {
	Index      int
	Violations validator.ValidationErrors
}

func (r report) label(index int) string {
	name := r.Input
	if name == stdinName {
		name = "<stdin>"
	}
	if len(r.Records) == 1 {
		return name
	}
	return fmt.Sprintf("%s[%d]", name, index)
}

func (r report) invalid() int {
	n := 0
	for _, rec := range r.Records {
		if !rec.Violations.IsEmpty() {
			n++
		}
	}
	return n
}

// summarize counts unreadable inputs and invalid records.
func summarize(reports []report) (failed, invalid int) {
	for _, r := range reports {
		if r.Err != nil {
			failed++
			continue
		}
		invalid += r.invalid()
	}
	return failed, invalid
}

func writeText(w io.Writer, reports []report) error {
	for _, r := range reports {
		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "%s: error: %v\n", r.label(0), r.Err); err != nil {
				return err
			}
			continue
		}
		for _, rec := range r.Records {
			label := r.label(rec.Index)
			if rec.Violations.IsEmpty() {
				if _, err := fmt.Fprintf(w, "%s: ok\n", label); err != nil {
					return err
				}
				continue
			}
			for _, v := range rec.Violations {
				if _, err := fmt.Fprintf(w, "%s: %s: %s\n", label, v.Field, v.Message); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

type jsonInput struct {
	Input   string       `json:"input"`
	Error   string       `json:"error,omitempty"`
	Records []jsonRecord `json:"records,omitempty"`
}

type jsonRecord struct {
	Index  int                        `json:"index"`
	Valid  bool                       `json:"valid"`
	Errors validator.ValidationErrors `json:"errors,omitempty"`
}

func writeJSON(w io.Writer, reports []report) error {
	out := make([]jsonInput, 0, len(reports))
	for _, r := range reports {
		in := jsonInput{Input: r.Input}
		if r.Err != nil {
			in.Error = r.Err.Error()
		}
		for _, rec := range r.Records {
			in.Records = append(in.Records, jsonRecord{
				Index:  rec.Index,
				Valid:  rec.Violations.IsEmpty(),
				Errors: rec.Violations,
			})
		}
		out = append(out, in)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
