package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/userprofile/pkg/i18n"
	"github.com/dmitrymomot/userprofile/pkg/logger"
	"github.com/dmitrymomot/userprofile/pkg/profile"
)

const (
	flagFormat = "format"
	flagLang   = "lang"
	flagOutput = "output"
)

func newValidateCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate user profile records",
		Long: `Validate user profile records from JSON or YAML files.

Each input may hold one record, a list of records, or several JSON values /
YAML documents. With no arguments, or "-", records are read from stdin.`,
		RunE: a.runValidate,
	}
	c.Flags().StringP(flagFormat, "f", "", "Input format: json, yaml (default: by file extension)")
	c.Flags().StringP(flagLang, "l", a.cfg.Lang, "Language for violation messages")
	c.Flags().StringP(flagOutput, "o", outputText, "Output format: text, json")
	return c
}

func (a *app) runValidate(c *cobra.Command, args []string) error {
	ctx := c.Context()

	format, _ := c.Flags().GetString(flagFormat)
	lang, _ := c.Flags().GetString(flagLang)
	output, _ := c.Flags().GetString(flagOutput)

	if format != "" {
		if _, err := normalizeFormat(format); err != nil {
			return err
		}
	}
	output = strings.ToLower(output)
	if output != outputText && output != outputJSON {
		return fmt.Errorf("invalid output format %q: must be %s or %s", output, outputText, outputJSON)
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}
	if countStdin(inputs) > 1 {
		return errors.New("stdin (-) can only be read once")
	}

	tr, err := profile.NewTranslator(ctx, i18n.WithLogger(a.log.With(logger.Component("i18n"))))
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	lang = tr.Match(lang)

	reports := a.checkAll(ctx, inputs, format)
	for i := range reports {
		for j := range reports[i].Records {
			rec := &reports[i].Records[j]
			rec.Violations = tr.Localize(lang, rec.Violations)
		}
	}

	w := c.OutOrStdout()
	if output == outputJSON {
		err = writeJSON(w, reports)
	} else {
		err = writeText(w, reports)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	failed, invalid := summarize(reports)
	a.log.InfoContext(ctx, "validation finished",
		logger.Count("inputs", len(inputs)),
		logger.Count("failed", failed),
		logger.Count("invalid", invalid),
	)

	switch {
	case failed > 0:
		return fmt.Errorf("%d of %d inputs could not be read", failed, len(inputs))
	case invalid > 0:
		return errViolations
	default:
		return nil
	}
}

// checkAll validates the inputs concurrently, bounded by cfg.Workers.
// Reports keep the order of inputs.
func (a *app) checkAll(ctx context.Context, inputs []string, format string) []report {
	reports := make([]report, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.cfg.Workers, 1))
	for i, name := range inputs {
		g.Go(func() error {
			reports[i] = a.check(ctx, name, format)
			return nil
		})
	}
	_ = g.Wait()

	return reports
}

func (a *app) check(ctx context.Context, name, format string) report {
	ctx = context.WithValue(ctx, inputKey{}, name)
	start := time.Now()
	r := report{Input: name}

	if err := ctx.Err(); err != nil {
		r.Err = err
		return r
	}

	records, err := a.readRecords(name, format)
	if err != nil {
		a.log.ErrorContext(ctx, "cannot read records", logger.Error(err))
		r.Err = err
		return r
	}

	r.Records = make([]recordResult, len(records))
	for i, rec := range records {
		r.Records[i] = recordResult{Index: i, Violations: profile.Violations(rec)}
	}

	a.log.DebugContext(ctx, "input checked",
		logger.Count("records", len(records)),
		logger.Count("invalid", r.invalid()),
		logger.Duration(time.Since(start)),
	)
	return r
}

func (a *app) readRecords(name, override string) ([]profile.UserRecord, error) {
	format, err := resolveFormat(name, override)
	if err != nil {
		return nil, err
	}

	var src io.Reader = a.stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	return decodeRecords(src, format)
}

func countStdin(inputs []string) int {
	n := 0
	for _, in := range inputs {
		if in == stdinName {
			n++
		}
	}
	return n
}
