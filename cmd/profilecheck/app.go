package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/userprofile/pkg/config"
	"github.com/dmitrymomot/userprofile/pkg/environment"
	"github.com/dmitrymomot/userprofile/pkg/logger"
)

const (
	exitOK         = 0
	exitViolations = 1
	exitUsage      = 2
)

// errViolations marks a run that completed but found invalid records.
var errViolations = errors.New("one or more records are invalid")

// Config is read from the environment (and ./.env when present).
type Config struct {
	Env       environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel  string                  `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string                  `env:"LOG_FORMAT" envDefault:"text"`
	Lang      string                  `env:"PROFILECHECK_LANG" envDefault:"en"`
	Workers   int                     `env:"PROFILECHECK_WORKERS" envDefault:"4"`
}

type inputKey struct{}

type app struct {
	cfg    Config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, "profilecheck:", err)
		return exitUsage
	}
	return execute(ctx, cfg, args, stdin, stdout, stderr)
}

// execute runs the command tree with an already loaded configuration and
// maps the outcome to an exit status.
func execute(ctx context.Context, cfg Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "profilecheck:", err)
		return exitUsage
	}

	a := &app{cfg: cfg, log: log, stdin: stdin, stdout: stdout}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err = root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errViolations):
		return exitViolations
	default:
		fmt.Fprintln(stderr, "profilecheck:", err)
		return exitUsage
	}
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithEnvironment(cfg.Env, "profilecheck"),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithContextValue("input", inputKey{}),
	), nil
}
