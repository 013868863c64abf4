// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - Load parses the environment into a struct annotated with env tags and
//     caches the result per type; MustLoad panics instead of returning.
//   - LoadEnv preloads one or more .env files; Load always tries ./.env once.
//   - Parse reads from an explicit map and skips the cache, which keeps tests
//     independent of the process environment.
//   - ResetCache clears cached values.
//
// Usage:
//
//	type Config struct {
//	    Env     environment.Environment `env:"APP_ENV" envDefault:"development"`
//	    Workers int                     `env:"PROFILECHECK_WORKERS" envDefault:"4"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Errors wrap ErrParsingConfig (via errors.Join) and can be tested with
// errors.Is. A nil destination yields ErrNilPointer.
package config
