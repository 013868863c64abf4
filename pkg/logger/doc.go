// Package logger builds *slog.Logger values from functional options and
// injects values stored in context.Context into every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks before delegating.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "profilecheck"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextValue("input", inputKey{}),
//	)
//	log.InfoContext(ctx, "record validated", logger.Count("violations", n))
//
// # Configuration
//
//   - WithEnvironment: debug text logs in development, info JSON elsewhere.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel: minimum slog.Level. ParseLevel and ParseFormat read both
//     from configuration strings.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes from context.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
