// Package logging provides structured logging for tally.
//
// The package wraps log/slog with a small Logger type that is configured
// from the logging section of the configuration file and that knows how to
// pull run-scoped fields out of a context.Context.
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	ctx := logging.WithRunID(ctx, logging.NewRunID())
//	ctx = logging.WithSource(ctx, "games.txt")
//	logger.InfoContext(ctx, "parsed records", "games", 5)
//
// # Formats
//
//   - text: logfmt-style key=value pairs (default)
//   - json: one JSON object per line
//   - console: like text, without timestamps
//
// Logs are written to stderr unless Config.Writer says otherwise, so they
// never mix with command results on stdout.
package logging
