package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"mercator-hq/tally/pkg/config"
	"mercator-hq/tally/pkg/gamerec/ast"
	recErrors "mercator-hq/tally/pkg/gamerec/errors"
	"mercator-hq/tally/pkg/gamerec/parser"
	"mercator-hq/tally/pkg/gamerec/validator"
	"mercator-hq/tally/pkg/history"
	"mercator-hq/tally/pkg/telemetry/logging"
	"mercator-hq/tally/pkg/telemetry/tracing"
)

// stdinSource is the argument that reads input from standard input.
const stdinSource = "-"

// sourceName is how an input appears in error locations and history.
func sourceName(path string) string {
	if path == stdinSource {
		return "<stdin>"
	}
	return path
}

// readInput returns the raw text of path, or of stdin for "-". Input over
// limit bytes fails with the same size error the parser reports.
func readInput(in io.Reader, path string, limit int64) ([]byte, error) {
	p := parser.NewParser().WithMaxInputSize(limit)
	if path != stdinSource {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &recErrors.Error{
				Type:     recErrors.ErrorTypeIO,
				Message:  fmt.Sprintf("Failed to access file: %v", err),
				Location: ast.Location{File: path},
				Err:      err,
			}
		}
		if err := p.CheckSize(info.Size(), path); err != nil {
			return nil, err
		}
		return os.ReadFile(path)
	}

	data, err := io.ReadAll(io.LimitReader(in, p.MaxInputSize()+1))
	if err != nil {
		return nil, err
	}
	if err := p.CheckSize(int64(len(data)), sourceName(path)); err != nil {
		return nil, err
	}
	return data, nil
}

// parseGames parses one input and records parse metrics.
func parseGames(ctx context.Context, in io.Reader, path string) ([]ast.Game, error) {
	cfg := config.MustGetConfig()
	p := parser.NewParser().WithMaxInputSize(cfg.Parser.MaxInputSize)
	ctx = logging.WithSource(ctx, sourceName(path))

	ctx, span := tracer.Start(ctx, "gamerec.parse", spanAttributes(ctx).Build())
	defer span.End()

	start := time.Now()
	var (
		games []ast.Game
		err   error
	)
	if path == stdinSource {
		var data []byte
		if data, err = readInput(in, path, p.MaxInputSize()); err == nil {
			games, err = p.ParseBytes(data, sourceName(path))
		}
	} else {
		games, err = p.Parse(path)
	}
	elapsed := time.Since(start)

	collector.RecordParse(elapsed, len(games), err)
	if err != nil {
		tracing.SetErrorAttributes(span, err, string(recErrors.TypeOf(err)))
		logger.DebugContext(ctx, "parse failed", "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int(tracing.AttrGames, len(games)))
	tracing.SetStatus(span, nil)
	logger.InfoContext(ctx, "parsed game records",
		"games", len(games),
		"duration_ms", elapsed.Milliseconds(),
	)
	return games, nil
}

// tally parses path and builds the aggregation report.
func tally(ctx context.Context, in io.Reader, path string) (*validator.Report, error) {
	ctx = logging.WithSource(ctx, sourceName(path))
	ctx, span := tracer.Start(ctx, "gamerec.validate", spanAttributes(ctx).Build())
	defer span.End()

	games, err := parseGames(ctx, in, path)
	if err != nil {
		tracing.SetStatus(span, err)
		return nil, err
	}

	report := validator.NewValidator().Report(games)
	collector.RecordReport(report)
	tracing.SetReportAttributes(span, report)
	tracing.SetStatus(span, nil)

	logger.InfoContext(ctx, "games tallied",
		"total", report.Total,
		"possible", report.Possible,
		"sum", report.Sum,
	)
	return report, nil
}

// spanAttributes carries the logging context fields onto a span.
func spanAttributes(ctx context.Context) *tracing.AttributeBuilder {
	return tracing.NewAttributeBuilder().
		WithRun(logging.GetRunID(ctx), logging.GetCommand(ctx)).
		WithSource(logging.GetSource(ctx))
}

// recordRun stores run in the history database. Recording is explicit, so
// it opens the database even when history is disabled in the config.
func recordRun(ctx context.Context, run *history.Run) error {
	store, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	if run.ID == "" {
		run.ID = logging.GetRunID(ctx)
	}

	ctx, span := tracer.Start(ctx, "history.record", spanAttributes(ctx).Build())
	defer span.End()
	if err := store.Record(ctx, run); err != nil {
		tracing.SetStatus(span, err)
		return fmt.Errorf("failed to record run: %w", err)
	}
	tracing.SetStatus(span, nil)

	logger.DebugContext(ctx, "run recorded", "id", run.ID)
	return nil
}

// reportRun builds the history entry for a sum over path.
func reportRun(command, path string, report *validator.Report, err error) *history.Run {
	run := &history.Run{
		Command: command,
		Source:  sourceName(path),
		Status:  history.StatusSuccess,
	}
	if err != nil {
		run.Status = history.StatusFailure
		run.Error = firstLine(err.Error())
		return run
	}
	run.Games = report.Total
	run.Possible = report.Possible
	run.Result = report.Sum
	return run
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
