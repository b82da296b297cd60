package tracing

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"mercator-hq/tally/pkg/gamerec/validator"
)

// Attribute keys set on tally spans.
const (
	AttrRunID   = "tally.run_id"
	AttrCommand = "tally.command"
	AttrSource  = "tally.source"

	AttrGames         = "tally.games"
	AttrGamesPossible = "tally.games.possible"
	AttrViolations    = "tally.violations"
	AttrSum           = "tally.sum"

	AttrCalibrationMode  = "tally.calibration.mode"
	AttrCalibrationLines = "tally.calibration.lines"

	AttrErrorType = "tally.error.type"
)

// SetReportAttributes records the outcome of an aggregation run.
func SetReportAttributes(span trace.Span, report *validator.Report) {
	if report == nil {
		return
	}
	span.SetAttributes(
		attribute.Int(AttrGames, report.Total),
		attribute.Int(AttrGamesPossible, report.Possible),
		attribute.Int(AttrViolations, len(report.Violations())),
		attribute.Int(AttrSum, report.Sum),
	)
}

// SetCalibrationAttributes records the outcome of a calibration scan.
func SetCalibrationAttributes(span trace.Span, mode string, lines, sum int) {
	span.SetAttributes(
		attribute.String(AttrCalibrationMode, mode),
		attribute.Int(AttrCalibrationLines, lines),
		attribute.Int(AttrSum, sum),
	)
}

// SetErrorAttributes marks span failed with err, tagged with errorType.
func SetErrorAttributes(span trace.Span, err error, errorType string) {
	if err == nil {
		return
	}
	if errorType != "" {
		span.SetAttributes(attribute.String(AttrErrorType, errorType))
	}
	SetStatus(span, err)
}

// AttributeBuilder collects span start attributes.
type AttributeBuilder struct {
	attrs []attribute.KeyValue
}

// NewAttributeBuilder creates an empty builder.
func NewAttributeBuilder() *AttributeBuilder {
	return &AttributeBuilder{}
}

// WithRun adds the run ID and command name, skipping empty values.
func (ab *AttributeBuilder) WithRun(runID, command string) *AttributeBuilder {
	if runID != "" {
		ab.attrs = append(ab.attrs, attribute.String(AttrRunID, runID))
	}
	if command != "" {
		ab.attrs = append(ab.attrs, attribute.String(AttrCommand, command))
	}
	return ab
}

// WithSource adds the input name.
func (ab *AttributeBuilder) WithSource(source string) *AttributeBuilder {
	if source != "" {
		ab.attrs = append(ab.attrs, attribute.String(AttrSource, source))
	}
	return ab
}

// WithCustom adds an attribute of any type. Unsupported types are
// formatted with %v.
func (ab *AttributeBuilder) WithCustom(key string, value any) *AttributeBuilder {
	switch v := value.(type) {
	case string:
		ab.attrs = append(ab.attrs, attribute.String(key, v))
	case int:
		ab.attrs = append(ab.attrs, attribute.Int(key, v))
	case int64:
		ab.attrs = append(ab.attrs, attribute.Int64(key, v))
	case float64:
		ab.attrs = append(ab.attrs, attribute.Float64(key, v))
	case bool:
		ab.attrs = append(ab.attrs, attribute.Bool(key, v))
	default:
		ab.attrs = append(ab.attrs, attribute.String(key, fmt.Sprintf("%v", v)))
	}
	return ab
}

// Build returns the attributes as a span start option.
func (ab *AttributeBuilder) Build() trace.SpanStartOption {
	return trace.WithAttributes(ab.attrs...)
}

// Attributes returns the collected attributes.
func (ab *AttributeBuilder) Attributes() []attribute.KeyValue {
	return ab.attrs
}
