package main

import (
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/tally/pkg/calibration"
	"mercator-hq/tally/pkg/cli"
	"mercator-hq/tally/pkg/config"
	"mercator-hq/tally/pkg/history"
	"mercator-hq/tally/pkg/telemetry/logging"
	"mercator-hq/tally/pkg/telemetry/tracing"
)

var (
	calibrateFormat  string
	calibrateSpelled bool
	calibrateRecord  bool
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate FILE",
	Short: "Sum the calibration values of a document",
	Long: `Scan every line of a document for its first and last digit and sum the
two-digit values they form. A line with a single digit uses it twice.

With --spelled, the words "one" through "nine" count as digits too, and
they may overlap ("eightwo" is 8 then 2).

Examples:
  tally calibrate document.txt
  tally calibrate document.txt --spelled`,
	Args: cobra.ExactArgs(1),
	RunE: runCalibrate,
}

func init() {
	rootCmd.AddCommand(calibrateCmd)
	calibrateCmd.Flags().StringVarP(&calibrateFormat, "format", "f", "", "output format (text, json, yaml, csv, xlsx)")
	calibrateCmd.Flags().BoolVar(&calibrateSpelled, "spelled", false, "also recognize spelled-out digits")
	calibrateCmd.Flags().BoolVar(&calibrateRecord, "record", false, "record the run in the history database")
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(calibrateFormat)
	if err != nil {
		return err
	}

	mode := calibration.DigitsOnly
	if calibrateSpelled {
		mode = calibration.SpelledDigits
	}

	ctx := cmd.Context()
	path := args[0]
	ctx = logging.WithSource(ctx, sourceName(path))

	data, err := readInput(cmd.InOrStdin(), path, config.MustGetConfig().Parser.MaxInputSize)
	if err != nil {
		return cli.NewCommandError("calibrate", err)
	}
	text := string(data)
	lines := countLines(text)

	ctx, span := tracer.Start(ctx, "calibration.sum", spanAttributes(ctx).Build())
	sum, sumErr := calibration.Sum(text, mode)
	collector.RecordCalibration(mode.String(), lines, sumErr)
	tracing.SetCalibrationAttributes(span, mode.String(), lines, sum)
	tracing.SetErrorAttributes(span, sumErr, "calibration")
	if sumErr == nil {
		tracing.SetStatus(span, nil)
	}
	span.End()

	if calibrateRecord {
		run := &history.Run{
			Command: "calibrate",
			Source:  sourceName(path),
			Games:   lines,
			Result:  sum,
			Status:  history.StatusSuccess,
		}
		if sumErr != nil {
			run.Status = history.StatusFailure
			run.Error = sumErr.Error()
		}
		if err := recordRun(ctx, run); err != nil && sumErr == nil {
			return cli.NewCommandError("calibrate", err)
		}
	}

	if sumErr != nil {
		return cli.NewCommandError("calibrate", sumErr)
	}

	logger.InfoContext(ctx, "calibration summed", "mode", mode.String(), "lines", lines, "sum", sum)

	view := calibrationView{Source: sourceName(path), Mode: mode.String(), Lines: lines, Sum: sum}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), view)
}

// countLines counts the non-empty lines of text.
func countLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimRight(line, "\r") != "" {
			n++
		}
	}
	return n
}
