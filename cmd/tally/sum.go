package main

import (
	"github.com/spf13/cobra"

	"mercator-hq/tally/pkg/cli"
)

var (
	sumFormat string
	sumReport bool
	sumRecord bool
)

var sumCmd = &cobra.Command{
	Use:   "sum FILE",
	Short: "Sum the IDs of the possible games",
	Long: `Parse a file of game records and print the sum of the IDs of every
game whose rounds all stay within 12 red, 13 green and 14 blue.

Any malformed record fails the whole run; nothing is summed.
Use "-" to read from standard input.

Examples:
  # Print the sum
  tally sum games.txt

  # Show why each game is possible or not
  tally sum games.txt --report

  # Store the result in the run history
  tally sum games.txt --record`,
	Args: cobra.ExactArgs(1),
	RunE: runSum,
}

func init() {
	rootCmd.AddCommand(sumCmd)
	sumCmd.Flags().StringVarP(&sumFormat, "format", "f", "", "output format (text, json, yaml, csv, xlsx)")
	sumCmd.Flags().BoolVar(&sumReport, "report", false, "include the per-game breakdown")
	sumCmd.Flags().BoolVar(&sumRecord, "record", false, "record the run in the history database")
}

func runSum(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(sumFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	path := args[0]
	report, tallyErr := tally(ctx, cmd.InOrStdin(), path)

	if sumRecord {
		run := reportRun("sum", path, report, tallyErr)
		if err := recordRun(ctx, run); err != nil {
			if tallyErr == nil {
				return cli.NewCommandError("sum", err)
			}
			logger.WarnContext(ctx, "failed to record failed run", "error", err)
		}
	}

	if tallyErr != nil {
		return cli.NewCommandError("sum", tallyErr)
	}

	view := sumView{Source: sourceName(path), Sum: report.Sum}
	if sumReport {
		view.Report = report
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), view)
}
