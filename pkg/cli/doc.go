/*
Package cli provides command-line interface utilities for tally.

Output Formatting:

Command results can be rendered as text, JSON, YAML, CSV or an XLSX workbook:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Values implementing TextWriter control their own text rendering; CSV and XLSX output
require the Tabular interface.

Errors:

CommandError and ConfigError give command failures a consistent shape, and
PrintError writes them for a human reader:

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
