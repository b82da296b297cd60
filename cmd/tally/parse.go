package main

import (
	"github.com/spf13/cobra"

	"mercator-hq/tally/pkg/cli"
	"mercator-hq/tally/pkg/config"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse game records and print them",
	Long: `Parse a file of game records and print the parsed games.

Text output is the canonical form of each record, one per line:
counts appear in red, green, blue order and zero counts are omitted.
Use "-" to read from standard input.

Examples:
  # Print the canonical form of every record
  tally parse games.txt

  # Print the parsed structure as JSON
  tally parse games.txt --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format (text, json, yaml, csv, xlsx)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(parseFormat)
	if err != nil {
		return err
	}

	path := args[0]
	games, err := parseGames(cmd.Context(), cmd.InOrStdin(), path)
	if err != nil {
		return cli.NewCommandError("parse", err)
	}

	view := gamesView{Source: sourceName(path), Games: games}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), view)
}

// outputFormat resolves a --format flag, falling back to the configured
// default when the flag is empty.
func outputFormat(flag string) (cli.OutputFormat, error) {
	if flag == "" {
		flag = config.MustGetConfig().Output.Format
	}
	return cli.ParseOutputFormat(flag)
}
