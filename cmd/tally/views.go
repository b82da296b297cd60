package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"mercator-hq/tally/pkg/gamerec/ast"
	"mercator-hq/tally/pkg/gamerec/validator"
	"mercator-hq/tally/pkg/history"
)

// gamesView is the result of `tally parse`.
type gamesView struct {
	Source string     `json:"source" yaml:"source"`
	Games  []ast.Game `json:"games" yaml:"games"`
}

func (v gamesView) WriteText(w io.Writer) error {
	for _, g := range v.Games {
		if _, err := fmt.Fprintln(w, g.String()); err != nil {
			return err
		}
	}
	return nil
}

func (v gamesView) Header() []string {
	return []string{"game", "round", "red", "green", "blue"}
}

func (v gamesView) Rows() [][]string {
	var rows [][]string
	for _, g := range v.Games {
		for i, r := range g.Rounds {
			rows = append(rows, []string{
				strconv.Itoa(g.ID), strconv.Itoa(i + 1),
				strconv.Itoa(r.Red), strconv.Itoa(r.Green), strconv.Itoa(r.Blue),
			})
		}
	}
	return rows
}

// sumView is the result of `tally sum`. Report is only set with --report.
type sumView struct {
	Source string            `json:"source" yaml:"source"`
	Sum    int               `json:"sum" yaml:"sum"`
	Report *validator.Report `json:"report,omitempty" yaml:"report,omitempty"`
}

func (v sumView) WriteText(w io.Writer) error {
	if v.Report == nil {
		_, err := fmt.Fprintln(w, v.Sum)
		return err
	}

	for _, g := range v.Report.Games {
		if g.Possible {
			fmt.Fprintf(w, "Game %d: possible (max %s)\n", g.ID, maxText(g.Max))
			continue
		}
		fmt.Fprintf(w, "Game %d: impossible\n", g.ID)
		for _, violation := range g.Violations {
			fmt.Fprintf(w, "  round %d: %d %s exceeds limit %d\n",
				violation.Round, violation.Count, violation.Color, violation.Limit)
		}
	}
	_, err := fmt.Fprintf(w, "\n%d of %d games possible\nSum: %d\n",
		v.Report.Possible, v.Report.Total, v.Sum)
	return err
}

func (v sumView) Header() []string {
	if v.Report == nil {
		return []string{"source", "sum"}
	}
	return []string{"game", "rounds", "possible", "max_red", "max_green", "max_blue", "violations"}
}

func (v sumView) Rows() [][]string {
	if v.Report == nil {
		return [][]string{{v.Source, strconv.Itoa(v.Sum)}}
	}

	rows := make([][]string, 0, len(v.Report.Games))
	for _, g := range v.Report.Games {
		rows = append(rows, []string{
			strconv.Itoa(g.ID),
			strconv.Itoa(g.Rounds),
			strconv.FormatBool(g.Possible),
			strconv.Itoa(g.Max.Red),
			strconv.Itoa(g.Max.Green),
			strconv.Itoa(g.Max.Blue),
			strconv.Itoa(len(g.Violations)),
		})
	}
	return rows
}

// maxText renders per-color maxima, including zeros.
func maxText(r ast.Round) string {
	parts := make([]string, len(ast.Colors))
	for i, c := range ast.Colors {
		parts[i] = fmt.Sprintf("%d %s", r.Count(c), c)
	}
	return strings.Join(parts, ", ")
}

// calibrationView is the result of `tally calibrate`.
type calibrationView struct {
	Source string `json:"source" yaml:"source"`
	Mode   string `json:"mode" yaml:"mode"`
	Lines  int    `json:"lines" yaml:"lines"`
	Sum    int    `json:"sum" yaml:"sum"`
}

func (v calibrationView) WriteText(w io.Writer) error {
	_, err := fmt.Fprintln(w, v.Sum)
	return err
}

func (v calibrationView) Header() []string {
	return []string{"source", "mode", "lines", "sum"}
}

func (v calibrationView) Rows() [][]string {
	return [][]string{{v.Source, v.Mode, strconv.Itoa(v.Lines), strconv.Itoa(v.Sum)}}
}

// runsView is the result of `tally history list`.
type runsView struct {
	Runs []*history.Run `json:"runs" yaml:"runs"`
}

func (v runsView) WriteText(w io.Writer) error {
	if len(v.Runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tCOMMAND\tSOURCE\tSTATUS\tRESULT")
	for _, r := range v.Runs {
		result := strconv.Itoa(r.Result)
		if r.Status == history.StatusFailure {
			result = r.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(r.ID), r.CreatedAt.Local().Format(time.DateTime), r.Command, r.Source, r.Status, result)
	}
	return tw.Flush()
}

func (v runsView) Header() []string {
	return []string{"id", "created_at", "command", "source", "games", "possible", "result", "status", "error"}
}

func (v runsView) Rows() [][]string {
	rows := make([][]string, 0, len(v.Runs))
	for _, r := range v.Runs {
		rows = append(rows, []string{
			r.ID,
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.Command,
			r.Source,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Possible),
			strconv.Itoa(r.Result),
			string(r.Status),
			r.Error,
		})
	}
	return rows
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
