package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	cerrors "cloudeng.io/errors"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
)

type parseOptions struct {
	format     string
	jsonOutput bool
}

func newParseCmd(app *appContext) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <input>...",
		Short: "Coerce free-form dates the way the date picker does",
		Long: `Parse each input with the date picker's coercion rules: the preferred
format first, then ISO keys, common numeric layouts and month names. Prints the
canonical YYYY-MM-DD value and the display text. Exits non-zero if any input fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, app, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "Preferred input and display format; defaults to the date_format setting")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results in JSON format")

	return cmd
}

type parseResult struct {
	Input   string `json:"input"`
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, app *appContext, inputs []string, opts *parseOptions) error {
	format := opts.format
	if format == "" {
		format = app.settings.DateFormat
	}

	var errs cerrors.M
	results := make([]parseResult, 0, len(inputs))
	for _, input := range inputs {
		d, err := calendar.Coerce(input, format)
		if err != nil {
			errs.Append(err)
			results = append(results, parseResult{Input: input, Error: err.Error()})
			app.log.With("input", input).Debug("input rejected")
			continue
		}
		results = append(results, parseResult{Input: input, Value: d.Key(), Display: calendar.Format(d, format)})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		renderParseTable(cmd.OutOrStdout(), results)
	}

	if err := errs.Err(); err != nil {
		return newCommandError("parse dates", fmt.Sprintf("%d of %d inputs were not dates", len(errs.Unwrap()), len(inputs)), err,
			"Try YYYY-MM-DD, the configured format, or a form such as 'March 5 2024'.")
	}
	return nil
}

func renderParseTable(w io.Writer, results []parseResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tVALUE\tDISPLAY")
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\t-\tinvalid\n", r.Input)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Input, r.Value, r.Display)
	}
	tw.Flush()
}
