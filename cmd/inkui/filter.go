package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkui/internal/config"
	"github.com/alexisbeaulieu97/inkui/internal/options"
)

type filterOptions struct {
	jsonOutput bool
}

func newFilterCmd(app *appContext) *cobra.Command {
	opts := &filterOptions{}

	cmd := &cobra.Command{
		Use:   "filter <document> <widget-id> [query]",
		Short: "Show which options a selection widget lists for a query",
		Long: `Load a showcase document, take the option list of one combobox,
autocomplete or multiselect, and print the groups and options that match the query
as the dropdown would show them.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 3 {
				query = args[2]
			}
			return runFilter(cmd, app, args[0], args[1], query, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output matches in JSON format")

	return cmd
}

func runFilter(cmd *cobra.Command, app *appContext, path, widgetID, query string, opts *filterOptions) error {
	doc, err := config.ParseDocument(path)
	if err != nil {
		return newCommandError("filter options", fmt.Sprintf("loading %s", path), err, "Run 'inkui demo --check <document>' to see every problem.")
	}

	var widget *config.Widget
	for i := range doc.Widgets {
		if doc.Widgets[i].ID == widgetID {
			widget = &doc.Widgets[i]
			break
		}
	}
	if widget == nil {
		return newCommandError("filter options", fmt.Sprintf("finding widget %q", widgetID), fmt.Errorf("no widget with id %q", widgetID), "Use the id of a widget declared in the document.")
	}
	if !widget.IsSelection() {
		return newCommandError("filter options", fmt.Sprintf("reading widget %q", widgetID), fmt.Errorf("%s widgets have no options", widget.Type), "Pick a combobox, autocomplete or multiselect.")
	}

	set := options.Normalize(widget.Options.Items(), query)
	app.log.WithFields(map[string]any{"widget": widgetID, "query": query, "matches": len(set.Visible)}).Debug("options filtered")

	if opts.jsonOutput {
		return renderFilterJSON(cmd.OutOrStdout(), set)
	}
	renderFilterText(cmd.OutOrStdout(), set)
	return nil
}

func renderFilterText(w io.Writer, set options.Set) {
	if len(set.Visible) == 0 {
		if set.Query == "" {
			fmt.Fprintln(w, "No options")
			return
		}
		fmt.Fprintf(w, "No results found for %q\n", set.Query)
		return
	}
	for _, group := range set.Groups {
		indent := ""
		if group.Label != "" && !group.HideLabel {
			fmt.Fprintf(w, "%s\n", group.Label)
			indent = "  "
		}
		for _, o := range group.Options {
			line := indent + o.Label
			if o.Value.String() != o.Label {
				line += fmt.Sprintf(" (%s)", o.Value)
			}
			if o.Disabled {
				line += " [disabled]"
			}
			fmt.Fprintln(w, line)
		}
	}
}

type filterGroup struct {
	Label   string        `json:"label,omitempty"`
	Hidden  bool          `json:"hide_label,omitempty"`
	Options []filterEntry `json:"options"`
}

type filterEntry struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

func renderFilterJSON(w io.Writer, set options.Set) error {
	groups := make([]filterGroup, 0, len(set.Groups))
	for _, g := range set.Groups {
		entries := make([]filterEntry, 0, len(g.Options))
		for _, o := range g.Options {
			entries = append(entries, filterEntry{Label: o.Label, Value: o.Value.String(), Description: o.Description, Disabled: o.Disabled})
		}
		groups = append(groups, filterGroup{Label: g.Label, Hidden: g.HideLabel, Options: entries})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{"query": set.Query, "groups": groups})
}
