package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/inkui/internal/config"
	"github.com/alexisbeaulieu97/inkui/internal/tui"
)

//go:embed default_showcase.yaml
var defaultShowcase []byte

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runProgram is swapped in tests.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type demoOptions struct {
	check bool
}

func newDemoCmd(app *appContext) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo [document]",
		Short: "Open the interactive widget showcase",
		Long: `Open every widget of a showcase document in one screen. Without a document
the built-in showcase is used. Tab moves between widgets, ctrl+t focuses the
toasts, ctrl+r runs a task with a promise toast and ctrl+c quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runDemo(cmd, app, path, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.check, "check", false, "Validate the document and print a summary instead of opening it")

	return cmd
}

func runDemo(cmd *cobra.Command, app *appContext, path string, opts *demoOptions) error {
	doc, err := loadShowcase(path)
	if err != nil {
		return newCommandError("open showcase", "loading the document", err, "Fix the fields listed above and try again.")
	}

	if opts.check {
		fmt.Fprintln(cmd.OutOrStdout(), summarizeDocument(doc))
		return nil
	}

	if !isTerminal() {
		return newCommandError("open showcase", "starting the terminal UI", errNotTerminal, "Run inkui demo in an interactive terminal, or pass --check.")
	}

	app.log.With("document", doc.Name).Info("opening showcase")
	model := tui.NewModel(doc, tui.Options{
		WeekStart:  app.settings.WeekStart,
		DateFormat: app.settings.DateFormat,
		Theme:      app.settings.Theme,
		Clock:      clock,
		Logger:     app.log,
	})
	if err := runProgram(model); err != nil {
		app.log.Error(err, "showcase exited with an error")
		return err
	}
	return nil
}

func loadShowcase(path string) (*config.Document, error) {
	if path == "" {
		return config.DecodeDocument("built-in showcase", defaultShowcase)
	}
	return config.ParseDocument(path)
}

func summarizeDocument(doc *config.Document) string {
	counts := make(map[string]int)
	for _, w := range doc.Widgets {
		counts[w.Type]++
	}
	var parts []string
	for _, kind := range []string{config.WidgetDatePicker, config.WidgetCombobox, config.WidgetAutocomplete, config.WidgetMultiSelect, config.WidgetProgress} {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}
	return fmt.Sprintf("%s: %d widgets (%s), %d toasts", doc.Name, len(doc.Widgets), strings.Join(parts, ", "), len(doc.Toasts))
}
