package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkui/internal/settings"
)

func newRootCmd() *cobra.Command {
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "inkui",
		Short:         "Terminal date pickers, comboboxes, autocompletes and toasts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	settings.RegisterFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newCalendarCmd(app))
	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newFilterCmd(app))
	cmd.AddCommand(newDemoCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
