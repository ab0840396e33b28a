package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
	"github.com/alexisbeaulieu97/inkui/internal/logger"
	"github.com/alexisbeaulieu97/inkui/internal/settings"
)

// clock is swapped in tests.
var clock = calendar.SystemClock

// appContext bundles what every command needs once flags are parsed.
type appContext struct {
	verbose  bool
	settings settings.Settings
	log      *logger.Logger
}

func (a *appContext) load(cmd *cobra.Command) error {
	s, err := settings.Load(cmd.Flags())
	if err != nil {
		return newCommandError("load settings", "reading flags, INKUI_* variables and .inkui.yaml", err,
			"Check the value named in the error; see 'inkui --help' for accepted values.")
	}

	level := s.LogLevel
	if a.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !s.LogJSON,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("create logger", "configuring log output", err, "Use one of debug, info, warn or error.")
	}

	a.settings = s
	a.log = log.Component("command." + cmd.Name())
	if s.ConfigFile != "" {
		a.log.With("file", s.ConfigFile).Debug("settings file loaded")
	}
	return nil
}
