package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
)

// execute runs the root command with args against a clock fixed on 2024-03-20.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	original := clock
	clock = calendar.FixedClock(time.Date(2024, time.March, 20, 9, 0, 0, 0, time.Local))
	t.Cleanup(func() { clock = original })
	t.Setenv("INKUI_CONFIG_PATH", t.TempDir())

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", writeSettings(t)}, args...))
	err := root.Execute()
	return out.String(), err
}

// writeSettings pins the settings so a stray .inkui.yaml cannot leak into a test.
func writeSettings(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("week_start: sunday\ntheme: dark\nlog_level: error\n"), 0o600))
	return path
}

func writeDocument(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}
