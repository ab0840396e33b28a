package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "datepicker"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"value": "2024-03-15", "view": "month"})
	log.Info("date committed")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "date committed", entries[0]["message"])
	require.Equal(t, "datepicker", entries[0]["component"])
	require.Equal(t, "2024-03-15", entries[0]["value"])
	require.Equal(t, "month", entries[0]["view"])
	require.Equal(t, "info", entries[0]["level"])
	require.Contains(t, entries[0], "time")
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.False(t, log.DebugEnabled())
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf, NoTimestamp: true})
	require.NoError(t, err)

	log.With("toast", "toast-3").Error(errors.New("boom"), "promise failed")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "promise failed", entries[0]["message"])
	require.Equal(t, "toast-3", entries[0]["toast"])
	require.Equal(t, "boom", entries[0]["error"])
	require.NotContains(t, entries[0], "time")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", HumanReadable: true, Writer: buf, NoTimestamp: true, NoColor: true})
	require.NoError(t, err)

	log.Component("combobox").Warn("options replaced")
	out := buf.String()
	require.Contains(t, out, "options replaced")
	require.Contains(t, out, "component=combobox")
}

func TestNilAndNopLoggersAreSilent(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.WithFields(map[string]any{"a": 1}).Debug("x")
		nilLogger.With("a", 1).Info("x")
		nilLogger.Warn("x")
		nilLogger.Error(errors.New("x"), "x")
	})
	require.False(t, nilLogger.DebugEnabled())

	require.NotPanics(t, func() {
		Nop().Component("x").Error(nil, "nothing")
	})
}
