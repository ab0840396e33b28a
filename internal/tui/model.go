// Package tui runs the interactive showcase: every widget of a showcase document on one
// screen, with focus cycling, a toast stack and a status line of current values.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
	"github.com/alexisbeaulieu97/inkui/internal/config"
	"github.com/alexisbeaulieu97/inkui/internal/logger"
	"github.com/alexisbeaulieu97/inkui/internal/toast"
	tuitoast "github.com/alexisbeaulieu97/inkui/internal/tui/toast"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

// Options carries the preferences resolved from the command line. Document settings
// take precedence over them.
type Options struct {
	WeekStart  time.Weekday
	DateFormat string
	Theme      string
	Clock      calendar.Clock
	Logger     *logger.Logger
	// PromiseDelay is how long the demo promise toast takes to resolve.
	PromiseDelay time.Duration
}

// Model is the showcase program.
type Model struct {
	doc      *config.Document
	opts     Options
	theme    components.Theme
	fields   []*field
	focus    int
	provider *toast.Provider
	toasts   tuitoast.Model
	keys     KeyMap
	help     help.Model
	log      *logger.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	changes chan struct{}

	width    int
	height   int
	quitting bool
}

// NewModel builds the showcase for doc. The document's toasts are queued right away
// and armed by Init.
func NewModel(doc *config.Document, opts Options) Model {
	opts = resolveOptions(doc, opts)
	if opts.PromiseDelay <= 0 {
		opts.PromiseDelay = 2 * time.Second
	}
	log := opts.Logger.Component("showcase")
	theme := components.ThemeByName(opts.Theme)

	changes := make(chan struct{}, 1)
	provider := toast.NewProvider(toast.ProviderOptions{
		Logger: log,
		OnChange: func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		doc:      doc,
		opts:     opts,
		theme:    theme,
		provider: provider,
		toasts:   tuitoast.New(provider).WithTheme(theme),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
		changes:  changes,
	}
	for _, w := range doc.Widgets {
		m.fields = append(m.fields, newField(w, opts, theme, log))
	}
	for _, t := range doc.Toasts {
		provider.Create(toast.Options{
			Message:   t.Message,
			Type:      toast.Type(t.Type),
			Duration:  time.Duration(t.Duration),
			HideClose: !config.BoolOr(t.Closable, true),
		})
	}
	return m
}

// resolveOptions lets document settings override command line preferences.
func resolveOptions(doc *config.Document, opts Options) Options {
	if doc == nil {
		return opts
	}
	s := doc.Settings
	if day, ok := config.ParseWeekday(s.WeekStart); ok && s.WeekStart != "" {
		opts.WeekStart = day
	}
	if s.DateFormat != "" {
		opts.DateFormat = s.DateFormat
	}
	if s.Theme != "" {
		opts.Theme = s.Theme
	}
	return opts
}

// Init arms the startup toasts, focuses the first widget and starts listening for
// provider changes made off the event loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.toasts.Init(), m.listen()}
	if len(m.fields) > 0 {
		cmds = append(cmds, m.fields[0].focus())
	}
	return tea.Batch(cmds...)
}

// Focused returns the id of the focused widget.
func (m Model) Focused() string {
	if len(m.fields) == 0 {
		return ""
	}
	return m.fields[m.focus].id
}

// Values returns the current value of every widget by id.
func (m Model) Values() map[string]string {
	out := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		out[f.id] = f.value()
	}
	return out
}

// Provider exposes the toast provider.
func (m Model) Provider() *toast.Provider { return m.provider }

// IsQuitting reports whether the program is shutting down.
func (m Model) IsQuitting() bool { return m.quitting }

// listen waits for the provider to change and reports it to Update.
func (m Model) listen() tea.Cmd {
	ctx, changes := m.ctx, m.changes
	return func() tea.Msg {
		select {
		case <-changes:
			return tuitoast.ChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *Model) shutdown() {
	m.quitting = true
	for _, f := range m.fields {
		f.teardown()
	}
	m.cancel()
}
