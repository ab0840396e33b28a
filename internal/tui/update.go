package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkui/internal/toast"
	tuitoast "github.com/alexisbeaulieu97/inkui/internal/tui/toast"
)

// promiseDoneMsg reports the end of the demo task.
type promiseDoneMsg struct {
	result string
	err    error
}

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tuitoast.ChangedMsg:
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.Update(msg)
		return m, tea.Batch(cmd, m.listen())

	case tuitoast.ExpireMsg:
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.Update(msg)
		return m, cmd

	case promiseDoneMsg:
		if msg.err != nil {
			m.log.Error(msg.err, "demo task failed")
		} else {
			m.log.With("result", msg.result).Debug("demo task finished")
		}
		return m, m.toasts.Sync()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.broadcast(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keys.Toasts):
		if m.toasts.Focused() {
			m.toasts.Blur()
			if len(m.fields) > 0 {
				return m, m.fields[m.focus].focus()
			}
			return m, nil
		}
		if len(m.fields) > 0 {
			m.fields[m.focus].blur()
		}
		m.toasts.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Promise):
		return m, runPromise(m.ctx, m.provider, m.opts.PromiseDelay)
	}

	if m.toasts.Focused() {
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.Update(msg)
		return m, cmd
	}
	if len(m.fields) == 0 {
		return m, nil
	}
	return m, m.fields[m.focus].update(msg)
}

// moveFocus blurs the current widget, which commits pending input, and focuses the
// next one in document order, wrapping at both ends.
func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.fields)
	if n == 0 {
		return nil
	}
	m.toasts.Blur()
	m.fields[m.focus].blur()
	m.focus = ((m.focus+delta)%n + n) % n
	return m.fields[m.focus].focus()
}

// broadcast hands non-key messages to every widget and the toast stack. Widgets
// ignore deferred work and ticks that are not theirs.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.fields)+1)
	for _, f := range m.fields {
		cmds = append(cmds, f.update(msg))
	}
	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Update(msg)
	return tea.Batch(append(cmds, cmd)...)
}

func runPromise(ctx context.Context, p *toast.Provider, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		result, err := toast.Promise(ctx, p, func(ctx context.Context) (string, error) {
			select {
			case <-time.After(delay):
				return "report.pdf", nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}, toast.PromiseOptions[string]{
			Loading: "Generating report…",
			Success: func(name string) string { return fmt.Sprintf("Saved <b>%s</b>", name) },
			Error:   func(err error) string { return fmt.Sprintf("Report failed: %v", err) },
		})
		return promiseDoneMsg{result: result, err: err}
	}
}
