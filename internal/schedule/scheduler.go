// Package schedule defers widget work until after the next render of a Bubble Tea
// program. Deferred work is owned by a Scheduler and is dropped when the owning widget
// is torn down.
package schedule

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkui/internal/ids"
)

// TaskID identifies a deferred task within its scheduler.
type TaskID uint64

// Task is deferred work. It may return a command to run next.
type Task func() tea.Cmd

// RunMsg is delivered through the event loop when a deferred task is due.
type RunMsg struct {
	Owner string
	ID    TaskID
}

// Scheduler tracks pending after-render tasks for one widget.
type Scheduler struct {
	mu      sync.Mutex
	owner   string
	next    TaskID
	pending map[TaskID]Task
	closed  bool
}

// New creates a scheduler with a process-unique owner id.
func New() *Scheduler {
	return &Scheduler{
		owner:   ids.New("schedule"),
		pending: make(map[TaskID]Task),
	}
}

// Owner returns the id stamped on this scheduler's messages.
func (s *Scheduler) Owner() string {
	return s.owner
}

// AfterRender registers task and returns the command that delivers it back to the
// widget's Update on the next turn of the event loop, after the current view has been
// rendered. A torn-down scheduler returns a nil command.
func (s *Scheduler) AfterRender(task Task) (TaskID, tea.Cmd) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || task == nil {
		return 0, nil
	}
	s.next++
	id := s.next
	s.pending[id] = task
	owner := s.owner
	return id, func() tea.Msg {
		return RunMsg{Owner: owner, ID: id}
	}
}

// Handle runs the task addressed by msg. The boolean reports whether msg belonged to
// this scheduler; cancelled or already-run tasks are consumed without running.
func (s *Scheduler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	run, ok := msg.(RunMsg)
	if !ok || run.Owner != s.owner {
		return nil, false
	}

	s.mu.Lock()
	task, found := s.pending[run.ID]
	delete(s.pending, run.ID)
	closed := s.closed
	s.mu.Unlock()

	if !found || closed {
		return nil, true
	}
	return task(), true
}

// Cancel drops a pending task.
func (s *Scheduler) Cancel(id TaskID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, id)
}

// Pending reports how many tasks are waiting.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Teardown drops every pending task and refuses new ones.
func (s *Scheduler) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	clear(s.pending)
}

// Closed reports whether Teardown has been called.
func (s *Scheduler) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
