// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg is delivered when a scheduled callback is due.
type timerMsg struct {
	id uint64
}

// teaScheduler implements loop.Scheduler on top of tea.Tick. Callbacks run
// inside Update, on the same goroutine as key handling.
type teaScheduler struct {
	nextID    uint64
	callbacks map[uint64]func()
	pending   []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{callbacks: make(map[uint64]func())}
}

// After queues a tick command that fires fn once delay has passed. The
// command is handed to Bubble Tea on the next flush.
func (s *teaScheduler) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	id := s.nextID
	s.callbacks[id] = fn
	s.pending = append(s.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}

// fire runs the callback for id. Unknown ids are ignored.
func (s *teaScheduler) fire(id uint64) bool {
	fn, ok := s.callbacks[id]
	if !ok {
		return false
	}
	delete(s.callbacks, id)
	fn()
	return true
}

// flush returns the commands queued since the last flush.
func (s *teaScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
