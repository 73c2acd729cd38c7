// Package loop provides the fixed-delay scheduling used by the games: a
// one-shot Scheduler contract, a self-rescheduling Chain built on it, and a
// virtual-clock scheduler for driving chains synchronously in tests.
package loop

import (
	"container/heap"
	"time"
)

// Scheduler runs a callback once, no earlier than delay from now.
// Implementations must invoke callbacks on the goroutine that owns the game
// state; games do no locking of their own.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// task is a pending callback in a ManualScheduler.
type task struct {
	due   time.Duration
	seq   uint64
	fn    func()
	index int
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	t.index = -1
	*q = old[:n-1]
	return t
}

// ManualScheduler is a Scheduler driven by a virtual clock. Nothing runs
// until the test advances time, so chains can be stepped deterministically.
// Callbacks due at the same instant run in the order they were scheduled.
type ManualScheduler struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

// NewManualScheduler creates a scheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	m := &ManualScheduler{}
	heap.Init(&m.queue)
	return m
}

// After implements Scheduler.
func (m *ManualScheduler) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	m.seq++
	heap.Push(&m.queue, &task{due: m.now + delay, seq: m.seq, fn: fn})
}

// Now returns the virtual time elapsed since creation.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

// Pending returns the number of callbacks waiting to run.
func (m *ManualScheduler) Pending() int {
	return m.queue.Len()
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way (including ones scheduled by callbacks). It returns the
// number of callbacks run.
func (m *ManualScheduler) Advance(d time.Duration) int {
	target := m.now + d
	ran := 0
	for m.queue.Len() > 0 && m.queue[0].due <= target {
		m.runNext()
		ran++
	}
	m.now = target
	return ran
}

// RunNext jumps the clock to the earliest pending callback and runs it.
// It returns false when nothing is pending.
func (m *ManualScheduler) RunNext() bool {
	if m.queue.Len() == 0 {
		return false
	}
	m.runNext()
	return true
}

// RunUntilIdle runs pending callbacks until none remain or limit callbacks
// have run. It returns the number run.
func (m *ManualScheduler) RunUntilIdle(limit int) int {
	ran := 0
	for ran < limit && m.RunNext() {
		ran++
	}
	return ran
}

func (m *ManualScheduler) runNext() {
	t := heap.Pop(&m.queue).(*task)
	if t.due > m.now {
		m.now = t.due
	}
	t.fn()
}
