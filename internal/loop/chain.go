package loop

import "time"

// Chain runs a step repeatedly with a fixed delay between invocations. The
// next invocation is scheduled only after the current step has finished and
// returned true; the first false return ends the chain for good. There is
// never more than one pending invocation, so there is nothing to cancel.
type Chain struct {
	sched  Scheduler
	delay  time.Duration
	step   func() bool
	active bool
	steps  uint64
}

// NewChain creates an idle chain. step reports whether the chain continues.
func NewChain(sched Scheduler, delay time.Duration, step func() bool) *Chain {
	return &Chain{
		sched: sched,
		delay: delay,
		step:  step,
	}
}

// Start runs the first step immediately. Calling Start on a chain that is
// already running or has finished does nothing.
func (c *Chain) Start() {
	if c.active || c.steps > 0 {
		return
	}
	c.active = true
	c.run()
}

func (c *Chain) run() {
	if !c.active {
		return
	}
	c.steps++
	if !c.step() {
		c.active = false
		return
	}
	c.sched.After(c.delay, c.run)
}

// Active reports whether another step is scheduled.
func (c *Chain) Active() bool {
	return c.active
}

// Steps returns how many times the step has run.
func (c *Chain) Steps() uint64 {
	return c.steps
}

// Delay returns the fixed delay between steps.
func (c *Chain) Delay() time.Duration {
	return c.delay
}
