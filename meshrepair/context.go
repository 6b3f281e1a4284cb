package meshrepair

import (
	"fmt"
	"time"
)

// maxMessages bounds the in-memory log so a pathological run cannot
// grow it without limit.
const maxMessages = 1000

// Timer names the phases Context can accumulate elapsed time for.
type Timer int

const (
	TimerIntersect Timer = iota
	TimerClassify
	TimerSplit
	TimerDedup
	TimerDelaunay
	TimerWeld
	timerCount
)

// Context accumulates progress/warning/error messages and per-phase
// timings for a single run: a
// bounded log buffer plus a fixed set of named timers, no external
// logging dependency.
type Context struct {
	messages  []string
	startTime [timerCount]time.Time
	accTime   [timerCount]time.Duration
}

// NewContext returns an empty Context ready to log and time a run.
func NewContext() *Context {
	return &Context{}
}

func (c *Context) log(prefix, format string, args ...interface{}) {
	if len(c.messages) >= maxMessages {
		return
	}
	c.messages = append(c.messages, prefix+fmt.Sprintf(format, args...))
}

// Progressf records a progress message.
func (c *Context) Progressf(format string, args ...interface{}) {
	c.log("PROG ", format, args...)
}

// Warningf records a warning message.
func (c *Context) Warningf(format string, args ...interface{}) {
	c.log("WARN ", format, args...)
}

// Errorf records an error message.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.log("ERR  ", format, args...)
}

// Log returns every message recorded so far, in order.
func (c *Context) Log() []string {
	return c.messages
}

// ResetLog discards every recorded message.
func (c *Context) ResetLog() {
	c.messages = c.messages[:0]
}

// StartTimer marks the start of label. Calling it again before
// StopTimer restarts the interval.
func (c *Context) StartTimer(label Timer) {
	c.startTime[label] = time.Now()
}

// StopTimer accumulates the elapsed time since the last StartTimer call
// for label.
func (c *Context) StopTimer(label Timer) {
	c.accTime[label] += time.Since(c.startTime[label])
}

// AccumulatedTime returns the total time recorded for label across every
// Start/Stop pair so far.
func (c *Context) AccumulatedTime(label Timer) time.Duration {
	return c.accTime[label]
}
