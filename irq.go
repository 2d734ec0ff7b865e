package main

import (
	"sync"
	"sync/atomic"
	"time"
)

// irqLine delivers ticks from a timer driver to exactly one handler.
// While masked, a tick is latched as pending and delivered once when the
// outermost mask is released, the same way a disabled interrupt source
// keeps its flag set.
type irqLine struct {
	name    string
	mu      sync.Mutex
	isr     func()
	armed   bool
	depth   int
	pending bool
	fired   atomic.Uint64
}

func newIRQLine(name string, isr func()) *irqLine {
	return &irqLine{name: name, isr: isr}
}

// an unarmed line drops its ticks (the timer isn't running yet)
func (l *irqLine) arm(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.armed = on
}

func (l *irqLine) fire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.armed {
		return
	}
	if l.depth > 0 {
		l.pending = true
		return
	}
	l.fired.Add(1)
	l.isr()
}

// mask the line and return the func that restores it, safe to call more than once
func (l *irqLine) mask() func() {
	l.mu.Lock()
	l.depth++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(l.unmask)
	}
}

func (l *irqLine) unmask() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.depth--
	if l.depth > 0 || !l.pending {
		return
	}
	l.pending = false
	if l.armed {
		l.fired.Add(1)
		l.isr()
	}
}

func (l *irqLine) masked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.depth > 0
}

// millisecond counter, incremented by the ms tick and reset by whoever waits on it
type msCounter struct {
	n atomic.Uint32
}

func (c *msCounter) reset() {
	c.n.Store(0)
}

func (c *msCounter) inc() {
	c.n.Add(1)
}

func (c *msCounter) elapsed() uint32 {
	return c.n.Load()
}

func (c *msCounter) reached(d time.Duration) bool {
	return c.elapsed() >= msTicks(d)
}

func msTicks(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	return uint32(d / time.Millisecond)
}
