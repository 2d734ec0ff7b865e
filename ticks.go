package main

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// 1s tick
func (st *clockState) secondsISR() {
	if st.time.seconds < 59 {
		st.time.seconds++
	} else {
		st.time.seconds = 0
		if st.minuteRollovers < 255 {
			st.minuteRollovers++
		}
	}
	st.frame.toggleDot()
}

// 1ms tick, atomics only
func (st *clockState) millisISR() {
	st.frame.strobe()
	st.cycle.inc()
	st.debounce.inc()
	st.poll.inc()
	st.tone.inc()
}

// clockTimers runs each line on its own goroutine so a slow ms handler
// can't hold up the seconds
type clockTimers struct {
	clock     clockwork.Clock
	secPeriod time.Duration
	msPeriod  time.Duration
	idle      time.Duration
}

func (ct *clockTimers) start(rt runtimeConfig, sec *irqLine, ms *irqLine) {
	wg.Add(2)
	go runTicker(rt, ct.clock, sec, ct.secPeriod)
	go runTicker(rt, ct.clock, ms, ct.msPeriod)
}

func (ct *clockTimers) yield() {
	ct.clock.Sleep(ct.idle)
}

// fire the line every period, deadlines are absolute so the seconds don't drift
func runTicker(rt runtimeConfig, clock clockwork.Clock, line *irqLine, period time.Duration) {
	defer wg.Done()
	logger := &ThreadLogger{name: "Ticker " + line.name}
	defer func() {
		logger.Println("exiting runTicker")
	}()

	next := clock.Now()
	for true {
		select {
		case <-rt.comms.quit:
			return
		default:
		}

		next = next.Add(period)
		if d := next.Sub(clock.Now()); d > 0 {
			clock.Sleep(d)
		}
		line.fire()
	}
}
