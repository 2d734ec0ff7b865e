package main

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func TestDisplayIndexWrap(t *testing.T) {
	st := &clockState{}
	for from, to := range map[int]int{0: 1, 4: 5, 5: 0, 9: 0, -2: 0} {
		st.dispIndex = from
		st.nextDisplay()
		assert.Equal(t, to, st.dispIndex, "next from %d", from)
	}
	for from, to := range map[int]int{0: 5, 3: 2, 5: 4, 6: 5, -1: 5} {
		st.dispIndex = from
		st.prevDisplay()
		assert.Equal(t, to, st.dispIndex, "prev from %d", from)
	}
}

func stepUntil(rt runtimeConfig, sim *simTimers, end time.Duration) {
	for sim.now < end && !quitting(rt) {
		clockStep(rt)
	}
}

func TestDisplayCycles(t *testing.T) {
	rt, sim, _ := testRuntime(t)
	st := rt.state

	stepUntil(rt, sim, 2900*time.Millisecond)
	assert.Equal(t, showDay, st.dispIndex)
	assert.Equal(t, byte(swDay), st.frame.leds())

	stepUntil(rt, sim, 3100*time.Millisecond)
	assert.Equal(t, showMonth, st.dispIndex)
	assert.Equal(t, digitGlyphs[0], st.frame.tens())
	assert.Equal(t, digitGlyphs[1], st.frame.units())
	assert.Equal(t, byte(swMonth), st.frame.leds())

	stepUntil(rt, sim, 6100*time.Millisecond)
	assert.Equal(t, showYear, st.dispIndex)
}

func TestButtonsStepDisplay(t *testing.T) {
	rt, sim, in := testRuntime(t)
	st := rt.state

	// one step per press, held a little longer than debounce + repeat
	sim.pressFor(in, pb1, 100*time.Millisecond)
	stepUntil(rt, sim, 500*time.Millisecond)
	assert.Equal(t, showMonth, st.dispIndex)

	sim.pressFor(in, pb2, 100*time.Millisecond)
	stepUntil(rt, sim, time.Second)
	assert.Equal(t, showDay, st.dispIndex)

	sim.pressFor(in, pb2, 100*time.Millisecond)
	stepUntil(rt, sim, 1500*time.Millisecond)
	assert.Equal(t, showSeconds, st.dispIndex)

	// a tap shorter than the debounce window does nothing
	sim.pressFor(in, pb1, 10*time.Millisecond)
	stepUntil(rt, sim, 2000*time.Millisecond)
	assert.Equal(t, showSeconds, st.dispIndex)
}

func TestSecondsShown(t *testing.T) {
	rt, sim, _ := testRuntime(t)
	st := rt.state
	st.dispIndex = showSeconds

	stepUntil(rt, sim, 2500*time.Millisecond)
	assert.Equal(t, digitGlyphs[0], st.frame.tens())
	assert.Equal(t, digitGlyphs[2], st.frame.units())
	assert.Equal(t, byte(swSeconds), st.frame.leds())
	assert.Assert(t, !st.frame.dotOn())
	assert.Equal(t, "00:00:02", st.status.Load().Time)
}

func TestClockStepRollover(t *testing.T) {
	rt, sim, _ := testRuntime(t)
	st := rt.state
	st.setTime(clockTime{23, 59, 59})
	st.date = newDate(31, 12, 2099)

	stepUntil(rt, sim, 1100*time.Millisecond)
	assert.Equal(t, clockTime{0, 0, 0}, st.now())
	assert.Equal(t, newDate(1, 1, 2000), st.date)
	status := st.status.Load()
	assert.Equal(t, "00:00:00", status.Time)
	assert.Equal(t, "01/01/2000", status.Date)
}

func TestClockStepAlarm(t *testing.T) {
	rt, sim, in := testRuntime(t)
	st := rt.state
	a := st.alarm(alarm1)
	a.time = clockTime{0, 0, 1}
	a.enabled = true

	sim.at(3*time.Second, func() { in.press(pb2) })
	sim.at(3200*time.Millisecond, func() { in.release(pb2) })
	for a.enabled && sim.now < 5*time.Second {
		clockStep(rt)
	}

	assert.Assert(t, !a.enabled)
	assert.Assert(t, sim.now < 3100*time.Millisecond)
	assert.Equal(t, C5, testSounds(rt).played()[0])
}

func TestRunClockBootTest(t *testing.T) {
	rt, sim := initTestRuntime(t, copySettings(testSettings))
	st := rt.state
	ns := testSounds(rt)

	sim.at(400*time.Millisecond, func() {
		assert.Equal(t, glyphAll, st.frame.leds())
		assert.Equal(t, glyphBlank, st.frame.tens())
		assert.Equal(t, C5, ns.current())
	})
	sim.at(900*time.Millisecond, func() {
		assert.Equal(t, glyphAll, st.frame.tens())
		assert.Equal(t, glyphAll, st.frame.units())
		assert.Equal(t, byte(0), st.frame.leds())
		assert.Equal(t, rest, ns.current())
	})
	sim.at(2500*time.Millisecond, func() { requestQuit(rt) })

	wg.Add(1)
	runClock(rt)
	wg.Wait()

	// the tick during the boot test is dropped
	assert.Equal(t, clockTime{0, 0, 1}, st.now())
	assert.Equal(t, C5, ns.played()[0])
}

func TestRunClockNoBootTest(t *testing.T) {
	settings := copySettings(testSettings)
	settings.settings[sBootTest] = false
	rt, sim := initTestRuntime(t, settings)

	sim.at(2500*time.Millisecond, func() { requestQuit(rt) })
	wg.Add(1)
	runClock(rt)
	wg.Wait()

	assert.Equal(t, clockTime{0, 0, 2}, rt.state.now())
	assert.Equal(t, 0, len(testSounds(rt).played()))
}

type brokenDisplay struct{}

func (bd *brokenDisplay) OpenDisplay(settings configSettings) error {
	return errors.New("no bus")
}
func (bd *brokenDisplay) Strobe(phase int, code byte) {}
func (bd *brokenDisplay) CloseDisplay()               {}

type brokenSounds struct{}

func (bs *brokenSounds) openSounds(settings configSettings) error {
	return errors.New("no card")
}
func (bs *brokenSounds) toneOn(n note) {}
func (bs *brokenSounds) toneOff()      {}
func (bs *brokenSounds) closeSounds()  {}

func TestOpenHardwareFallback(t *testing.T) {
	settings := copySettings(testSettings)
	settings.settings[sPinSwitches] = "5,6"
	rt, _ := initTestRuntime(t, settings)
	rt.display = &brokenDisplay{}
	rt.inputs = &rpioInputs{}
	rt.sounds = &brokenSounds{}

	rt = openHardware(rt)
	_, ok := rt.display.(*logDisplay)
	assert.Assert(t, ok)
	assert.Equal(t, rt.display, rt.state.frame.sink)
	_, ok = rt.inputs.(*noInputs)
	assert.Assert(t, ok)
	_, ok = rt.sounds.(*noSounds)
	assert.Assert(t, ok)
	closeHardware(rt)
}
