package main

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestAlarmMatches(t *testing.T) {
	today := newDate(14, 6, 2021)
	at := clockTime{7, 30, 0}

	daily := alarmRecord{id: alarm1, time: at}
	assert.Assert(t, daily.matches(at, today))
	assert.Assert(t, daily.matches(at, newDate(1, 1, 2030)))
	assert.Assert(t, !daily.matches(clockTime{7, 30, 1}, today))

	dated := alarmRecord{id: alarm2, time: at, date: today}
	assert.Assert(t, dated.matches(at, today))
	assert.Assert(t, !dated.matches(at, newDate(15, 6, 2021)))
	assert.Assert(t, !dated.matches(at, newDate(14, 7, 2021)))
	assert.Assert(t, !dated.matches(clockTime{8, 30, 0}, today))
}

func TestPlayMelody(t *testing.T) {
	rt, sim, _ := testRuntime(t)
	ns := testSounds(rt)

	tune := []noteStep{play(quaver, C5, semiquaver), pause(crotchet), play(crotchet, E5, 0)}
	assert.Assert(t, playMelody(rt, tune, nil))
	assert.Equal(t, 550*time.Millisecond, sim.now)
	assert.DeepEqual(t, []note{C5, E5}, ns.played())
	on, off := ns.counts()
	assert.Equal(t, 2, on)
	assert.Equal(t, 3, off)
	assert.Equal(t, rest, ns.current())
}

func TestCheckAlarmsSounds(t *testing.T) {
	rt, sim, in := testRuntime(t)
	st := rt.state
	ns := testSounds(rt)

	a := st.alarm(alarm1)
	a.time = clockTime{7, 30, 0}
	a.enabled = true
	st.setTime(clockTime{7, 30, 0})

	sim.at(500*time.Millisecond, func() {
		assert.Equal(t, glyphA, st.frame.tens())
		assert.Equal(t, digitGlyphs[1], st.frame.units())
		assert.Equal(t, glyphAll, st.frame.leds())
		assert.Equal(t, A5, ns.current())
	})
	sim.at(2000*time.Millisecond, func() { in.press(pb2) })
	sim.at(2200*time.Millisecond, func() { in.release(pb2) })

	checkAlarms(rt)

	assert.Assert(t, !a.enabled)
	assert.Equal(t, 2025*time.Millisecond, sim.now)
	assert.DeepEqual(t, []note{C5, A5, G5, F5}, ns.played()[:4])
	assert.Equal(t, rest, ns.current())
	assert.Assert(t, !st.status.Load().Alarms[0].Enabled)

	// it stays quiet until re-armed
	checkAlarms(rt)
	assert.Equal(t, 2025*time.Millisecond, sim.now)
}

func TestCheckAlarmsDated(t *testing.T) {
	rt, sim, in := testRuntime(t)
	st := rt.state
	ns := testSounds(rt)

	a := st.alarm(alarm2)
	a.time = clockTime{6, 0, 0}
	a.date = newDate(2, 1, 2016)
	a.enabled = true
	st.setTime(clockTime{6, 0, 0})

	// wrong day
	checkAlarms(rt)
	assert.Assert(t, a.enabled)
	assert.Equal(t, 0, len(ns.played()))

	st.date = newDate(2, 1, 2016)
	sim.at(300*time.Millisecond, func() { in.press(pb1) })
	checkAlarms(rt)
	assert.Assert(t, !a.enabled)
	assert.Equal(t, FS5, ns.played()[0])
}

func TestDisabledAlarmSilent(t *testing.T) {
	rt, sim, _ := testRuntime(t)
	st := rt.state
	st.alarm(alarm1).time = clockTime{0, 0, 0}

	checkAlarms(rt)
	assert.Equal(t, time.Duration(0), sim.now)
	assert.Equal(t, 0, len(testSounds(rt).played()))
}

func TestAlarmStopsOnQuit(t *testing.T) {
	rt, sim, _ := testRuntime(t)
	st := rt.state
	a := st.alarm(alarm1)
	a.enabled = true

	sim.at(time.Second, func() { requestQuit(rt) })
	checkAlarms(rt)
	assert.Equal(t, time.Second, sim.now)
	assert.Equal(t, rest, testSounds(rt).current())
}
