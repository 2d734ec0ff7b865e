package main

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestDecodeMenu(t *testing.T) {
	cases := map[byte]menuSelection{
		0x00: selIdle,
		0x01: selSeconds,
		0x02: selMinutes,
		0x04: selHours,
		0x08: selYear,
		0x10: selMonth,
		0x20: selDay,
		0x40: selAlarm2,
		0x80: selAlarm1,
		0x03: selUnrecognized,
		0xC0: selUnrecognized,
		0xFF: selUnrecognized,
	}
	for sw, want := range cases {
		assert.Equal(t, want, decodeMenu(sw), "switches %02x", sw)
	}
}

func TestDecodeAlarmSub(t *testing.T) {
	cases := []struct {
		id   alarmID
		sw   byte
		want alarmSelection
	}{
		{alarm1, 0x80, almToggle},
		{alarm1, 0x81, almSeconds},
		{alarm1, 0x82, almMinutes},
		{alarm1, 0x84, almHours},
		{alarm1, 0xA0, almUnrecognized}, // alarm 1 has no date
		{alarm1, 0x83, almUnrecognized},
		{alarm2, 0x40, almToggle},
		{alarm2, 0x44, almHours},
		{alarm2, 0x48, almYear},
		{alarm2, 0x50, almMonth},
		{alarm2, 0x60, almDay},
		{alarm2, 0x41, almSeconds},
		{alarm2, 0x61, almUnrecognized},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, decodeAlarmSub(c.id, c.sw), "alarm %d switches %02x", c.id, c.sw)
	}

	assert.Assert(t, alarmSelected(alarm1, 0x84))
	assert.Assert(t, !alarmSelected(alarm1, 0x04))
	assert.Assert(t, alarmSelected(alarm2, 0x60))
	// alarm 1's bit above takes it out of alarm 2's menu
	assert.Assert(t, !alarmSelected(alarm2, 0xC0))
	assert.Assert(t, !alarmSelected(alarm2, 0x20))
}

func TestEditFieldWraps(t *testing.T) {
	rt, sim, in := testRuntime(t)
	tm := clockTime{seconds: 59}
	date := newDate(31, 2, 2015)
	ft := fieldTarget{time: &tm, date: &date}

	// nothing pressed, nothing spent
	assert.Assert(t, !editField(rt, ft, fieldSeconds))
	assert.Equal(t, time.Duration(0), sim.now)

	in.press(pb2)
	assert.Assert(t, editField(rt, ft, fieldSeconds))
	assert.Equal(t, uint8(0), tm.seconds)
	// debounce then key repeat
	assert.Equal(t, 50*time.Millisecond, sim.now)
	assert.Assert(t, editField(rt, ft, fieldSeconds))
	assert.Equal(t, uint8(1), tm.seconds)

	// out of range day goes to the ends of this month
	assert.Assert(t, editField(rt, ft, fieldDay))
	assert.Equal(t, uint8(1), date.day)

	date.setYear(2099)
	assert.Assert(t, editField(rt, ft, fieldYear))
	assert.Equal(t, uint16(2000), date.year)
	assert.Equal(t, uint8(0), date.yearShort)
	assert.Equal(t, 0, ft.display(fieldYear))

	in.release(pb2)
	in.press(pb1)
	tm.hours = 0
	assert.Assert(t, editField(rt, ft, fieldHours))
	assert.Equal(t, uint8(23), tm.hours)
	assert.Assert(t, editField(rt, ft, fieldHours))
	assert.Equal(t, uint8(22), tm.hours)

	date.setYear(2016)
	date.day = 1
	assert.Assert(t, editField(rt, ft, fieldDay))
	assert.Equal(t, uint8(29), date.day)
	date.day = 31
	date.setYear(2015)
	assert.Assert(t, editField(rt, ft, fieldDay))
	assert.Equal(t, uint8(28), date.day)

	date.month = 1
	assert.Assert(t, editField(rt, ft, fieldMonth))
	assert.Equal(t, uint8(12), date.month)

	// February's top follows the year going up too
	in.release(pb1)
	in.press(pb2)
	date = newDate(29, 2, 2024)
	assert.Assert(t, editField(rt, ft, fieldDay))
	assert.Equal(t, uint8(1), date.day)
	date.day = 28
	assert.Assert(t, editField(rt, ft, fieldDay))
	assert.Equal(t, uint8(29), date.day)
	date.day = 28
	date.setYear(2023)
	assert.Assert(t, editField(rt, ft, fieldDay))
	assert.Equal(t, uint8(1), date.day)
}

func TestEditHoursMasksSeconds(t *testing.T) {
	rt, sim, in := testRuntime(t)
	st := rt.state
	st.setTime(clockTime{10, 0, 0})

	in.setSwitches(swHours)
	sim.at(400*time.Millisecond, func() { in.press(pb2) })
	sim.at(430*time.Millisecond, func() { in.release(pb2) })
	sim.at(1100*time.Millisecond, func() {
		// the tick at 1s is held back
		assert.Assert(t, st.secLine.masked())
		assert.Equal(t, uint8(0), st.time.seconds)
		assert.Equal(t, digitGlyphs[1], st.frame.tens())
		assert.Equal(t, digitGlyphs[1], st.frame.units())
		assert.Equal(t, byte(swHours), st.frame.leds())
	})
	sim.at(1200*time.Millisecond, func() { in.setSwitches(0) })

	runMenu(rt)

	assert.Assert(t, !st.secLine.masked())
	assert.Equal(t, clockTime{11, 0, 1}, st.now())
	assert.Equal(t, "11:00:00", st.status.Load().Time)
}

func TestFlashField(t *testing.T) {
	rt, sim, _ := testRuntime(t)
	f := &rt.state.frame
	f.setLEDs(swAlarm2 | swSeconds)
	f.toggleDot()

	sim.at(50*time.Millisecond, func() {
		assert.Equal(t, glyph('M'), f.tens())
		assert.Equal(t, glyph('o'), f.units())
		assert.Equal(t, byte(swAlarm2|swMonth), f.leds())
		assert.Assert(t, !f.dotOn())
	})
	sim.at(150*time.Millisecond, func() {
		assert.Equal(t, glyphBlank, f.tens())
	})
	flashField(rt, fieldMnemonics[fieldMonth], fieldLEDs[fieldMonth])
	assert.Equal(t, 400*time.Millisecond, sim.now)
}

func TestToggleAlarm(t *testing.T) {
	rt, sim, in := testRuntime(t)
	st := rt.state
	a := st.alarm(alarm1)

	in.setSwitches(swAlarm1)
	in.press(pb2)
	sim.at(1500*time.Millisecond, func() { in.setSwitches(0) })
	runMenu(rt)

	assert.Assert(t, a.enabled)
	assert.Equal(t, glyphO, st.frame.tens())
	assert.Equal(t, glyphN, st.frame.units())
	assert.Equal(t, byte(swAlarm1), st.frame.leds())

	in.release(pb2)
	in.press(pb1)
	in.setSwitches(swAlarm1)
	sim.after(1500*time.Millisecond, func() { in.setSwitches(0) })
	runMenu(rt)

	assert.Assert(t, !a.enabled)
	assert.Equal(t, glyphF, st.frame.units())
}

func TestMenuErrors(t *testing.T) {
	rt, sim, in := testRuntime(t)
	st := rt.state

	in.setSwitches(swSeconds | swMinutes)
	sim.at(50*time.Millisecond, func() {
		assert.Equal(t, glyphE, st.frame.tens())
		assert.Equal(t, glyphR, st.frame.units())
		assert.Equal(t, byte(errBadSwitch), st.frame.leds())
	})
	sim.at(1500*time.Millisecond, func() {
		// the clock keeps ticking under the error
		assert.Assert(t, !st.secLine.masked())
		assert.Equal(t, clockTime{0, 0, 1}, st.now())
		assert.Equal(t, glyphE, st.frame.tens())
	})
	sim.at(1600*time.Millisecond, func() { in.setSwitches(0) })
	runMenu(rt)
	assert.Equal(t, clockTime{0, 0, 1}, st.now())

	// the alarm is picked on its own bit first, then the sub-field
	base := sim.now
	in.setSwitches(swAlarm1)
	sim.at(base+450*time.Millisecond, func() { in.setSwitches(swAlarm1 | swDay) })
	sim.at(base+1000*time.Millisecond, func() {
		assert.Equal(t, glyphE, st.frame.tens())
		assert.Equal(t, byte(errBadAlarmSwitch), st.frame.leds())
	})
	sim.at(base+1100*time.Millisecond, func() { in.setSwitches(0) })
	runMenu(rt)
}

func TestAlarmSoundsDuringMenuError(t *testing.T) {
	rt, sim, in := testRuntime(t)
	st := rt.state
	ns := testSounds(rt)

	a := st.alarm(alarm1)
	a.time = clockTime{7, 30, 2}
	a.enabled = true
	st.setTime(clockTime{7, 30, 0})

	in.setSwitches(swSeconds | swMinutes)
	sim.at(2200*time.Millisecond, func() {
		assert.Equal(t, glyphA, st.frame.tens())
		assert.Equal(t, glyphAll, st.frame.leds())
	})
	sim.at(2500*time.Millisecond, func() { in.press(pb2) })
	sim.at(2700*time.Millisecond, func() { in.release(pb2) })
	sim.at(3000*time.Millisecond, func() {
		// back to the error once the alarm is acknowledged
		assert.Equal(t, glyphE, st.frame.tens())
		assert.Equal(t, byte(errBadSwitch), st.frame.leds())
	})
	sim.at(3500*time.Millisecond, func() { in.setSwitches(0) })
	runMenu(rt)

	assert.Assert(t, !a.enabled)
	assert.Assert(t, len(ns.played()) > 0)
	assert.Equal(t, rest, ns.current())
	assert.Equal(t, clockTime{7, 30, 3}, st.now())
}

func TestEditAlarmDayLeavesClockRunning(t *testing.T) {
	rt, sim, in := testRuntime(t)
	st := rt.state
	a := st.alarm(alarm2)

	in.setSwitches(swAlarm2)
	sim.at(450*time.Millisecond, func() { in.setSwitches(swAlarm2 | swDay) })
	sim.at(1100*time.Millisecond, func() { in.press(pb2) })
	sim.at(1130*time.Millisecond, func() { in.release(pb2) })
	sim.at(1200*time.Millisecond, func() {
		assert.Assert(t, !st.secLine.masked())
		assert.Equal(t, byte(swAlarm2|swDay), st.frame.leds())
	})
	sim.at(1300*time.Millisecond, func() { in.setSwitches(0) })
	runMenu(rt)

	assert.Equal(t, uint8(2), a.date.day)
	assert.Equal(t, uint8(1), st.now().seconds)
	assert.Assert(t, !a.enabled)
}
