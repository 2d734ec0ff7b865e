package main

import (
	"fmt"
	"sync/atomic"
)

type clockTime struct {
	hours   uint8
	minutes uint8
	seconds uint8
}

func (t clockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hours, t.minutes, t.seconds)
}

// yearShort always tracks year, use setYear
type calendarDate struct {
	day       uint8
	month     uint8
	year      uint16
	yearShort uint8
}

func newDate(day, month uint8, year uint16) calendarDate {
	d := calendarDate{day: day, month: month}
	d.setYear(year)
	return d
}

func (d *calendarDate) setYear(year uint16) {
	d.year = year
	d.yearShort = uint8(year % 100)
}

func (d calendarDate) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.day, d.month, d.year)
}

type alarmID int

const (
	alarm1 alarmID = 1
	alarm2 alarmID = 2
)

// alarm 1 is daily (time only), alarm 2 is a one-shot on a date
type alarmRecord struct {
	id      alarmID
	time    clockTime
	date    calendarDate
	enabled bool
}

func (a *alarmRecord) matchesDate() bool {
	return a.id == alarm2
}

func (a *alarmRecord) matches(now clockTime, today calendarDate) bool {
	if now != a.time {
		return false
	}
	if !a.matchesDate() {
		return true
	}
	return today.day == a.date.day &&
		today.month == a.date.month &&
		today.yearShort == a.date.yearShort
}

// which display item the main loop is cycling through
const (
	showDay = iota
	showMonth
	showYear
	showHours
	showMinutes
	showSeconds
	displayItems
)

type clockState struct {
	// written by the seconds tick, only touched by the main loop while secLine is masked
	time            clockTime
	minuteRollovers uint8

	// main loop only
	date        calendarDate
	dayRollover bool
	alarms      [2]alarmRecord
	dispIndex   int

	secLine *irqLine
	msLine  *irqLine

	// ms counters: display cycle, debounce and delays, alarm poll, tone length
	cycle    msCounter
	debounce msCounter
	poll     msCounter
	tone     msCounter

	frame frame

	status atomic.Pointer[clockStatus]
}

func newClockState(sink display) *clockState {
	st := &clockState{
		date: newDate(1, 1, 2016),
		alarms: [2]alarmRecord{
			{id: alarm1},
			{id: alarm2, date: newDate(1, 1, 2016)},
		},
	}
	st.frame.sink = sink
	st.secLine = newIRQLine("seconds", st.secondsISR)
	st.msLine = newIRQLine("millis", st.millisISR)
	// the seconds line is armed once the boot test is done
	st.msLine.arm(true)
	return st
}

func (st *clockState) alarm(id alarmID) *alarmRecord {
	return &st.alarms[id-1]
}

// consistent copy of the running time
func (st *clockState) now() clockTime {
	unmask := st.secLine.mask()
	defer unmask()
	return st.time
}

func (st *clockState) setTime(t clockTime) {
	unmask := st.secLine.mask()
	defer unmask()
	st.time = t
}
