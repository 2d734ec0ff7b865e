package main

const (
	minYear = 2000
	maxYear = 2099
)

// index 0 is unused so months index directly
var monthDays = [2][13]uint8{
	{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

func isLeap(year uint16) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(month uint8, leap bool) uint8 {
	if month < 1 || month > 12 {
		return 31
	}
	if leap {
		return monthDays[1][month]
	}
	return monthDays[0][month]
}

func (d *calendarDate) daysInMonth() uint8 {
	return daysInMonth(d.month, isLeap(d.year))
}

// move to tomorrow, the two digit year wraps 2099 -> 2000
func (d *calendarDate) advanceDay() {
	if d.day < d.daysInMonth() {
		d.day++
		return
	}
	d.day = 1
	if d.month < 12 {
		d.month++
		return
	}
	d.month = 1
	if d.year >= maxYear {
		d.setYear(minYear)
		return
	}
	d.setYear(d.year + 1)
}

// add n minutes, carrying into hours; true when midnight was crossed
func (t *clockTime) advanceMinutes(n uint8) bool {
	total := uint(t.minutes) + uint(n)
	hours := uint(t.hours) + total/60
	t.minutes = uint8(total % 60)

	rolled := hours >= 24
	t.hours = uint8(hours % 24)
	return rolled
}

// apply the minute rollovers counted by the seconds tick
func (st *clockState) drainRollovers() {
	unmask := st.secLine.mask()
	defer unmask()

	if st.minuteRollovers == 0 {
		return
	}
	n := st.minuteRollovers
	st.minuteRollovers = 0
	if st.time.advanceMinutes(n) {
		st.dayRollover = true
	}
}

// one main loop pass of the calendar engine
func (st *clockState) updateCalendar() {
	st.drainRollovers()
	if st.dayRollover {
		st.dayRollover = false
		st.date.advanceDay()
	}
}
