package main

// switch bits, the same bits light the matching LED
const (
	swSeconds = 0x01
	swMinutes = 0x02
	swHours   = 0x04
	swYear    = 0x08
	swMonth   = 0x10
	swDay     = 0x20
	swAlarm2  = 0x40
	swAlarm1  = 0x80

	// the alarm bits stay lit while their sub-fields flash
	ledAlarmBits = swAlarm1 | swAlarm2
)

type menuSelection int

const (
	selIdle menuSelection = iota
	selSeconds
	selMinutes
	selHours
	selDay
	selMonth
	selYear
	selAlarm1
	selAlarm2
	selUnrecognized
)

func decodeMenu(sw byte) menuSelection {
	switch sw {
	case 0:
		return selIdle
	case swSeconds:
		return selSeconds
	case swMinutes:
		return selMinutes
	case swHours:
		return selHours
	case swDay:
		return selDay
	case swMonth:
		return selMonth
	case swYear:
		return selYear
	case swAlarm1:
		return selAlarm1
	case swAlarm2:
		return selAlarm2
	default:
		return selUnrecognized
	}
}

type alarmSelection int

const (
	almToggle alarmSelection = iota
	almSeconds
	almMinutes
	almHours
	almYear
	almMonth
	almDay
	almUnrecognized
)

// sub-selection from the bits below the alarm's own bit; alarm 1 has no date
func decodeAlarmSub(id alarmID, sw byte) alarmSelection {
	var low byte
	switch id {
	case alarm1:
		low = sw &^ swAlarm1
	case alarm2:
		low = sw &^ swAlarm2
	}

	switch low {
	case 0:
		return almToggle
	case swSeconds:
		return almSeconds
	case swMinutes:
		return almMinutes
	case swHours:
		return almHours
	}
	if id != alarm2 {
		return almUnrecognized
	}
	switch low {
	case swYear:
		return almYear
	case swMonth:
		return almMonth
	case swDay:
		return almDay
	}
	return almUnrecognized
}

// still inside the alarm's sub-menu: its bit is the highest one set
func alarmSelected(id alarmID, sw byte) bool {
	switch id {
	case alarm1:
		return sw>>7 == 1
	case alarm2:
		return sw>>6 == 1
	}
	return false
}

type field int

const (
	fieldSeconds field = iota
	fieldMinutes
	fieldHours
	fieldDay
	fieldMonth
	fieldYear
)

var fieldMnemonics = [...]mnemonic{
	fieldSeconds: newMnemonic("SS"),
	fieldMinutes: newMnemonic("Mi"),
	fieldHours:   newMnemonic("hh"),
	fieldDay:     newMnemonic("dd"),
	fieldMonth:   newMnemonic("Mo"),
	fieldYear:    newMnemonic("yy"),
}

var fieldLEDs = [...]byte{
	fieldSeconds: swSeconds,
	fieldMinutes: swMinutes,
	fieldHours:   swHours,
	fieldDay:     swDay,
	fieldMonth:   swMonth,
	fieldYear:    swYear,
}

func (s menuSelection) field() field {
	switch s {
	case selMinutes:
		return fieldMinutes
	case selHours:
		return fieldHours
	case selDay:
		return fieldDay
	case selMonth:
		return fieldMonth
	case selYear:
		return fieldYear
	}
	return fieldSeconds
}

func (s alarmSelection) field() field {
	switch s {
	case almMinutes:
		return fieldMinutes
	case almHours:
		return fieldHours
	case almDay:
		return fieldDay
	case almMonth:
		return fieldMonth
	case almYear:
		return fieldYear
	}
	return fieldSeconds
}

// the record being edited, main time/date or one alarm's
type fieldTarget struct {
	time *clockTime
	date *calendarDate
}

// inclusive; the day bound follows the record's own month and year
func (ft fieldTarget) bounds(f field) (int, int) {
	switch f {
	case fieldSeconds, fieldMinutes:
		return 0, 59
	case fieldHours:
		return 0, 23
	case fieldDay:
		return 1, int(ft.date.daysInMonth())
	case fieldMonth:
		return 1, 12
	default:
		return minYear, maxYear
	}
}

func (ft fieldTarget) get(f field) int {
	switch f {
	case fieldSeconds:
		return int(ft.time.seconds)
	case fieldMinutes:
		return int(ft.time.minutes)
	case fieldHours:
		return int(ft.time.hours)
	case fieldDay:
		return int(ft.date.day)
	case fieldMonth:
		return int(ft.date.month)
	default:
		return int(ft.date.year)
	}
}

func (ft fieldTarget) set(f field, v int) {
	switch f {
	case fieldSeconds:
		ft.time.seconds = uint8(v)
	case fieldMinutes:
		ft.time.minutes = uint8(v)
	case fieldHours:
		ft.time.hours = uint8(v)
	case fieldDay:
		ft.date.day = uint8(v)
	case fieldMonth:
		ft.date.month = uint8(v)
	default:
		ft.date.setYear(uint16(v))
	}
}

// what goes on the two digits
func (ft fieldTarget) display(f field) int {
	if f == fieldYear {
		return int(ft.date.yearShort)
	}
	return ft.get(f)
}

// one edit step: PB2 up, else PB1 down, both wrapping; false when nothing was pressed
func editField(rt runtimeConfig, ft fieldTarget, f field) bool {
	lo, hi := ft.bounds(f)
	v := ft.get(f)

	switch {
	case buttonPressed(rt, pb2):
		if v >= hi || v < lo {
			v = lo
		} else {
			v++
		}
	case buttonPressed(rt, pb1):
		if v <= lo || v > hi {
			v = hi
		} else {
			v--
		}
	default:
		return false
	}

	ft.set(f, v)
	delay(rt, rt.delays.keyRepeat)
	return true
}

// flash the mnemonic twice with the field's LED lit
func flashField(rt runtimeConfig, m mnemonic, led byte) {
	f := &rt.state.frame
	f.setLEDs(f.leds()&ledAlarmBits | led)
	f.dotOff()
	for i := 0; i < 2; i++ {
		f.showDigits(m[0], m[1])
		delay(rt, rt.delays.menuFlash)
		f.showDigits(glyphBlank, glyphBlank)
		delay(rt, rt.delays.menuFlash)
	}
}

// edit loop for one field, runs while the switches hold sw
func runFieldEditor(rt runtimeConfig, ft fieldTarget, f field, sw byte) {
	st := rt.state
	flashField(rt, fieldMnemonics[f], fieldLEDs[f])
	st.frame.showNumber(ft.display(f))
	for readSwitches(rt) == sw && !quitting(rt) {
		if editField(rt, ft, f) {
			publishStatus(rt)
		}
		st.frame.showNumber(ft.display(f))
		rt.timers.yield()
	}
}

// the set menu, runs until the switches are all off
func runMenu(rt runtimeConfig) {
	for !quitting(rt) {
		sw := readSwitches(rt)
		switch sel := decodeMenu(sw); sel {
		case selIdle:
			return
		case selSeconds, selMinutes, selHours, selDay, selMonth, selYear:
			editMainField(rt, sel.field(), sw)
		case selAlarm1:
			editAlarm(rt, alarm1)
		case selAlarm2:
			editAlarm(rt, alarm2)
		case selUnrecognized:
			showErrorFor(rt, errBadSwitch)
		}
	}
}

// one pass with an error up; the calendar and alarms carry on underneath
func showErrorFor(rt runtimeConfig, code byte) {
	st := rt.state
	st.updateCalendar()
	pollAlarms(rt)
	st.frame.showError(code)
	rt.timers.yield()
}

// the seconds tick is held off for the whole edit, a tick that lands
// meanwhile is delivered on the way out
func editMainField(rt runtimeConfig, f field, sw byte) {
	st := rt.state
	unmask := st.secLine.mask()
	defer unmask()

	rt.logger.Printf("editing %v", fieldName(f))
	runFieldEditor(rt, fieldTarget{time: &st.time, date: &st.date}, f, sw)
}

func editAlarm(rt runtimeConfig, id alarmID) {
	st := rt.state
	a := st.alarm(id)

	rt.logger.Printf("editing alarm %d", id)
	flashField(rt, alarmMnemonic(id), alarmLED(id))
	for !quitting(rt) {
		sw := readSwitches(rt)
		if !alarmSelected(id, sw) {
			return
		}
		switch sub := decodeAlarmSub(id, sw); sub {
		case almToggle:
			toggleAlarm(rt, a, sw)
		case almUnrecognized:
			showErrorFor(rt, errBadAlarmSwitch)
		default:
			runFieldEditor(rt, fieldTarget{time: &a.time, date: &a.date}, sub.field(), sw)
		}
	}
}

// "A1" then "on"/"oF"; PB2 arms, PB1 disarms
func toggleAlarm(rt runtimeConfig, a *alarmRecord, sw byte) {
	st := rt.state
	st.frame.setLEDs(alarmLED(a.id))
	m := alarmMnemonic(a.id)
	for readSwitches(rt) == sw && !quitting(rt) {
		st.frame.showDigits(m[0], m[1])
		delay(rt, rt.delays.alarmToggle)
		if buttonPressed(rt, pb2) {
			a.enabled = true
		}
		if buttonPressed(rt, pb1) {
			a.enabled = false
		}
		if a.enabled {
			st.frame.showDigits(glyphO, glyphN)
		} else {
			st.frame.showDigits(glyphO, glyphF)
		}
		publishStatus(rt)
		delay(rt, rt.delays.alarmToggle)
	}
}

func alarmMnemonic(id alarmID) mnemonic {
	return mnemonic{glyphA, digitGlyphs[id]}
}

func alarmLED(id alarmID) byte {
	if id == alarm1 {
		return swAlarm1
	}
	return swAlarm2
}

func fieldName(f field) string {
	return [...]string{"seconds", "minutes", "hours", "day", "month", "year"}[f]
}
