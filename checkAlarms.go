package main

// compare both alarms against the running time, sound any that match
func checkAlarms(rt runtimeConfig) {
	st := rt.state
	for i := range st.alarms {
		a := &st.alarms[i]
		if a.enabled && a.matches(st.now(), st.date) {
			soundAlarm(rt, a)
		}
	}
}

// blocks until a button is pressed, then the alarm is disarmed
func soundAlarm(rt runtimeConfig, a *alarmRecord) {
	st := rt.state
	rt.logger.Printf("alarm %d sounding at %v", a.id, a.time)

	m := alarmMnemonic(a.id)
	st.frame.show(m[0], m[1], glyphAll)

	cancel := func() bool {
		return anyPressed(rt)
	}
	for !anyPressed(rt) && !quitting(rt) {
		if !playMelody(rt, a.melody(), cancel) {
			break
		}
		if !waitFor(rt, &st.tone, rt.delays.alarmRepeat, cancel) {
			break
		}
	}
	rt.sounds.toneOff()

	// fires once, even the daily alarm has to be re-armed
	a.enabled = false
	rt.logger.Printf("alarm %d acknowledged", a.id)
	publishStatus(rt)
}
