package main

// one pass of the main loop
func clockStep(rt runtimeConfig) {
	st := rt.state

	st.updateCalendar()

	if st.cycle.reached(rt.delays.displayCycle) {
		st.cycle.reset()
		st.nextDisplay()
	}

	// held buttons step through the display items
	if buttonPressed(rt, pb1) {
		delay(rt, rt.delays.keyRepeat)
		if buttonPressed(rt, pb1) {
			st.cycle.reset()
			st.nextDisplay()
		}
	}
	if buttonPressed(rt, pb2) {
		delay(rt, rt.delays.keyRepeat)
		if buttonPressed(rt, pb2) {
			st.cycle.reset()
			st.prevDisplay()
		}
	}

	showCurrent(rt, st.dispIndex)

	if readSwitches(rt) != 0 {
		runMenu(rt)
	}

	pollAlarms(rt)

	publishStatus(rt)
	rt.timers.yield()
}

// runs the alarm check once the poll interval is up
func pollAlarms(rt runtimeConfig) {
	st := rt.state
	if st.poll.reached(rt.delays.alarmPoll) {
		checkAlarms(rt)
		st.poll.reset()
	}
}

func (st *clockState) nextDisplay() {
	if st.dispIndex >= 0 && st.dispIndex < displayItems-1 {
		st.dispIndex++
	} else {
		st.dispIndex = 0
	}
}

func (st *clockState) prevDisplay() {
	if st.dispIndex > 0 && st.dispIndex < displayItems {
		st.dispIndex--
	} else {
		st.dispIndex = displayItems - 1
	}
}

// all LEDs and the buzzer, then every segment
func bootTest(rt runtimeConfig) {
	st := rt.state
	rt.logger.Println("boot test")

	st.frame.show(glyphBlank, glyphBlank, glyphAll)
	rt.sounds.toneOn(C5)
	waitFor(rt, &st.tone, semibreve, nil)
	rt.sounds.toneOff()

	st.frame.show(glyphAll, glyphAll, 0)
	delay(rt, rt.delays.bootHold)
}

// open each backend, falling back to its stand-in when the hardware isn't there
func openHardware(rt runtimeConfig) runtimeConfig {
	if err := rt.display.OpenDisplay(rt.settings); err != nil {
		rt.logger.Printf("display unavailable, logging instead: %s", err.Error())
		rt.display = &logDisplay{}
		rt.display.OpenDisplay(rt.settings)
	}
	rt.state.frame.sink = rt.display

	if err := rt.inputs.initInputs(rt); err != nil {
		rt.logger.Printf("inputs unavailable: %s", err.Error())
		rt.inputs = &noInputs{}
		rt.inputs.initInputs(rt)
	}

	if err := rt.sounds.openSounds(rt.settings); err != nil {
		rt.logger.Printf("sound unavailable: %s", err.Error())
		rt.sounds = &noSounds{}
		rt.sounds.openSounds(rt.settings)
	}
	return rt
}

func closeHardware(rt runtimeConfig) {
	rt.sounds.closeSounds()
	rt.inputs.closeInputs()
	rt.display.CloseDisplay()
}

func runClock(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runClock")
	}()

	rt = openHardware(rt)
	defer closeHardware(rt)

	st := rt.state
	rt.timers.start(rt, st.secLine, st.msLine)

	if rt.settings.GetBool(sBootTest) {
		bootTest(rt)
	}
	// start the clock
	st.secLine.arm(true)

	for !quitting(rt) {
		clockStep(rt)
	}
}
