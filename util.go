// utility functions
package main

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type commChannels struct {
	quit     chan struct{}
	quitOnce *sync.Once
}

// all of the blocking waits, in one place so the hot loops don't hit the settings map
type delays struct {
	debounce     time.Duration
	keyRepeat    time.Duration
	displayCycle time.Duration
	alarmPoll    time.Duration
	alarmToggle  time.Duration
	menuFlash    time.Duration
	alarmRepeat  time.Duration
	bootHold     time.Duration
}

type runtimeConfig struct {
	comms    commChannels
	clock    clockwork.Clock
	settings configSettings
	delays   delays
	logger   flogger
	state    *clockState
	timers   timers
	inputs   inputs
	display  display
	sounds   sounds
}

func initCommChannels() commChannels {
	return commChannels{
		quit:     make(chan struct{}),
		quitOnce: &sync.Once{},
	}
}

func delaysFromSettings(settings configSettings) delays {
	return delays{
		debounce:     settings.GetDuration(sDebounce),
		keyRepeat:    settings.GetDuration(sKeyRepeat),
		displayCycle: settings.GetDuration(sDisplayCycle),
		alarmPoll:    settings.GetDuration(sAlarmPoll),
		alarmToggle:  settings.GetDuration(sAlarmToggle),
		menuFlash:    settings.GetDuration(sMenuFlash),
		alarmRepeat:  settings.GetDuration(sAlarmRepeat),
		bootHold:     settings.GetDuration(sBootHold),
	}
}

func initRuntime(settings configSettings) runtimeConfig {
	clock := clockwork.NewRealClock()
	rt := runtimeConfig{
		comms:    initCommChannels(),
		clock:    clock,
		settings: settings,
		delays:   delaysFromSettings(settings),
		logger:   &ThreadLogger{name: "Clock"},
		timers: &clockTimers{
			secPeriod: settings.GetDuration(sSecondPeriod),
			msPeriod:  settings.GetDuration(sMilliPeriod),
			idle:      settings.GetDuration(sPollSleep),
			clock:     clock,
		},
		inputs:  selectInputs(settings),
		display: selectDisplay(settings),
		sounds:  selectSounds(settings),
	}
	rt.state = newClockState(rt.display)
	return rt
}

func requestQuit(rt runtimeConfig) {
	rt.comms.quitOnce.Do(func() {
		close(rt.comms.quit)
	})
}

func quitting(rt runtimeConfig) bool {
	select {
	case <-rt.comms.quit:
		return true
	default:
		return false
	}
}
