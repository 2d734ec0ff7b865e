package main

import (
	"github.com/stianeikeland/go-rpio/v4"
)

// delivers the two periodic ticks and paces the main loop's busy waits
type timers interface {
	start(rt runtimeConfig, sec *irqLine, ms *irqLine)
	yield()
}

type inputs interface {
	initInputs(rt runtimeConfig) error
	// raw line level, the buttons are active-low
	buttonLevel(b button) rpio.State
	switches() byte
	closeInputs()
}

// receives the multiplexed frame one phase at a time, Strobe runs in the
// millisecond tick and must not block
type display interface {
	OpenDisplay(settings configSettings) error
	Strobe(phase int, code byte)
	CloseDisplay()
}

type sounds interface {
	openSounds(settings configSettings) error
	toneOn(n note)
	toneOff()
	closeSounds()
}

type led interface {
	init() error
	set(pin int, on bool)
}
