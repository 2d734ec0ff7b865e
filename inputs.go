package main

import (
	"time"

	"github.com/stianeikeland/go-rpio/v4"
)

type button int

const (
	pb1 button = iota // decrement / display forward / alarm off
	pb2               // increment / display back / alarm on
	numButtons
)

func (b button) String() string {
	switch b {
	case pb1:
		return "pb1"
	case pb2:
		return "pb2"
	default:
		return "pb?"
	}
}

// busy-wait on a ms counter for d; false if cancel fired (or we're shutting down) first
func waitFor(rt runtimeConfig, c *msCounter, d time.Duration, cancel func() bool) bool {
	c.reset()
	for !c.reached(d) {
		if quitting(rt) {
			return false
		}
		if cancel != nil && cancel() {
			return false
		}
		rt.timers.yield()
	}
	return true
}

func delay(rt runtimeConfig, d time.Duration) {
	waitFor(rt, &rt.state.debounce, d, nil)
}

func asserted(rt runtimeConfig, b button) bool {
	return rt.inputs.buttonLevel(b) == rpio.Low
}

// debounced press: no delay at all when the line isn't asserted
func buttonPressed(rt runtimeConfig, b button) bool {
	if !asserted(rt, b) {
		return false
	}
	if !waitFor(rt, &rt.state.debounce, rt.delays.debounce, nil) {
		return false
	}
	return asserted(rt, b)
}

func anyPressed(rt runtimeConfig) bool {
	return buttonPressed(rt, pb2) || buttonPressed(rt, pb1)
}

func readSwitches(rt runtimeConfig) byte {
	return rt.inputs.switches()
}
