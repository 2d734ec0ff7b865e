package main

import (
	"sync"

	"github.com/stianeikeland/go-rpio/v4"
)

// inputs with nothing attached; tests drive it with set/clear
type noInputs struct {
	mu     sync.Mutex
	levels [numButtons]rpio.State
	sw     byte
	reads  int
}

func (ni *noInputs) initInputs(rt runtimeConfig) error {
	ni.clear()
	return nil
}

func (ni *noInputs) buttonLevel(b button) rpio.State {
	ni.mu.Lock()
	defer ni.mu.Unlock()
	ni.reads++
	return ni.levels[b]
}

func (ni *noInputs) switches() byte {
	ni.mu.Lock()
	defer ni.mu.Unlock()
	return ni.sw
}

func (ni *noInputs) closeInputs() {
}

func (ni *noInputs) press(b button) {
	ni.mu.Lock()
	defer ni.mu.Unlock()
	ni.levels[b] = rpio.Low
}

func (ni *noInputs) release(b button) {
	ni.mu.Lock()
	defer ni.mu.Unlock()
	ni.levels[b] = rpio.High
}

func (ni *noInputs) setSwitches(sw byte) {
	ni.mu.Lock()
	defer ni.mu.Unlock()
	ni.sw = sw
}

func (ni *noInputs) clear() {
	ni.mu.Lock()
	defer ni.mu.Unlock()
	for i := range ni.levels {
		ni.levels[i] = rpio.High
	}
	ni.sw = 0
}
