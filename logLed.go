package main

import (
	"fmt"
	"sync"
)

type logLed struct {
	mu         sync.Mutex
	leds       map[int]bool
	audit      []string
	disableLog bool
	logger     flogger
}

func (ll *logLed) init() error {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	ll.leds = make(map[int]bool)
	ll.audit = make([]string, 0)
	ll.logger = &ThreadLogger{name: "LEDs"}
	return nil
}

func (ll *logLed) set(pinNum int, on bool) {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	ll.leds[pinNum] = on
	if !ll.disableLog {
		ll.logger.Printf("set LED %v to %v", pinNum, on)
	}
	if len(ll.audit) < maxAudit {
		ll.audit = append(ll.audit, fmt.Sprintf("set LED %v to %v", pinNum, on))
	}
}

func (ll *logLed) isOn(pinNum int) bool {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	return ll.leds[pinNum]
}
