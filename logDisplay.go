package main

import (
	"fmt"
	"sync"
)

const maxAudit = 4096

// keeps the last code of every phase and logs when the picture changes
type logDisplay struct {
	mu        sync.Mutex
	debugDump bool
	logger    flogger
	codes     [muxPhases]byte
	strobes   [muxPhases]int
	opened    bool
	audit     []string
}

func (ld *logDisplay) OpenDisplay(settings configSettings) error {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.debugDump = settings.GetBool(sDebug)
	ld.logger = &ThreadLogger{name: "display"}
	ld.codes = [muxPhases]byte{}
	ld.strobes = [muxPhases]int{}
	ld.audit = []string{}
	ld.opened = true
	return nil
}

func (ld *logDisplay) Strobe(phase int, code byte) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.strobes[phase]++
	if ld.codes[phase] == code {
		return
	}
	ld.codes[phase] = code
	e := fmt.Sprintf("%d=%02x", phase, code)
	if ld.debugDump {
		ld.logger.Println(e)
	}
	if len(ld.audit) < maxAudit {
		ld.audit = append(ld.audit, e)
	}
}

func (ld *logDisplay) CloseDisplay() {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.opened = false
}

// what the digits and LEDs show right now
func (ld *logDisplay) shown() (tens, units, leds byte) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.codes[phaseTens], ld.codes[phaseUnits], ld.codes[phaseLEDs]
}

func (ld *logDisplay) strobeCount(phase int) int {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.strobes[phase]
}

func (ld *logDisplay) auditTrail() []string {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return append([]string(nil), ld.audit...)
}
