package main

import (
	"log"
	"sync/atomic"

	"dscheirer.com/rtcalarm/sevenseg_backpack"
)

// multiplex phases, in strobe order
const (
	phaseLEDs = iota
	phaseUnits
	phaseTens
	muxPhases
)

// user-visible error codes, shown as "Er" with the code on the LEDs
const (
	errBadNumber      = 1
	errBadSwitch      = 2
	errBadIndex       = 3
	errBadAlarmSwitch = 4
)

const (
	glyphBlank byte = 0x00
	glyphAll   byte = 0xFF
)

var (
	digitGlyphs [10]byte
	glyphE      = glyph('E')
	glyphR      = glyph('r')
	glyphA      = glyph('A')
	glyphO      = glyph('o')
	glyphN      = glyph('n')
	glyphF      = glyph('F')
)

func init() {
	for i := range digitGlyphs {
		digitGlyphs[i] = glyph(byte('0' + i))
	}
}

func glyph(c byte) byte {
	v, err := sevenseg_backpack.Glyph(c)
	if err != nil {
		log.Printf("no glyph for %q: %s", c, err.Error())
		return glyphBlank
	}
	return v
}

// two letter mnemonic shown on (tens, units)
type mnemonic [2]byte

func newMnemonic(s string) mnemonic {
	return mnemonic{glyph(s[0]), glyph(s[1])}
}

// the three output codes: written by the main loop, read by the ms tick
type frame struct {
	codes atomic.Uint32 // leds | units<<8 | tens<<16
	dot   atomic.Uint32 // decimal point on the units digit, 0 or the DP mask
	phase int           // ms tick only
	sink  display
}

var dotPhase = [muxPhases]byte{0, sevenseg_backpack.LED_DECIMAL_MASK, 0}

func packCodes(tens, units, leds byte) uint32 {
	return uint32(leds) | uint32(units)<<8 | uint32(tens)<<16
}

func (f *frame) show(tens, units, leds byte) {
	f.codes.Store(packCodes(tens, units, leds))
}

func (f *frame) showDigits(tens, units byte) {
	f.show(tens, units, f.leds())
}

func (f *frame) setLEDs(leds byte) {
	c := f.codes.Load()
	f.codes.Store(c&^0xFF | uint32(leds))
}

func (f *frame) leds() byte {
	return byte(f.codes.Load())
}

func (f *frame) units() byte {
	return byte(f.codes.Load() >> 8)
}

func (f *frame) tens() byte {
	return byte(f.codes.Load() >> 16)
}

func (f *frame) showError(code byte) {
	f.show(glyphE, glyphR, code)
}

// false (and error 1) when n doesn't fit on two digits
func (f *frame) showNumber(n int) bool {
	if n < 0 || n > 99 {
		f.showError(errBadNumber)
		return false
	}
	f.showDigits(digitGlyphs[n/10], digitGlyphs[n%10])
	return true
}

func (f *frame) toggleDot() {
	f.dot.Store(f.dot.Load() ^ uint32(sevenseg_backpack.LED_DECIMAL_MASK))
}

func (f *frame) dotOff() {
	f.dot.Store(0)
}

func (f *frame) dotOn() bool {
	return f.dot.Load() != 0
}

// ms tick: move to the next phase and put its code on the sink
func (f *frame) strobe() {
	f.phase = (f.phase + 1) % muxPhases
	code := byte(f.codes.Load()>>(8*uint(f.phase))) | byte(f.dot.Load())&dotPhase[f.phase]
	f.sink.Strobe(f.phase, code)
}

// show the display item selected by index, error 3 when it's out of range
func showCurrent(rt runtimeConfig, index int) {
	st := rt.state
	var value int
	var led byte

	switch index {
	case showDay:
		value, led = int(st.date.day), swDay
	case showMonth:
		value, led = int(st.date.month), swMonth
	case showYear:
		value, led = int(st.date.yearShort), swYear
	case showHours:
		value, led = int(st.now().hours), swHours
	case showMinutes:
		value, led = int(st.now().minutes), swMinutes
	case showSeconds:
		value, led = int(st.now().seconds), swSeconds
	default:
		st.frame.showError(errBadIndex)
		return
	}
	if st.frame.showNumber(value) {
		st.frame.setLEDs(led)
	}
}
