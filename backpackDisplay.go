package main

import (
	"sync"
	"sync/atomic"
	"time"

	"dscheirer.com/rtcalarm/sevenseg_backpack"
	"github.com/pkg/errors"
)

const (
	backpackRefresh = 10 * time.Millisecond
	// the two right hand digits of the backpack
	tensDigit  = 2
	unitsDigit = 3
)

// HT16K33 backpack for the digits, a GPIO bank for the 8 LEDs
type backpackDisplay struct {
	codes   [muxPhases]atomic.Uint32
	ssb     *sevenseg_backpack.Sevenseg
	leds    led
	ledPins []int
	lastLED int // -1 until the bank was written once
	logger  flogger
	done    chan struct{}
	wg      sync.WaitGroup
}

func (bd *backpackDisplay) OpenDisplay(settings configSettings) error {
	pins, err := settings.GetIntList(sPinLEDs)
	if err != nil {
		return err
	}
	if len(pins) != 8 {
		return errors.Errorf("need 8 LED pins, got %d", len(pins))
	}
	bd.ledPins = pins

	simulated := settings.GetBool(sI2CSim)
	bd.ssb, err = sevenseg_backpack.Open(settings.GetByte(sI2CDev), settings.GetInt(sI2CBus), simulated)
	if err != nil {
		return errors.Wrap(err, "backpack")
	}
	bd.ssb.DebugDump(settings.GetBool(sDebug))
	if err := bd.ssb.SetBrightness(settings.GetByte(sBrightness)); err != nil {
		bd.ssb.Close()
		return err
	}
	if err := bd.ssb.SetBlinkRate(sevenseg_backpack.BLINK_OFF); err != nil {
		bd.ssb.Close()
		return err
	}

	if simulated {
		bd.leds = &logLed{disableLog: !settings.GetBool(sDebug)}
	} else {
		bd.leds = &rpioLed{}
	}
	if err := bd.leds.init(); err != nil {
		bd.ssb.Close()
		return err
	}

	bd.logger = &ThreadLogger{name: "backpack"}
	bd.lastLED = -1
	bd.done = make(chan struct{})
	bd.wg.Add(1)
	go bd.runRefresh()
	return nil
}

func (bd *backpackDisplay) Strobe(phase int, code byte) {
	bd.codes[phase].Store(uint32(code))
}

func (bd *backpackDisplay) CloseDisplay() {
	close(bd.done)
	bd.wg.Wait()
	bd.ssb.ClearDisplay()
	bd.ssb.Flush()
	bd.ssb.Close()
	bd.writeLEDs(0)
	if r, ok := bd.leds.(*rpioLed); ok {
		r.close()
	}
}

func (bd *backpackDisplay) runRefresh() {
	defer bd.wg.Done()
	ticker := time.NewTicker(backpackRefresh)
	defer ticker.Stop()

	for true {
		select {
		case <-bd.done:
			return
		case <-ticker.C:
		}
		bd.refresh()
	}
}

func (bd *backpackDisplay) refresh() {
	bd.ssb.SetRaw(tensDigit, byte(bd.codes[phaseTens].Load()))
	bd.ssb.SetRaw(unitsDigit, byte(bd.codes[phaseUnits].Load()))
	if err := bd.ssb.Flush(); err != nil {
		bd.logger.Printf("flush: %s", err.Error())
	}

	leds := int(bd.codes[phaseLEDs].Load())
	if leds != bd.lastLED {
		bd.writeLEDs(byte(leds))
		bd.lastLED = leds
	}
}

// bit i of the bank drives ledPins[i]
func (bd *backpackDisplay) writeLEDs(bank byte) {
	for i, pin := range bd.ledPins {
		bd.leds.set(pin, bank&(1<<uint(i)) != 0)
	}
}
