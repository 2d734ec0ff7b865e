package main

import (
	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio/v4"
)

// buttons and switches on GPIO, all pulled up and grounded when on
type rpioInputs struct {
	buttons  [numButtons]rpio.Pin
	switchBk []rpio.Pin
}

func (ri *rpioInputs) initInputs(rt runtimeConfig) error {
	settings := rt.settings
	pins, err := settings.GetIntList(sPinSwitches)
	if err != nil {
		return err
	}
	if len(pins) != 8 {
		return errors.Errorf("need 8 switch pins, got %d", len(pins))
	}

	if err := openGPIO(); err != nil {
		return err
	}

	ri.buttons[pb1] = rpio.Pin(settings.GetInt(sPinPB1))
	ri.buttons[pb2] = rpio.Pin(settings.GetInt(sPinPB2))
	for _, p := range ri.buttons {
		p.Input()
		p.PullUp() // GND => button press
	}

	ri.switchBk = make([]rpio.Pin, len(pins))
	for i, n := range pins {
		ri.switchBk[i] = rpio.Pin(n)
		ri.switchBk[i].Input()
		ri.switchBk[i].PullUp()
	}
	rt.logger.Printf("gpio inputs ready, buttons %v switches %v", ri.buttons, pins)
	return nil
}

func (ri *rpioInputs) buttonLevel(b button) rpio.State {
	return ri.buttons[b].Read()
}

// bit i is switch pin i, a grounded switch reads as 1
func (ri *rpioInputs) switches() byte {
	var sw byte
	for i, p := range ri.switchBk {
		if p.Read() == rpio.Low {
			sw |= 1 << uint(i)
		}
	}
	return sw
}

func (ri *rpioInputs) closeInputs() {
	closeGPIO()
}
