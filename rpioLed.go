package main

import (
	"github.com/stianeikeland/go-rpio/v4"
)

type rpioLed struct {
}

func (rpi *rpioLed) init() error {
	return openGPIO()
}

func (rpi *rpioLed) set(pinNum int, on bool) {
	pin := rpio.Pin(pinNum)
	pin.Output()
	if on {
		pin.High()
	} else {
		pin.Low()
	}
}

func (rpi *rpioLed) close() {
	closeGPIO()
}
