package main

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio/v4"
)

// inputs, LEDs and the piezo all share one rpio mapping
var gpio struct {
	mu    sync.Mutex
	users int
}

func openGPIO() error {
	gpio.mu.Lock()
	defer gpio.mu.Unlock()
	if gpio.users == 0 {
		if err := rpio.Open(); err != nil {
			return errors.Wrap(err, "rpio open")
		}
	}
	gpio.users++
	return nil
}

func closeGPIO() {
	gpio.mu.Lock()
	defer gpio.mu.Unlock()
	if gpio.users == 0 {
		return
	}
	gpio.users--
	if gpio.users == 0 {
		rpio.Close()
	}
}
