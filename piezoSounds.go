package main

import (
	"github.com/stianeikeland/go-rpio/v4"
)

// the PWM clock can't go much under 5kHz, so run it 32 steps per cycle
const pwmSteps = 32

// piezo buzzer on a hardware PWM pin
type piezoSounds struct {
	pin rpio.Pin
}

func (ps *piezoSounds) openSounds(settings configSettings) error {
	if err := openGPIO(); err != nil {
		return err
	}
	ps.pin = rpio.Pin(settings.GetInt(sPinPiezo))
	ps.pin.Mode(rpio.Pwm)
	ps.pin.DutyCycle(0, pwmSteps)
	return nil
}

func (ps *piezoSounds) toneOn(n note) {
	ps.pin.Freq(int(float64(n) * pwmSteps))
	ps.pin.DutyCycle(pwmSteps/2, pwmSteps)
}

func (ps *piezoSounds) toneOff() {
	ps.pin.DutyCycle(0, pwmSteps)
}

func (ps *piezoSounds) closeSounds() {
	ps.toneOff()
	ps.pin.Output()
	ps.pin.Low()
	closeGPIO()
}
