package main

import "time"

// note pitch in Hz, 0 is a rest
type note float64

const (
	rest note = 0
	C4   note = 261.63
	CS4  note = 277.18
	D4   note = 293.66
	DS4  note = 311.13
	E4   note = 329.63
	F4   note = 349.23
	FS4  note = 369.99
	G4   note = 392.00
	GS4  note = 415.30
	A4   note = 440.00
	AS4  note = 466.16
	B4   note = 493.88
	C5   note = 523.25
	CS5  note = 554.37
	D5   note = 587.33
	DS5  note = 622.25
	E5   note = 659.25
	F5   note = 698.46
	FS5  note = 739.99
	G5   note = 783.99
	GS5  note = 830.61
	A5   note = 880.00
	AS5  note = 932.33
	B5   note = 987.77
	C6   note = 1046.50
	D6   note = 1174.66
)

const (
	semibreve  = 800 * time.Millisecond
	minim      = semibreve / 2
	crotchet   = minim / 2
	quaver     = crotchet / 2
	semiquaver = quaver / 2
)

// a note (or rest) held for length, then silence for gap
type noteStep struct {
	note   note
	length time.Duration
	gap    time.Duration
}

func play(length time.Duration, pitch note, gap time.Duration) noteStep {
	return noteStep{note: pitch, length: length, gap: gap}
}

func pause(length time.Duration) noteStep {
	return noteStep{note: rest, length: length}
}

// Jingle Bells (verse)
var alarm1Melody = []noteStep{
	play(crotchet, C5, quaver), play(crotchet, A5, quaver), play(crotchet, G5, quaver), play(crotchet, F5, quaver),
	play(minim, C5, crotchet), play(quaver, C5, semiquaver), play(quaver, C5, quaver),
	play(crotchet, C5, quaver), play(crotchet, A5, quaver), play(crotchet, G5, quaver), play(crotchet, F5, quaver),
	play(minim, D5, quaver), pause(minim),
	play(crotchet, D5, quaver), play(crotchet, AS5, quaver), play(crotchet, A5, quaver), play(crotchet, G5, quaver),
	play(minim, E5, quaver), pause(minim),
	play(crotchet, C6, quaver), play(crotchet, C6, quaver), play(crotchet, AS5, quaver), play(crotchet, G5, quaver),
	play(minim, A5, quaver), pause(minim),
	play(crotchet, C5, quaver), play(crotchet, A5, quaver), play(crotchet, G5, quaver), play(crotchet, F5, quaver),
	play(minim, C5, quaver), pause(minim),
	play(crotchet, C5, quaver), play(crotchet, A5, quaver), play(crotchet, G5, quaver), play(crotchet, F5, quaver),
	play(minim, D5, quaver), pause(minim),
	play(crotchet, D5, quaver), play(crotchet, D5, quaver), play(crotchet, AS5, quaver), play(crotchet, A5, quaver),
	play(crotchet, G5, quaver), play(crotchet, C6, quaver), play(crotchet, C6, quaver), play(crotchet, C6, quaver),
	play(quaver, C6, semiquaver), play(quaver, C6, quaver),
	play(crotchet, D6, quaver), play(crotchet, C6, quaver), play(crotchet, AS5, quaver), play(crotchet, G5, quaver),
	play(minim, F5, crotchet), play(minim, C6, quaver),
	play(crotchet, A5, quaver), play(crotchet, A5, quaver), play(minim, A5, quaver),
	play(crotchet, A5, quaver), play(crotchet, A5, quaver), play(minim, A5, quaver),
	play(crotchet, A5, quaver), play(crotchet, C6, semiquaver), play(crotchet, F5, quaver), play(crotchet, G5, quaver),
	play(semibreve, A5, quaver),
	play(crotchet, AS5, quaver), play(crotchet, AS5, quaver), play(crotchet, AS5, quaver), play(crotchet, AS5, quaver),
	play(crotchet, A5, quaver), play(crotchet, A5, quaver), play(crotchet, A5, quaver),
	play(quaver, A5, semiquaver), play(quaver, A5, quaver),
	play(crotchet, A5, quaver), play(crotchet, G5, quaver), play(crotchet, G5, quaver), play(crotchet, A5, quaver),
	play(minim, G5, quaver), play(minim, C6, quaver),
}

// Ode to Joy
var alarm2Melody = []noteStep{
	play(crotchet, FS5, quaver), play(crotchet, FS5, quaver), play(crotchet, G5, quaver), play(crotchet, A5, quaver),
	play(crotchet, A5, quaver), play(crotchet, G5, quaver), play(crotchet, FS5, quaver), play(crotchet, E5, quaver),
	play(crotchet, D5, quaver), play(crotchet, D5, quaver), play(crotchet, E5, quaver), play(crotchet, FS5, quaver),
	play(crotchet, FS5, quaver), play(crotchet, E5, quaver), play(minim, E5, quaver),
	play(crotchet, FS5, quaver), play(crotchet, FS5, quaver), play(crotchet, G5, quaver), play(crotchet, A5, quaver),
	play(crotchet, A5, quaver), play(crotchet, G5, quaver), play(crotchet, FS5, quaver), play(crotchet, E5, quaver),
	play(crotchet, D5, quaver), play(crotchet, D5, quaver), play(crotchet, E5, quaver), play(crotchet, FS5, quaver),
	play(crotchet, E5, quaver), play(crotchet, D5, quaver), play(minim, D5, crotchet),
	play(crotchet, E5, quaver), play(crotchet, E5, quaver), play(crotchet, FS5, quaver), play(crotchet, D5, quaver),
	play(crotchet, E5, quaver), play(quaver, FS5, semiquaver), play(quaver, G5, semiquaver), play(crotchet, FS5, quaver),
	play(crotchet, D5, quaver), play(crotchet, E5, quaver), play(quaver, FS5, semiquaver), play(quaver, G5, semiquaver),
	play(crotchet, FS5, quaver), play(crotchet, E5, quaver), play(crotchet, D5, quaver), play(crotchet, E5, quaver),
	play(minim, A5, crotchet),
	play(crotchet, FS5, quaver), play(crotchet, FS5, quaver), play(crotchet, G5, quaver), play(crotchet, A5, quaver),
	play(crotchet, A5, quaver), play(crotchet, G5, quaver), play(crotchet, FS5, quaver), play(crotchet, E5, quaver),
	play(crotchet, D5, quaver), play(crotchet, D5, quaver), play(crotchet, E5, quaver), play(crotchet, FS5, quaver),
	play(crotchet, E5, quaver), play(crotchet, D5, quaver), play(minim, D5, quaver),
}

func (a *alarmRecord) melody() []noteStep {
	if a.id == alarm1 {
		return alarm1Melody
	}
	return alarm2Melody
}

// play each step on the tone counter; false as soon as cancel fires
func playMelody(rt runtimeConfig, melody []noteStep, cancel func() bool) bool {
	st := rt.state
	for _, s := range melody {
		if s.note != rest {
			rt.sounds.toneOn(s.note)
		}
		ok := waitFor(rt, &st.tone, s.length, cancel)
		rt.sounds.toneOff()
		if !ok {
			return false
		}
		if s.gap > 0 && !waitFor(rt, &st.tone, s.gap, cancel) {
			return false
		}
	}
	return true
}
