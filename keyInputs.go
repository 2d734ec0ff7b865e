package main

import (
	"sync"
	"time"

	// keyboard for sim mode
	"github.com/jonboulle/clockwork"
	"github.com/nsf/termbox-go"
	"github.com/stianeikeland/go-rpio/v4"
)

// '1' and '2' press PB1/PB2 for keyHold, 'a'..'h' flip switches 0..7,
// '0' clears the switches, 'q' or ^C quits
type keyInputs struct {
	clock   clockwork.Clock
	hold    time.Duration
	mu      sync.Mutex
	until   [numButtons]time.Time
	sw      byte
	done    chan struct{}
	stopped chan struct{}
}

func (ki *keyInputs) initInputs(rt runtimeConfig) error {
	if err := openTermbox(); err != nil {
		return err
	}
	ki.clock = rt.clock
	ki.hold = rt.settings.GetDuration(sKeyHold)
	ki.done = make(chan struct{})
	ki.stopped = make(chan struct{})
	go ki.runKeyboard(rt)
	return nil
}

func (ki *keyInputs) runKeyboard(rt runtimeConfig) {
	defer close(ki.stopped)
	for true {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			select {
			case <-ki.done:
				return
			default:
			}
		case termbox.EventKey:
			if ki.handleKey(ev.Ch, ev.Key) {
				rt.logger.Println("quit from keyboard")
				requestQuit(rt)
			}
		case termbox.EventError:
			rt.logger.Printf("keyboard error: %s", ev.Err)
		}
	}
}

// true when the key asks to quit
func (ki *keyInputs) handleKey(ch rune, key termbox.Key) bool {
	ki.mu.Lock()
	defer ki.mu.Unlock()

	if key == termbox.KeyCtrlC || ch == 'q' {
		return true
	}
	switch {
	case ch == '1':
		ki.until[pb1] = ki.clock.Now().Add(ki.hold)
	case ch == '2':
		ki.until[pb2] = ki.clock.Now().Add(ki.hold)
	case ch == '0':
		ki.sw = 0
	case ch >= 'a' && ch <= 'h':
		ki.sw ^= 1 << uint(ch-'a')
	}
	return false
}

func (ki *keyInputs) buttonLevel(b button) rpio.State {
	ki.mu.Lock()
	defer ki.mu.Unlock()
	if ki.clock.Now().Before(ki.until[b]) {
		return rpio.Low
	}
	return rpio.High
}

func (ki *keyInputs) switches() byte {
	ki.mu.Lock()
	defer ki.mu.Unlock()
	return ki.sw
}

func (ki *keyInputs) closeInputs() {
	close(ki.done)
	termbox.Interrupt()
	<-ki.stopped
	closeTermbox()
}
