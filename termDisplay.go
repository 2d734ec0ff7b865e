package main

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/nsf/termbox-go"
)

const termRefresh = 40 * time.Millisecond

// draws the two digits and the LED bank in the terminal
type termDisplay struct {
	codes [muxPhases]atomic.Uint32
	done  chan struct{}
	wg    sync.WaitGroup
}

func (td *termDisplay) OpenDisplay(settings configSettings) error {
	if err := openTermbox(); err != nil {
		return err
	}
	td.done = make(chan struct{})
	td.wg.Add(1)
	go td.runRender()
	return nil
}

func (td *termDisplay) Strobe(phase int, code byte) {
	td.codes[phase].Store(uint32(code))
}

func (td *termDisplay) CloseDisplay() {
	close(td.done)
	td.wg.Wait()
	closeTermbox()
}

func (td *termDisplay) runRender() {
	defer td.wg.Done()
	ticker := time.NewTicker(termRefresh)
	defer ticker.Stop()

	for true {
		select {
		case <-td.done:
			return
		case <-ticker.C:
		}
		lines := renderFrame(byte(td.codes[phaseTens].Load()), byte(td.codes[phaseUnits].Load()),
			byte(td.codes[phaseLEDs].Load()))
		termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
		for y, line := range lines {
			termPrint(1, y+1, line, termbox.ColorRed)
		}
		termPrint(1, len(lines)+2, "1/2: PB1/PB2  a-h: switches  0: clear  q: quit", termbox.ColorDefault)
		termbox.Flush()
	}
}

// bit positions in a segment code
const (
	segA  = 0
	segB  = 1
	segC  = 2
	segD  = 3
	segE  = 4
	segF  = 5
	segG  = 6
	segDP = 7
)

func segOn(code byte, seg uint) bool {
	return code&(1<<seg) != 0
}

func pick(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}

// ascii art for the two digits with the LED row underneath
func renderFrame(tens, units, leds byte) []string {
	digits := []byte{tens, units}
	lines := make([]string, 6)
	for _, c := range digits {
		lines[0] += pick(segOn(c, segA), "  -   ", "      ")
		lines[1] += pick(segOn(c, segF), " |", "  ") + pick(segOn(c, segB), " |  ", "    ")
		lines[2] += pick(segOn(c, segG), "  -   ", "      ")
		lines[3] += pick(segOn(c, segE), " |", "  ") + pick(segOn(c, segC), " |  ", "    ")
		lines[4] += pick(segOn(c, segD), "  -  ", "     ") + pick(segOn(c, segDP), ".", " ")
	}
	// LED 7 on the left, same as the switches
	for i := 7; i >= 0; i-- {
		lines[5] += pick(leds&(1<<uint(i)) != 0, "*", "o")
	}
	return lines
}
