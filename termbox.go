package main

import (
	"sync"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// the keyboard and the terminal display share one termbox session
var term struct {
	mu    sync.Mutex
	users int
}

func openTermbox() error {
	term.mu.Lock()
	defer term.mu.Unlock()
	if term.users == 0 {
		if err := termbox.Init(); err != nil {
			return errors.Wrap(err, "termbox init")
		}
		termbox.SetInputMode(termbox.InputEsc)
		termbox.Flush()
	}
	term.users++
	return nil
}

func closeTermbox() {
	term.mu.Lock()
	defer term.mu.Unlock()
	if term.users == 0 {
		return
	}
	term.users--
	if term.users == 0 {
		termbox.Close()
	}
}

func termPrint(x, y int, line string, fg termbox.Attribute) {
	for i, c := range line {
		termbox.SetCell(x+i, y, c, fg, termbox.ColorDefault)
	}
}
