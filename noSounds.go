package main

import (
	"sync"
)

// remembers every tone it was asked to play
type noSounds struct {
	mu      sync.Mutex
	notes   []note
	playing note
	onCnt   int
	offCnt  int
	opened  bool
}

func (ns *noSounds) openSounds(settings configSettings) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.opened = true
	return nil
}

func (ns *noSounds) toneOn(n note) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.playing = n
	ns.onCnt++
	if len(ns.notes) < maxAudit {
		ns.notes = append(ns.notes, n)
	}
}

func (ns *noSounds) toneOff() {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.playing = rest
	ns.offCnt++
}

func (ns *noSounds) closeSounds() {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.opened = false
}

func (ns *noSounds) played() []note {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return append([]note(nil), ns.notes...)
}

func (ns *noSounds) counts() (on, off int) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return ns.onCnt, ns.offCnt
}

func (ns *noSounds) current() note {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return ns.playing
}
