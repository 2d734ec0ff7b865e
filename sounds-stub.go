//go:build noaudio
// +build noaudio

package main

import (
	"github.com/pkg/errors"
)

func init() {
	features = append(features, "noaudio")
}

type realSounds struct {
}

func (rs *realSounds) openSounds(settings configSettings) error {
	return errors.New("built without audio")
}

func (rs *realSounds) toneOn(n note) {}

func (rs *realSounds) toneOff() {}

func (rs *realSounds) closeSounds() {}
