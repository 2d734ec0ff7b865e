//go:build !noaudio
// +build !noaudio

package main

import (
	"math"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"
)

func init() {
	features = append(features, "audio")
}

const sampleRate = 44100

// square wave on the default sound card, the callback reads the pitch
type realSounds struct {
	stream *portaudio.Stream
	freq   atomic.Uint64 // math.Float64bits of the pitch, 0 is silence
	phase  float64
	level  float32
}

func (rs *realSounds) openSounds(settings configSettings) error {
	if err := portaudio.Initialize(); err != nil {
		return errors.Wrap(err, "portaudio init")
	}
	rs.level = 0.3
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, 0, rs.processAudio)
	if err != nil {
		portaudio.Terminate()
		return errors.Wrap(err, "portaudio stream")
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return errors.Wrap(err, "portaudio start")
	}
	rs.stream = stream
	return nil
}

func (rs *realSounds) toneOn(n note) {
	rs.freq.Store(math.Float64bits(float64(n)))
}

func (rs *realSounds) toneOff() {
	rs.freq.Store(0)
}

func (rs *realSounds) closeSounds() {
	rs.toneOff()
	rs.stream.Stop()
	rs.stream.Close()
	portaudio.Terminate()
}

func (rs *realSounds) processAudio(out [][]float32) {
	freq := math.Float64frombits(rs.freq.Load())
	step := freq / sampleRate
	for i := range out[0] {
		var val float32
		if freq > 0 {
			val = squareWave(rs.phase, rs.level)
			_, rs.phase = math.Modf(rs.phase + step)
		}
		out[0][i] = val // L
		out[1][i] = val // R
	}
}

func squareWave(phase float64, level float32) float32 {
	if phase < 0.5 {
		return level
	}
	return -level
}
