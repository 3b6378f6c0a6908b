package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/sound"
)

const sampleRate = beep.SampleRate(sound.SampleRate)

// beeper plays menu cues on the default audio device. A failed init
// leaves it silent.
type beeper struct {
	enabled bool
}

func newBeeper(mute bool) *beeper {
	if mute {
		return &beeper{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return &beeper{}
	}
	return &beeper{enabled: true}
}

func (b *beeper) play(c sound.Cue) {
	if b == nil || !b.enabled {
		return
	}
	s, err := sound.Streamer(c, sampleRate, 0.25)
	if err != nil {
		return
	}
	speaker.Play(s)
}
