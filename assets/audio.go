package assets

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/sound"
)

// Sounds plays menu cues through an ebiten audio context. Cue PCM is
// rendered once up front.
type Sounds struct {
	ctx    *audio.Context
	pcm    [sound.NumCues][]byte
	muted  bool
	volume float64
}

func NewSounds(volume float64) *Sounds {
	s := &Sounds{
		ctx:    audio.CurrentContext(),
		volume: volume,
	}
	if s.ctx == nil {
		s.ctx = audio.NewContext(sound.SampleRate)
	}
	for c := sound.Cue(0); c < sound.NumCues; c++ {
		pcm, err := sound.PCM(c, s.ctx.SampleRate(), volume)
		if err != nil {
			log.Printf("assets: %v", err)
			continue
		}
		s.pcm[c] = pcm
	}
	return s
}

func (s *Sounds) SetMuted(m bool) { s.muted = m }

func (s *Sounds) Muted() bool { return s.muted }

// Play starts c and returns immediately.
func (s *Sounds) Play(c sound.Cue) {
	if s == nil || s.muted || c < 0 || c >= sound.NumCues || len(s.pcm[c]) == 0 {
		return
	}
	p := s.ctx.NewPlayerFromBytes(s.pcm[c])
	p.Play()
}
