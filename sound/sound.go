// Package sound describes the menu cues once and renders them with beep,
// either as a live streamer for a speaker or as PCM bytes for hosts that
// bring their own audio player.
package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate hosts open their audio device at.
const SampleRate = 44100

// Cue names a menu sound.
type Cue int

const (
	CueOpen Cue = iota
	CueClose
	CueMove
	CueScroll
	CueSelect
	CueDenied
	NumCues
)

// Note is one sine tone of a cue.
type Note struct {
	Freq float64
	Dur  time.Duration
}

var cueNotes = [NumCues][]Note{
	CueOpen:   {{660, 40 * time.Millisecond}, {880, 60 * time.Millisecond}},
	CueClose:  {{880, 40 * time.Millisecond}, {660, 60 * time.Millisecond}},
	CueMove:   {{1200, 25 * time.Millisecond}},
	CueScroll: {{900, 30 * time.Millisecond}},
	CueSelect: {{990, 50 * time.Millisecond}, {1320, 90 * time.Millisecond}},
	CueDenied: {{180, 120 * time.Millisecond}},
}

// Notes returns the tones of c, or nil for an unknown cue.
func Notes(c Cue) []Note {
	if c < 0 || c >= NumCues {
		return nil
	}
	return cueNotes[c]
}

// Streamer plays the notes of c back to back at volume (0..1). Each note
// fades out over its last 5ms so consecutive notes do not click.
func Streamer(c Cue, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes := Notes(c)
	if notes == nil {
		return nil, fmt.Errorf("sound: unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("sound: cue %d: %w", c, err)
		}
		total := sr.N(n.Dur)
		parts = append(parts, &fadeOut{
			streamer: beep.Take(total, sine),
			total:    total,
			release:  min(total, sr.N(5*time.Millisecond)),
		})
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// fadeOut ramps the last release samples of a finite streamer down to zero.
type fadeOut struct {
	streamer beep.Streamer
	pos      int
	total    int
	release  int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.pos >= start && f.release > 0 {
			gain := float64(f.total-f.pos) / float64(f.release)
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

// PCM drains the streamer of c into 16-bit little-endian stereo samples.
func PCM(c Cue, sampleRate int, volume float64) ([]byte, error) {
	s, err := Streamer(c, beep.SampleRate(sampleRate), volume)
	if err != nil {
		return nil, err
	}

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(smp[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(smp[1])))
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("sound: render cue %d: %w", c, err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	return int16(max(-1, min(v, 1)) * math.MaxInt16)
}
