package sound

import (
	"encoding/binary"
	"testing"

	"github.com/gopxl/beep"
)

func frames(c Cue) int {
	sr := beep.SampleRate(SampleRate)
	n := 0
	for _, note := range Notes(c) {
		n += sr.N(note.Dur)
	}
	return n
}

func TestPCMLength(t *testing.T) {
	for c := Cue(0); c < NumCues; c++ {
		pcm, err := PCM(c, SampleRate, 1)
		if err != nil {
			t.Fatalf("cue %d: %v", c, err)
		}
		if want := frames(c) * 4; len(pcm) != want {
			t.Fatalf("cue %d: expected %d bytes, got %d", c, want, len(pcm))
		}
	}
}

func TestPCMAmplitudeAndFade(t *testing.T) {
	pcm, err := PCM(CueDenied, SampleRate, 0.25)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var peak int16
	for i := 0; i+3 < len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("sample %d: channels differ %d/%d", i/4, l, r)
		}
		peak = max(peak, l)
	}
	if peak < 8000 || peak > 8192 {
		t.Fatalf("expected peak near a quarter of full scale, got %d", peak)
	}

	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if last > 200 || last < -200 {
		t.Fatalf("cue should fade out, last sample %d", last)
	}
}

func TestMutedCueIsSilent(t *testing.T) {
	pcm, err := PCM(CueSelect, SampleRate, 0)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for i, b := range pcm {
		if b != 0 {
			t.Fatalf("byte %d should be silent, got %d", i, b)
		}
	}
}

func TestUnknownCue(t *testing.T) {
	if Notes(NumCues) != nil {
		t.Fatalf("unknown cue should have no notes")
	}
	if _, err := PCM(NumCues, SampleRate, 1); err == nil {
		t.Fatalf("expected error for unknown cue")
	}
	if _, err := Streamer(-1, SampleRate, 1); err == nil {
		t.Fatalf("expected error for negative cue")
	}
}
