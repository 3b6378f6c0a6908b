package assets

import (
	"testing"

	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/sound"
)

func TestSoundsSkipWithoutPlaying(t *testing.T) {
	var none *Sounds
	none.Play(sound.CueOpen)

	muted := &Sounds{muted: true}
	muted.Play(sound.CueSelect)
	if !muted.Muted() {
		t.Fatalf("expected muted")
	}

	empty := &Sounds{}
	empty.Play(sound.NumCues)
	empty.Play(sound.CueMove)
}
