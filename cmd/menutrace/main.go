// Command menutrace runs the item menu in a terminal. It drives the same
// state machine as the graphical host and is handy for checking timing
// over ssh.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/prefabs"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/save"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/sound"
)

type session struct {
	screen tcell.Screen
	menu   *menu.Menu
	mem    *save.Memory
	keys   *keyTracker
	cues   *beeper
	render termRenderer
	start  time.Time
}

func newSession(screen tcell.Screen, snap save.Snapshot, cues *beeper, start time.Time) (*session, error) {
	cfg, _, err := prefabs.LoadMenuConfig()
	if err != nil {
		return nil, err
	}
	m, err := menu.New(cfg, menu.DefaultCatalog())
	if err != nil {
		return nil, fmt.Errorf("menu: new: %w", err)
	}
	return &session{
		screen: screen,
		menu:   m,
		mem:    save.NewMemoryFrom(snap),
		keys:   newKeyTracker(),
		cues:   cues,
		render: termRenderer{screen: screen},
		start:  start,
	}, nil
}

// step advances one tick at now and redraws.
func (s *session) step(now time.Time) {
	in := s.keys.Input(now)

	wasOpen := s.menu.IsOpen()
	cat, idx := s.menu.ActiveCategory(), s.menu.ActiveIndex()
	before := s.mem.Snapshot()

	s.menu.Tick(now.Sub(s.start).Seconds(), in, s.mem)

	switch {
	case !wasOpen && s.menu.IsOpen():
		s.cues.play(sound.CueOpen)
	case wasOpen && !s.menu.IsOpen():
		s.cues.play(sound.CueClose)
	case !s.menu.IsOpen():
	case s.mem.Snapshot() != before:
		s.cues.play(sound.CueSelect)
	case in.Confirm.Pressed:
		s.cues.play(sound.CueDenied)
	case s.menu.ActiveCategory() != cat:
		s.cues.play(sound.CueScroll)
	case s.menu.ActiveIndex() != idx:
		s.cues.play(sound.CueMove)
	}

	s.draw()
}

func (s *session) draw() {
	s.screen.Clear()
	s.menu.Draw(&s.render)

	_, h := s.screen.Size()
	status := fmt.Sprintf("%v %v[%d]", s.menu.State(), s.menu.ActiveCategory(), s.menu.ActiveIndex())
	if e, ok := s.menu.Selected(); ok && s.menu.IsOpen() {
		status += " " + e.Item.Name
	}
	status += fmt.Sprintf("  C<%02X Cv%02X C>%02X B%02X  eq %04X own %04X",
		s.mem.Item(save.ButtonCLeft), s.mem.Item(save.ButtonCDown), s.mem.Item(save.ButtonCRight),
		s.mem.Item(save.ButtonB), s.mem.Equipment(), s.mem.OwnedEquipment())
	s.text(0, h-1, status, tcell.StyleDefault.Reverse(true))
	s.screen.Show()
}

func (s *session) text(x, y int, str string, style tcell.Style) {
	for _, c := range str {
		s.screen.SetContent(x, y, c, nil, style)
		x++
	}
}

func main() {
	frameTime := flag.Duration("frametime", 50*time.Millisecond, "time per tick")
	mute := flag.Bool("mute", false, "disable sound")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory holding prefab overrides")
	flag.Parse()

	prefabs.Dir = *prefabDir

	snap, err := prefabs.LoadSaveSnapshot()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	s, err := newSession(screen, snap, newBeeper(*mute), time.Now())
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(*frameTime)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					screen.Fini()
					os.Exit(0)
				}
				s.keys.Observe(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			s.step(now)
		}
	}
}
