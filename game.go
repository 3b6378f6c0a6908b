package main

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/assets"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/common"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/menu"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/prefabs"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/sound"
)

const (
	baseWidth  = common.BaseWidth
	baseHeight = common.BaseHeight
)

type Options struct {
	Debug      bool
	Watch      bool
	SaveOnExit bool
	Mute       bool
	FrameTime  float64
	SpriteDir  string
}

type Game struct {
	frames int
	clock  float64
	opts   Options

	menu     *menu.Menu
	save     *saveContext
	input    *Input
	palette  assets.Palette
	atlas    *assets.Atlas
	renderer spriteRenderer
	sounds   *assets.Sounds
	status   *StatusUI
	watcher  *prefabs.Watcher
	sprites  fs.FS

	showStatus bool
}

func NewGame(opts Options) (*Game, error) {
	cfg, spec, err := prefabs.LoadMenuConfig()
	if err != nil {
		return nil, err
	}
	snap, err := prefabs.LoadSaveSnapshot()
	if err != nil {
		return nil, err
	}

	catalog := menu.DefaultCatalog()
	m, err := menu.New(cfg, catalog)
	if err != nil {
		return nil, fmt.Errorf("menu: new: %w", err)
	}

	g := &Game{
		opts:       opts,
		menu:       m,
		save:       newSaveContext(snap, opts.Debug),
		input:      NewInput(),
		palette:    assets.DefaultPalette().Merge(paletteOverrides(spec)),
		sounds:     assets.NewSounds(0.3),
		status:     NewStatusUI(),
		showStatus: opts.Debug,
	}
	if opts.SpriteDir != "" {
		g.sprites = os.DirFS(opts.SpriteDir)
	}
	g.sounds.SetMuted(opts.Mute)
	g.atlas = assets.NewAtlas(cfg, catalog, g.palette, g.sprites)
	g.renderer.atlas = g.atlas

	if opts.Watch {
		if err := os.MkdirAll(prefabs.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("prefabs: create %s: %w", prefabs.Dir, err)
		}
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.MenuFile, prefabs.SaveFile)
		if err != nil {
			return nil, fmt.Errorf("prefabs: watch %s: %w", prefabs.Dir, err)
		}
		g.watcher = w
	}
	return g, nil
}

func paletteOverrides(spec *prefabs.MenuSpec) map[string]color.Color {
	out := make(map[string]color.Color, len(spec.Palette))
	for name, c := range spec.Palette {
		out[name] = c.Color
	}
	return out
}

func (g *Game) Update() error {
	g.frames++

	if ebiten.IsWindowBeingClosed() {
		g.shutdown()
		return ebiten.Termination
	}

	g.reload()
	g.hotkeys()

	dt := g.frameTime()
	g.clock += dt

	g.input.Update(dt)
	in := g.input.State()

	before := g.snapshot()
	g.menu.Tick(g.clock, in, g.save)
	g.playCues(before, in, g.save.takeDirty())

	if g.showStatus {
		g.status.Refresh(g.menu, g.save)
		g.status.Update()
	}
	return nil
}

// frameTime is the clock step of one Update.
func (g *Game) frameTime() float64 {
	if g.opts.FrameTime > 0 {
		return g.opts.FrameTime
	}
	return 1 / float64(ebiten.TPS())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x30, G: 0x48, B: 0x30, A: 0xFF})

	g.renderer.target = screen
	g.menu.Draw(&g.renderer)
	g.renderer.target = nil

	if g.showStatus {
		g.status.Draw(screen)
	}
	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 2, baseHeight-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// navState is what the cue logic compares across a tick.
type navState struct {
	state    menu.State
	category menu.CategoryID
	index    int
}

func (g *Game) snapshot() navState {
	return navState{g.menu.State(), g.menu.ActiveCategory(), g.menu.ActiveIndex()}
}

func (g *Game) playCues(before navState, in menu.Input, wrote bool) {
	after := g.snapshot()
	switch {
	case before.state != after.state && after.state == menu.Open:
		g.sounds.Play(sound.CueOpen)
	case before.state != after.state:
		g.sounds.Play(sound.CueClose)
	case after.state != menu.Open:
	case wrote:
		g.sounds.Play(sound.CueSelect)
	case in.Confirm.Pressed:
		g.sounds.Play(sound.CueDenied)
	case before.category != after.category:
		g.sounds.Play(sound.CueScroll)
	case before.index != after.index:
		g.sounds.Play(sound.CueMove)
	}
}

// reload applies prefab edits picked up by the watcher. A bad edit is
// logged and the previous state kept.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Poll() {
		switch c.Name {
		case prefabs.MenuFile:
			cfg, spec, err := prefabs.LoadMenuConfig()
			if err != nil {
				log.Printf("reload %s: %v", c.Name, err)
				continue
			}
			if err := g.menu.Reconfigure(cfg); err != nil {
				log.Printf("reload %s: %v", c.Name, err)
				continue
			}
			g.palette = assets.DefaultPalette().Merge(paletteOverrides(spec))
			g.atlas.Rebuild(cfg, g.menu.Catalog(), g.palette, g.sprites)
			log.Printf("reloaded %s", c.Name)
		case prefabs.SaveFile:
			snap, err := prefabs.LoadSaveSnapshot()
			if err != nil {
				log.Printf("reload %s: %v", c.Name, err)
				continue
			}
			g.save.Restore(snap)
			log.Printf("reloaded %s", c.Name)
		}
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("watch: %v", err)
		}
	default:
	}
}

func (g *Game) hotkeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.showStatus = !g.showStatus
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.sounds.SetMuted(!g.sounds.Muted())
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		g.writeSave()
	case g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.save.giveAll()
	case g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyF2):
		g.save.clear()
	case g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.menu.Snap()
	}
}

func (g *Game) writeSave() {
	data, err := prefabs.MarshalSave(g.save.Snapshot())
	if err != nil {
		log.Printf("save: %v", err)
		return
	}
	if err := prefabs.Write(prefabs.SaveFile, data); err != nil {
		log.Printf("save: write: %v", err)
		return
	}
	log.Printf("saved %s", prefabs.SaveFile)
}

func (g *Game) shutdown() {
	if g.opts.SaveOnExit {
		g.writeSave()
	}
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watch: close: %v", err)
		}
	}
}
