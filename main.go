package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hylian-modding/OcarinaOfTime-LiveMenu/prefabs"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (status panel, F1 give all, F2 clear, F3 snap)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "reload prefabs/menu.yaml and prefabs/save.yaml when they change")
	saveOnExit := flag.Bool("save", false, "write the save state to prefabs/save.yaml on exit")
	mute := flag.Bool("mute", false, "start with sounds muted")
	frameTime := flag.Float64("frametime", 0, "fixed seconds per tick (0 = 1/TPS)")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory holding prefab overrides")
	spriteDir := flag.String("sprites", "", "directory of PNG sprites named after their asset")
	scale := flag.Int("scale", 3, "window scale")
	flag.Parse()

	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth*max(*scale, 1), baseHeight*max(*scale, 1))
	ebiten.SetWindowTitle("live menu")
	ebiten.SetWindowClosingHandled(true)

	game, err := NewGame(Options{
		Debug:      *debug,
		Watch:      *watch,
		SaveOnExit: *saveOnExit,
		Mute:       *mute,
		FrameTime:  *frameTime,
		SpriteDir:  *spriteDir,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
