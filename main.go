package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/soramame/chordfall/audio"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/engine"
	"github.com/soramame/chordfall/game"
	"github.com/soramame/chordfall/input"
	"github.com/soramame/chordfall/render"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "rng seed for the session")
	character := flag.String("character", "bard", "starting character preset")
	contentPath := flag.String("content", "", "optional yaml content file")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	if err := run(*seed, *character, *contentPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "chordfall: %v\n", err)
		os.Exit(1)
	}
}

func run(seed int64, character, contentPath string, mute bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	g, err := game.New(game.Config{
		Seed:        seed,
		Character:   character,
		ContentPath: contentPath,
	})
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(mute)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the game runs silent.
		log.Printf("audio init failed: %v", err)
	}
	defer sound.Cleanup()

	handler := input.NewHandler(g.Input)
	renderer := render.NewRenderer(screen)
	clock := engine.NewPausableClock()

	actions := make(chan input.Action, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a := handler.HandleKey(ev); a != input.ActionNone {
					actions <- a
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	ticker := time.NewTicker(constant.TickInterval)
	defer ticker.Stop()

	last := clock.Elapsed()
	for {
		select {
		case a := <-actions:
			switch a {
			case input.ActionQuit:
				return nil
			case input.ActionTogglePause:
				if clock.IsPaused() {
					clock.Resume()
				} else {
					clock.Pause()
				}
			}
		case <-ticker.C:
			if clock.IsPaused() {
				continue
			}
			now := clock.Elapsed()
			dt := now - last
			last = now
			if dt <= 0 {
				continue
			}

			snap, batch := g.Tick(dt)
			sound.Handle(batch)
			renderer.Draw(snap)
		}
	}
}
