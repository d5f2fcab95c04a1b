package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spacewar/audio"
	"github.com/lixenwraith/spacewar/config"
	"github.com/lixenwraith/spacewar/constants"
	"github.com/lixenwraith/spacewar/core"
	"github.com/lixenwraith/spacewar/engine"
	"github.com/lixenwraith/spacewar/input"
	"github.com/lixenwraith/spacewar/modes"
	"github.com/lixenwraith/spacewar/render"
	"github.com/lixenwraith/spacewar/spectate"
	"github.com/lixenwraith/spacewar/systems"
)

const usage = `Usage: spacewar [flags]

  -config path   TOML config file (default ./spacewar.toml when present)
  -debug         Write debug log to logs/spacewar.log
  -mute          Start with audio disabled
  -spectate addr Serve the spectator feed at ws://addr/ws
  -hold ms       Key hold window in milliseconds, above the terminal's
                 initial key repeat delay
`

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(os.Stderr, usage)
			return 0
		}
		fmt.Fprintf(os.Stderr, "spacewar: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	if cfg.Source != "" {
		log.Printf("config loaded from %s", cfg.Source)
	}

	var feed *spectate.Server
	if cfg.Spectate.Addr != "" {
		if feed, err = spectate.Start(cfg.Spectate.Addr); err != nil {
			fmt.Fprintf(os.Stderr, "spacewar: %v\n", err)
			return 1
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = feed.Shutdown(ctx)
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before reporting the crash
	core.SetCrashScreen(screen)
	defer func() {
		core.HandleCrash(recover())
	}()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game runs silent
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	audioSystem := systems.NewAudioSystem(sound)

	gameCtx := engine.NewGameContext(cfg.Rules(), cfg.Bindings())
	machine := modes.NewMachine(gameCtx)
	renderer := render.NewTerminalRenderer(screen)
	keyboard := input.NewKeyboard(cfg.HoldWindow())
	clock := engine.NewFrameClock(time.Now, constants.MaxFrameDelta)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() { pollEvents(screen, eventChan) })

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			keyboard.HandleEvent(ev, clock.Now())

		case sig := <-signals:
			log.Printf("received %s", sig)
			keyboard.RequestClose()

		case <-frameTicker.C:
			dt := clock.Tick()
			mode := machine.Step(dt, keyboard.Frame(clock.Now()), renderer)
			audioSystem.Drain(gameCtx.Events)

			if feed != nil {
				feed.Offer(clock.Now(), func() spectate.Frame {
					return spectate.Frame{Mode: mode.String(), Snapshot: gameCtx.Snapshot()}
				})
			}

			if mode == modes.ModeQuit {
				log.Printf("quit after tally L%d R%d D%d, %d sounds played",
					gameCtx.Tally.LeftWins, gameCtx.Tally.RightWins, gameCtx.Tally.Draws, sound.Played())
				return 0
			}
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		// nil once the screen is finalized
		if ev == nil {
			return
		}
		out <- ev
	}
}
