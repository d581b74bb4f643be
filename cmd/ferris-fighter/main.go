package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ferris-fighter/audio"
	"github.com/lixenwraith/ferris-fighter/config"
	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/game"
	"github.com/lixenwraith/ferris-fighter/input"
	"github.com/lixenwraith/ferris-fighter/render"
	"github.com/lixenwraith/ferris-fighter/scores"
	"github.com/lixenwraith/ferris-fighter/spectate"
	"github.com/lixenwraith/ferris-fighter/status"
)

var (
	configFlag   = flag.String("config", config.DefaultPath, "Path to the TOML configuration file")
	nameFlag     = flag.String("name", "", "Player name recorded with high scores")
	seedFlag     = flag.Uint64("seed", 0, "Random seed; 0 picks one from the clock")
	godFlag      = flag.Bool("god", false, "Ignore all damage to the player")
	boundsFlag   = flag.Bool("bounds", false, "Outline collision boxes")
	muteFlag     = flag.Bool("mute", false, "Start with sound effects muted")
	spectateFlag = flag.String("spectate", "", "Serve a spectator feed on this address, e.g. :8080")
	logFlag      = flag.Bool("debug", false, "Write a debug log under the log directory")
	writeFlag    = flag.Bool("write-config", false, "Write the effective configuration to -config and exit")
)

func main() {
	// Restore the terminal before reporting a crash on the main goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ferris-fighter: %v\n", err)
		os.Exit(2)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ferris-fighter: %v\n", err)
		os.Exit(2)
	}

	if *writeFlag {
		if err := config.Save(*configFlag, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "ferris-fighter: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logFile := setupLogging(cfg.Log.Enabled, cfg.Log.Dir)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		if logFile != nil {
			logFile.Close()
		}
		fmt.Fprintf(os.Stderr, "ferris-fighter: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides configuration values with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			cfg.Game.PlayerName = *nameFlag
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "god":
			cfg.Debug.GodMode = *godFlag
		case "bounds":
			cfg.Debug.ShowBounds = *boundsFlag
		case "spectate":
			cfg.Spectate.Addr = *spectateFlag
		case "debug":
			cfg.Log.Enabled = *logFlag
		}
	})
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}
}

func run(cfg config.Config) error {
	store, err := scores.Open(cfg.Scores.Backend, cfg.Scores.Path, cfg.Scores.DSN)
	if err != nil {
		return fmt.Errorf("open scores: %w", err)
	}
	defer store.Close()

	recorder, err := scores.NewRecorder(store)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	metrics := status.NewRegistry()
	session := game.NewSession(cfg.Settings(), engine.NewMonotonicTimeProvider(), metrics)
	session.Register(recorder)

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.Start(cfg.Audio.Volume)
		defer sound.Cleanup()
		sound.SetMuted(*muteFlag)
		session.Register(audio.NewEventHandler(sound))
	}

	var hub *spectate.Hub
	if cfg.Spectate.Addr != "" {
		hub = spectate.NewHub()
		if _, err := hub.Start(cfg.Spectate.Addr); err != nil {
			return fmt.Errorf("start spectator feed: %w", err)
		}
		defer hub.Close()
	}

	tracker := input.NewTracker(time.Now)
	resize := make(chan tcell.Event, 8)
	input.Poll(screen, tracker, resize)

	renderer := render.NewTerminalRenderer(screen, cfg.Debug.ShowBounds)
	title := cfg.Game.Title
	if title == "" {
		title = constants.DefaultTitle
	}

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-resize:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			continue
		case <-ticker.C:
		}

		if tracker.TakeMuteToggle() && sound != nil {
			sound.ToggleMute()
		}

		err := session.Update(tracker.Input())
		if errors.Is(err, game.ErrQuit) {
			log.Printf("quit, metrics %v", metrics.IntSnapshot())
			return nil
		}
		if err != nil {
			return err
		}

		snap := session.Snapshot()
		if hub != nil && spectate.Due(snap.Frame) {
			if err := hub.Publish(snap); err != nil {
				log.Printf("spectate: %v", err)
			}
		}

		renderer.RenderFrame(snap, render.HUD{
			Title:    title,
			Best:     bestScore(recorder),
			Autofire: tracker.Autofire(),
			Muted:    sound != nil && sound.Muted(),
		})
	}
}

func bestScore(r *scores.Recorder) int {
	table := r.Table()
	if best, ok := table.Best(); ok {
		return best.Score
	}
	return 0
}
