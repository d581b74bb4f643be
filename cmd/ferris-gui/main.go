package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/ferris-fighter/audio"
	"github.com/lixenwraith/ferris-fighter/config"
	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/game"
	"github.com/lixenwraith/ferris-fighter/gui"
	"github.com/lixenwraith/ferris-fighter/scores"
	"github.com/lixenwraith/ferris-fighter/spectate"
	"github.com/lixenwraith/ferris-fighter/status"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to the TOML configuration file")
	nameFlag   = flag.String("name", "", "Player name recorded with high scores")
	godFlag    = flag.Bool("god", false, "Ignore all damage to the player")
	boundsFlag = flag.Bool("bounds", false, "Outline collision boxes and show frame stats")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ferris-gui: %v\n", err)
		os.Exit(2)
	}
	if *nameFlag != "" {
		cfg.Game.PlayerName = *nameFlag
	}
	cfg.Debug.GodMode = cfg.Debug.GodMode || *godFlag
	cfg.Debug.ShowBounds = cfg.Debug.ShowBounds || *boundsFlag
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ferris-gui: %v\n", err)
		os.Exit(1)
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

	session := game.NewSession(cfg.Settings(), engine.NewMonotonicTimeProvider(), status.NewRegistry())
	session.Register(recorder)

	title := cfg.Game.Title
	if title == "" {
		title = constants.DefaultTitle
	}
	opts := gui.Options{Title: title, ShowBounds: cfg.Debug.ShowBounds}
	table := recorder.Table()
	if best, ok := table.Best(); ok {
		opts.Best = best.Score
	}

	if cfg.Audio.Enabled {
		sound := audio.Start(cfg.Audio.Volume)
		defer sound.Cleanup()
		session.Register(audio.NewEventHandler(sound))
		opts.Mute = sound.ToggleMute
	}

	if cfg.Spectate.Addr != "" {
		hub := spectate.NewHub()
		if _, err := hub.Start(cfg.Spectate.Addr); err != nil {
			return fmt.Errorf("start spectator feed: %w", err)
		}
		defer hub.Close()
		opts.OnFrame = func(snap game.Snapshot) {
			if spectate.Due(snap.Frame) {
				if err := hub.Publish(snap); err != nil {
					log.Printf("spectate: %v", err)
				}
			}
		}
	}

	return gui.Run(gui.New(session, opts))
}
