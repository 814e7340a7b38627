//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"lights-out/internal/app"
	"lights-out/internal/core"
	_ "lights-out/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.WithError(err).Fatal("load config")
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.WithError(err).Fatal("configure logging")
	}
	log = logger

	factory, ok := core.Puzzles()[cfg.Puzzle]
	if !ok {
		log.WithField("known", core.PuzzleNames()).Fatalf("unknown puzzle %q", cfg.Puzzle)
	}
	puzzle, err := factory(cfg.PuzzleOptions())
	if err != nil {
		log.WithError(err).Fatal("create puzzle")
	}

	ebiten.SetWindowTitle("Lights Out")
	game := app.New(puzzle, cfg, log)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run game")
	}
}
