// Command lightsout-term plays Lights Out in the terminal.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"lights-out/internal/app"
	"lights-out/internal/session"
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

	s, err := session.New(cfg.Board())
	if err != nil {
		log.WithError(err).Fatal("create session")
	}
	if err := newPlayer(s, os.Stdout, log).run(os.Stdin); err != nil {
		log.WithError(err).Fatal("play")
	}
}
