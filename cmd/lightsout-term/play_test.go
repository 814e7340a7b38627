package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"lights-out/internal/session"
	"lights-out/pkg/lightsout"
)

func newTestPlayer(t *testing.T, cfg lightsout.Config) (*player, *bytes.Buffer) {
	t.Helper()
	s, err := session.New(cfg)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	var out bytes.Buffer
	return newPlayer(s, &out, log), &out
}

func TestRunPlaysToWin(t *testing.T) {
	pl, out := newTestPlayer(t, lightsout.Config{Rows: 1, Cols: 1, Chance: 1, Seed: 3})

	script := "help\nfoo\n0 5\n0-0\n0 0\nquit\nnever reached\n"
	if err := pl.run(strings.NewReader(script)); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Commands:",
		"invalid coordinate",
		"0-5 is off the 1x1 board",
		"You've won!",
		"Solved in 1 moves.",
		"the board is solved",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if pl.s.Moves() != 1 {
		t.Fatalf("moves = %d, want 1", pl.s.Moves())
	}
}

func TestRunStopsAtEOF(t *testing.T) {
	pl, _ := newTestPlayer(t, lightsout.Config{Rows: 2, Cols: 2, Chance: 1, Seed: 3})
	if err := pl.run(strings.NewReader("0 0\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if pl.s.Moves() != 1 {
		t.Fatalf("moves = %d, want 1", pl.s.Moves())
	}
}

func TestShowPrintsLabelledBoard(t *testing.T) {
	pl, out := newTestPlayer(t, lightsout.Config{Rows: 2, Cols: 3, Chance: 1, Seed: 3})
	pl.show()
	want := "     0  1  2\n  0  O  O  O\n  1  O  O  O\n"
	if !strings.HasPrefix(out.String(), want) {
		t.Fatalf("board output = %q, want prefix %q", out.String(), want)
	}
	if !strings.Contains(out.String(), "Lit: 6  Moves: 0  Seed: 3") {
		t.Fatalf("status line missing in %q", out.String())
	}
}

func TestReplayAndNew(t *testing.T) {
	pl, _ := newTestPlayer(t, lightsout.Config{Rows: 4, Cols: 4, Chance: 0.5, Seed: 21})
	initial := pl.s.Board().Grid()

	if _, err := pl.handle("1 1"); err != nil {
		t.Fatalf("flip: %v", err)
	}
	if quit, err := pl.handle("replay"); quit || err != nil {
		t.Fatalf("replay = %v, %v", quit, err)
	}
	if !pl.s.Board().Grid().Equal(initial) || pl.s.Moves() != 0 {
		t.Fatal("replay should restore the initial board and clear moves")
	}
	if _, err := pl.handle("new"); err != nil {
		t.Fatalf("new: %v", err)
	}
	if pl.s.Seed() == 21 {
		t.Fatal("new should draw a different seed")
	}
}
