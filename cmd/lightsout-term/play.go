package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"lights-out/internal/session"
	"lights-out/pkg/lightsout"
)

const helpText = `Commands:
  y x | y-x   flip the cell at row y, column x
  new         deal a new board
  replay      deal the current board again
  help        show this help
  quit        leave the game`

type player struct {
	s   *session.Session
	out io.Writer
	log *logrus.Logger
	p   *message.Printer
}

func newPlayer(s *session.Session, out io.Writer, log *logrus.Logger) *player {
	return &player{s: s, out: out, log: log, p: message.NewPrinter(language.English)}
}

func (pl *player) fields() logrus.Fields {
	cfg := pl.s.Config()
	return logrus.Fields{
		"session": pl.s.ID(),
		"seed":    pl.s.Seed(),
		"rows":    cfg.Rows,
		"cols":    cfg.Cols,
		"chance":  cfg.Chance,
	}
}

// run reads commands from in until quit or EOF.
func (pl *player) run(in io.Reader) error {
	pl.log.WithFields(pl.fields()).Debug("new board")
	pl.show()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(pl.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(pl.out)
			return scanner.Err()
		}
		quit, err := pl.handle(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(pl.out, err)
			continue
		}
		if quit {
			return nil
		}
	}
}

var errSolved = errors.New("the board is solved: type new, replay or quit")

// handle executes one command line and reports whether the player quit.
func (pl *player) handle(line string) (bool, error) {
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "h", "help", "?":
		fmt.Fprintln(pl.out, helpText)
		return false, nil
	case "n", "new":
		pl.s.Reset(0)
		pl.log.WithFields(pl.fields()).Debug("new board")
		pl.show()
		return false, nil
	case "r", "replay":
		pl.s.Replay()
		pl.log.WithFields(pl.fields()).Debug("replay board")
		pl.show()
		return false, nil
	}

	c, err := lightsout.ParseCoord(line)
	if err != nil {
		return false, fmt.Errorf("%v (type help for commands)", err)
	}
	if pl.s.Solved() {
		return false, errSolved
	}
	if !pl.s.Flip(c.Y, c.X) {
		cfg := pl.s.Config()
		return false, fmt.Errorf("%s is off the %dx%d board", c, cfg.Rows, cfg.Cols)
	}
	pl.show()
	if pl.s.Solved() {
		fields := pl.fields()
		fields["moves"] = pl.s.Moves()
		pl.log.WithFields(fields).Info("puzzle solved")
	}
	return false, nil
}

// show prints the board with row and column labels, or the win message.
func (pl *player) show() {
	if pl.s.Solved() {
		fmt.Fprintln(pl.out, "You've won!")
		pl.p.Fprintf(pl.out, "Solved in %d moves. Type new, replay or quit.\n", pl.s.Moves())
		return
	}
	grid := pl.s.Board().Grid()
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < grid.Cols(); x++ {
		fmt.Fprintf(&sb, "%3d", x)
	}
	sb.WriteByte('\n')
	for y, line := range strings.Split(grid.String(), "\n") {
		fmt.Fprintf(&sb, "%3d", y)
		for _, cell := range strings.Fields(line) {
			fmt.Fprintf(&sb, "%3s", cell)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(pl.out, sb.String())
	pl.p.Fprintf(pl.out, "Lit: %d  Moves: %d  Seed: %d\n", pl.s.Board().LitCount(), pl.s.Moves(), pl.s.Seed())
}
