package agent

import (
	"bufio"
	"fmt"
	"io"

	"hurricane/game"
	"hurricane/searcher"
)

type readerAgent struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewReaderAgent returns an agent that reads one whitespace separated action
// token per move from r. A non-nil prompt is written the position before
// each read, for a human at a terminal.
func NewReaderAgent(r io.Reader, prompt io.Writer) Agent {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &readerAgent{scanner: scanner, prompt: prompt}
}

func (a *readerAgent) FindMove(req searcher.Request) (Move, error) {
	if a.prompt != nil {
		fmt.Fprintf(a.prompt, "%s\n%s> ", req.State, req.Mover)
	}
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return Move{}, fmt.Errorf("failed to read action: %w", err)
		}
		return Move{}, fmt.Errorf("failed to read action: %w", io.ErrUnexpectedEOF)
	}
	action, err := game.ParseAction(a.scanner.Text())
	if err != nil {
		return Move{}, err
	}
	return Move{Action: action}, nil
}

func (a *readerAgent) Observe(game.Action) {}
