package client

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"termpong/internal/ansii"
	"termpong/internal/pong"
	"termpong/internal/renderer"
)

// InputSource hands the loop one key snapshot per tick.
type InputSource interface {
	Snapshot() pong.Input
}

// FrameSink draws one frame per tick.
type FrameSink interface {
	Draw(pong.Frame) error
}

type Options struct {
	FrameDelay time.Duration
	HoldTicks  int
}

// Game runs m on the controlling terminal until a quit key is pressed. The
// terminal is put in raw mode for the duration and restored on return.
func Game(m *pong.Match, opts Options) error {
	if !ansii.IsTerminal() {
		return errors.New("stdin and stdout must be a terminal")
	}

	prev, err := ansii.MakeTermRaw()
	if err != nil {
		return fmt.Errorf("failed to make terminal raw: %w", err)
	}
	defer ansii.RestoreTerm(prev)

	os.Stdout.WriteString(string(ansii.Screen.HideCursor))
	defer os.Stdout.WriteString(string(ansii.Screen.Home + ansii.Screen.ClearScreen + ansii.Screen.ShowCursor))

	keys := renderer.NewKeyState(opts.HoldTicks)
	quit := make(chan struct{})

	// Input handler
	go pumpInput(os.Stdin, keys, quit)

	return Run(m, keys, renderer.New(os.Stdout, m.Arena()), opts.FrameDelay, quit)
}

// Run is the fixed-delay loop: sample input, tick, draw, sleep. quit is
// checked once per iteration before the next tick starts.
func Run(m *pong.Match, in InputSource, out FrameSink, delay time.Duration, quit <-chan struct{}) error {
	slog.Info("game loop started", slog.String("match", m.ID.String()), slog.Duration("delay", delay))
	for {
		select {
		case <-quit:
			score := m.Score()
			slog.Info("game loop stopped",
				slog.String("match", m.ID.String()),
				slog.String("score", renderer.FormatScore(score.P1Points, score.P2Points)))
			return nil
		default:
		}

		frame := m.Tick(in.Snapshot())
		if err := out.Draw(frame); err != nil {
			return fmt.Errorf("failed to draw frame %d: %w", frame.Tick, err)
		}

		time.Sleep(delay)
	}
}
