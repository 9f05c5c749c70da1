package pong

import (
	"log/slog"

	"github.com/google/uuid"
)

type Match struct {
	ID uuid.UUID

	arena Arena
	serve HeadingSource
	log   *slog.Logger

	tick  int // completed ticks
	left  Paddle
	right Paddle
	ball  Ball
	score Score
}

// NewMatch sets up paddles, ball and a zero score. A nil serve falls back to
// the fixed diagonal heading.
func NewMatch(arena Arena, serve HeadingSource) *Match {
	if serve == nil {
		serve = FixedHeading(ServeHeading)
	}
	id := uuid.New()
	m := &Match{
		ID:    id,
		arena: arena,
		serve: serve,
		log:   slog.With(slog.String("match", id.String())),
		left:  arena.LeftPaddle(),
		right: arena.RightPaddle(),
	}
	m.ball = arena.NewBall(serve.Heading())

	m.log.Info("match initialized",
		slog.Int("width", arena.Width),
		slog.Int("height", arena.Height),
		slog.Float64("theta", m.ball.Theta))
	return m
}

// Tick advances the match by one step: paddles first, then the ball, then
// scoring. The returned frame reflects the state after any ball reset.
func (m *Match) Tick(in Input) Frame {
	if in.P1Up {
		m.arena.MovePaddle(&m.left, Up)
	}
	if in.P1Down {
		m.arena.MovePaddle(&m.left, Down)
	}
	if in.P2Up {
		m.arena.MovePaddle(&m.right, Up)
	}
	if in.P2Down {
		m.arena.MovePaddle(&m.right, Down)
	}

	ev, hit := m.arena.step(&m.ball, &m.left, &m.right)
	if hit != hitNone {
		m.log.Debug("paddle collision",
			slog.String("paddle", hit.String()),
			slog.Float64("theta", m.ball.Theta),
			slog.Float64("speed", m.ball.Speed))
	}

	switch ev {
	case LeftScored:
		m.score.P1Points++
	case RightScored:
		m.score.P2Points++
	}
	if ev != None {
		m.arena.ResetBall(&m.ball, m.serve.Heading())
		m.log.Info("point scored",
			slog.String("event", ev.String()),
			slog.Int("p1", m.score.P1Points),
			slog.Int("p2", m.score.P2Points))
	}

	m.log.Debug("ball",
		slog.Int("tick", m.tick),
		slog.Int("x", m.ball.X),
		slog.Int("y", m.ball.Y),
		slog.Float64("theta", m.ball.Theta),
		slog.Float64("speed", m.ball.Speed))

	m.tick++
	return m.frame(ev)
}

// Frame returns the current snapshot without stepping.
func (m *Match) Frame() Frame {
	return m.frame(None)
}

func (m *Match) Score() Score {
	return m.score
}

func (m *Match) Arena() Arena {
	return m.arena
}

func (m *Match) frame(ev ScoringEvent) Frame {
	return Frame{
		Tick:     m.tick,
		Left:     m.left.Rect(),
		Right:    m.right.Rect(),
		Ball:     m.ball.Rect(),
		P1Points: m.score.P1Points,
		P2Points: m.score.P2Points,
		Event:    ev,
	}
}
