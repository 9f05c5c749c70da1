package pong

import "fmt"

type Arena struct {
	Width        int
	Height       int
	PaddleWidth  int
	PaddleHeight int
}

func DefaultArena() Arena {
	return Arena{
		Width:        ArenaWidth,
		Height:       ArenaHeight,
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
	}
}

// Validate reports whether the paddles fit strictly inside the arena.
func (a Arena) Validate() error {
	if a.PaddleWidth <= 0 || a.PaddleWidth >= a.Width {
		return fmt.Errorf("paddle width %d does not fit arena width %d", a.PaddleWidth, a.Width)
	}
	if a.PaddleHeight <= 0 || a.PaddleHeight >= a.Height {
		return fmt.Errorf("paddle height %d does not fit arena height %d", a.PaddleHeight, a.Height)
	}
	return nil
}

type Rect struct {
	X, Y int
	W, H int
}

// Intersects follows SDL_HasIntersection: empty rects never intersect and
// touching edges do not count as overlap.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	if r.X >= o.X+o.W || o.X >= r.X+r.W {
		return false
	}
	if r.Y >= o.Y+o.H || o.Y >= r.Y+r.H {
		return false
	}
	return true
}

type Paddle struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (p Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

type Ball struct {
	X, Y  int
	Side  int
	Speed float64
	Theta float64 // 0 is straight down, clockwise positive
}

func (b Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Side, H: b.Side}
}

type Score struct {
	P1Points int
	P2Points int
}

type ScoringEvent int

const (
	None ScoringEvent = iota
	LeftScored
	RightScored
)

func (e ScoringEvent) String() string {
	switch e {
	case None:
		return "none"
	case LeftScored:
		return "left_scored"
	case RightScored:
		return "right_scored"
	default:
		return fmt.Sprintf("ScoringEvent(%d)", int(e))
	}
}

type Direction int

const (
	Up Direction = iota
	Down
)

// Input is the per-tick key snapshot for both players.
type Input struct {
	P1Up   bool
	P1Down bool
	P2Up   bool
	P2Down bool
}

// Frame is what the renderer gets once per tick.
type Frame struct {
	Tick     int
	Left     Rect
	Right    Rect
	Ball     Rect
	P1Points int
	P2Points int
	Event    ScoringEvent
}
