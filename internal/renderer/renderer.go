package renderer

import (
	"fmt"
	"io"
	"strings"

	"termpong/internal/ansii"
	"termpong/internal/pong"
)

var (
	paddleStyle = ansii.Colors.White
	ballStyle   = ansii.Colors.Purple
	scoreStyle  = ansii.Styles.Bold + ansii.Colors.Green
)

// Renderer paints frames onto a terminal, scaling arena units to cells.
type Renderer struct {
	out   io.Writer
	arena pong.Arena
	size  func() (int, int, error)
}

func New(out io.Writer, arena pong.Arena) *Renderer {
	return NewWithSize(out, arena, ansii.GetTermSize)
}

// NewWithSize is New with the terminal size lookup swapped out.
func NewWithSize(out io.Writer, arena pong.Arena, size func() (int, int, error)) *Renderer {
	return &Renderer{out: out, arena: arena, size: size}
}

func FormatScore(p1, p2 int) string {
	return fmt.Sprintf("%d-%d", p1, p2)
}

func (r *Renderer) Draw(f pong.Frame) error {
	cols, rows, err := r.size()
	if err != nil {
		return err
	}
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("terminal has no room to draw (%dx%d)", cols, rows)
	}

	var builder strings.Builder
	builder.WriteString(string(ansii.Screen.Home + ansii.Screen.ClearScreen))
	r.drawRect(&builder, f.Left, cols, rows, paddleStyle)
	r.drawRect(&builder, f.Right, cols, rows, paddleStyle)
	r.drawRect(&builder, f.Ball, cols, rows, ballStyle)

	score := FormatScore(f.P1Points, f.P2Points)
	col := (cols-len(score))/2 + 1
	if col < 1 {
		col = 1
	}
	ansii.DrawText(&builder, ansii.Offset{X: col, Y: 1}, score, scoreStyle)

	_, err = io.WriteString(r.out, builder.String())
	return err
}

func (r *Renderer) drawRect(builder *strings.Builder, rect pong.Rect, cols, rows int, style ansii.ANSI) {
	x0, w := scale(rect.X, rect.W, r.arena.Width, cols)
	y0, h := scale(rect.Y, rect.H, r.arena.Height, rows)
	ansii.DrawRect(builder, ansii.Offset{X: x0 + 1, Y: y0 + 1}, h, w, style)
}

// scale maps the span [v, v+n) of an axis of the given length onto cells,
// always covering at least one cell and never leaving the screen.
func scale(v, n, length, cells int) (int, int) {
	start := clamp(v*cells/length, 0, cells-1)
	end := clamp((v+n)*cells/length, 0, cells)
	if end <= start {
		end = start + 1
	}
	return start, end - start
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
