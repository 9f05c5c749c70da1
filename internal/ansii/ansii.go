package ansii

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	plain       ANSI = ""
	bold        ANSI = "\033[1m"
	black       ANSI = "\033[30m"
	red         ANSI = "\033[31m"
	green       ANSI = "\033[32m"
	yellow      ANSI = "\033[33m"
	blue        ANSI = "\033[34m"
	purple      ANSI = "\033[35m"
	cyan        ANSI = "\033[36m"
	white       ANSI = "\033[37m"
	home        ANSI = "\033[H"
	clearScreen ANSI = "\033[2J"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
)

// Offset is a 1-based terminal cell, column X and row Y.
type Offset struct {
	X int
	Y int
}

type style struct {
	Reset ANSI
	Plain ANSI
	Bold  ANSI
}

type color struct {
	Black  ANSI
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Blue   ANSI
	Purple ANSI
	Cyan   ANSI
	White  ANSI
}

type screen struct {
	Home        ANSI
	ClearScreen ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
}

type ascii struct {
	Block string
}

var (
	Styles = style{Bold: bold, Reset: reset, Plain: plain}
	Colors = color{Black: black, Red: red, Green: green, Yellow: yellow, Blue: blue, Purple: purple, Cyan: cyan, White: white}
	Screen = screen{Home: home, ClearScreen: clearScreen, HideCursor: hideCursor, ShowCursor: showCursor}
	Blocks = ascii{Block: "█"}
)

func GetTermSize() (width int, height int, err error) {
	width, height, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("error getting terminal size: %w", err)
	}
	return width, height, nil
}

func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// MakeTermRaw switches stdin to raw mode so single key presses arrive
// without a newline. Callers must RestoreTerm with the returned state.
func MakeTermRaw() (*term.State, error) {
	return term.MakeRaw(int(os.Stdin.Fd()))
}

func RestoreTerm(prev *term.State) error {
	return term.Restore(int(os.Stdin.Fd()), prev)
}

func (s screen) PlaceCursor(o Offset) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", o.Y, o.X))
}

// DrawRect fills a width x height block of cells whose top left cell is
// offset. Nothing is drawn for non-positive sizes.
func DrawRect(builder *strings.Builder, offset Offset, height int, width int, style ANSI) {
	if height <= 0 || width <= 0 {
		return
	}
	row := strings.Repeat(Blocks.Block, width)
	builder.WriteString(string(style))
	for hIdx := range height {
		builder.WriteString(string(Screen.PlaceCursor(Offset{X: offset.X, Y: offset.Y + hIdx})))
		builder.WriteString(row)
	}
	builder.WriteString(string(Styles.Reset))
}

func DrawText(builder *strings.Builder, offset Offset, text string, style ANSI) {
	builder.WriteString(string(style))
	builder.WriteString(string(Screen.PlaceCursor(offset)))
	builder.WriteString(text)
	builder.WriteString(string(Styles.Reset))
}
