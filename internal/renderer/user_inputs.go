package renderer

import (
	"sync"
	"unicode/utf8"

	"termpong/internal/pong"
)

type UiAction rune

const (
	Unknown   UiAction = iota
	Interrupt UiAction = 3  // Ctrl-C, raw mode swallows SIGINT
	Quit      UiAction = 81 // 'Q'
	Up        UiAction = 87 // 'W'
	Down      UiAction = 83 // 'S'
	UpArrow   UiAction = 8593
	DownArrow UiAction = 8595
)

func ProcessInput(rawInput rune) (action UiAction) {
	inputVal := int(rawInput)
	// Convert to UpperCase
	if inputVal >= 97 && inputVal <= 122 {
		inputVal = inputVal - 32
	}
	switch a := UiAction(inputVal); a {
	case Interrupt, Quit, Up, Down, UpArrow, DownArrow:
		return a
	}
	return Unknown
}

// ParseInput splits one stdin read into actions. Arrow keys arrive as
// ESC [ A / ESC [ B, or ESC O A / ESC O B in application cursor mode.
func ParseInput(buf []byte) []UiAction {
	var actions []UiAction
	for i := 0; i < len(buf); {
		if buf[i] == 27 && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			switch buf[i+2] {
			case 'A':
				actions = append(actions, UpArrow)
			case 'B':
				actions = append(actions, DownArrow)
			default:
				actions = append(actions, Unknown)
			}
			i += 3
			continue
		}
		r, size := utf8.DecodeRune(buf[i:])
		actions = append(actions, ProcessInput(r))
		i += size
	}
	return actions
}

const (
	p1Up = iota
	p1Down
	p2Up
	p2Down
	numKeys
)

// KeyState turns a stream of key presses into per-tick snapshots. Terminals
// report presses but not releases, so each press counts as held for a fixed
// number of ticks.
type KeyState struct {
	mu        sync.Mutex
	hold      int
	remaining [numKeys]int
}

func NewKeyState(holdTicks int) *KeyState {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyState{hold: holdTicks}
}

// Feed records the presses in buf and reports whether a quit key was seen.
// Keys after a quit key are dropped.
func (k *KeyState) Feed(buf []byte) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, action := range ParseInput(buf) {
		switch action {
		case Quit, Interrupt:
			return true
		case Up:
			k.press(p1Up, p1Down)
		case Down:
			k.press(p1Down, p1Up)
		case UpArrow:
			k.press(p2Up, p2Down)
		case DownArrow:
			k.press(p2Down, p2Up)
		}
	}
	return false
}

// press latches key and drops its opposite so a reversal takes effect on the
// next tick.
func (k *KeyState) press(key, opposite int) {
	k.remaining[key] = k.hold
	k.remaining[opposite] = 0
}

// Snapshot returns the keys held for this tick and ages every latch by one.
func (k *KeyState) Snapshot() pong.Input {
	k.mu.Lock()
	defer k.mu.Unlock()

	in := pong.Input{
		P1Up:   k.remaining[p1Up] > 0,
		P1Down: k.remaining[p1Down] > 0,
		P2Up:   k.remaining[p2Up] > 0,
		P2Down: k.remaining[p2Down] > 0,
	}
	for i := range k.remaining {
		if k.remaining[i] > 0 {
			k.remaining[i]--
		}
	}
	return in
}
