package client

import (
	"io"
	"log/slog"

	"termpong/internal/renderer"
)

// pumpInput feeds raw key bytes from r into keys until a quit key arrives or
// the reader fails, then closes quit.
func pumpInput(r io.Reader, keys *renderer.KeyState, quit chan<- struct{}) {
	defer close(quit)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 && keys.Feed(buf[:n]) {
			slog.Debug("quit key pressed")
			return
		}
		if err == io.EOF {
			slog.Debug("input closed")
			return
		}
		if err != nil {
			slog.Error("error reading from stdin", slog.Any("error", err))
			return
		}
	}
}
