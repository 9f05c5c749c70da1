package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"termpong/internal/client"
	"termpong/internal/config"
	"termpong/internal/pong"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}

	logFile, err := setupLogging(config.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "termpong:", err)
		os.Exit(1)
	}

	err = run(config.Config)
	if err != nil {
		slog.Error("termpong exited with error", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "termpong:", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// The terminal is the game screen, so logs go to a file unless logFile is "-".
func setupLogging(c config.Configuration) (*os.File, error) {
	var w io.Writer = os.Stderr
	var f *os.File
	if c.LogFile != "-" {
		var err error
		f, err = os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.Level(c.LogLevel),
	})))
	return f, nil
}

func run(c config.Configuration) error {
	arena := pong.DefaultArena()
	if err := arena.Validate(); err != nil {
		return fmt.Errorf("invalid arena: %w", err)
	}

	var serve pong.HeadingSource = pong.FixedHeading(pong.ServeHeading)
	if c.RandomServe {
		seed := c.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		serve = pong.NewRandomHeading(seed)
	}

	m := pong.NewMatch(arena, serve)
	fmt.Println("Welcome to termpong! W/S and Up/Down move the paddles, Q quits.")

	return client.Game(m, client.Options{
		FrameDelay: c.FrameDelay(),
		HoldTicks:  c.HoldTicks,
	})
}
