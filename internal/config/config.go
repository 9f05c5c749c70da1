package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var Config Configuration

type Configuration struct {
	LogLevel     int    `json:"logLevel"`
	LogFile      string `json:"logFile"`
	FrameDelayMs int    `json:"frameDelayMs"`
	HoldTicks    int    `json:"holdTicks"`
	RandomServe  bool   `json:"randomServe"`
	Seed         uint64 `json:"seed"`
}

func Default() Configuration {
	return Configuration{
		LogLevel:     int(slog.LevelInfo),
		LogFile:      "termpong.log",
		FrameDelayMs: 16,
		HoldTicks:    4,
	}
}

func (c Configuration) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}

// LoadConfig reads the JSON config at path (config.json when empty), then
// applies .env and PONG_* environment overrides. Anything missing or
// malformed leaves the defaults in place.
func LoadConfig(path string) {
	Config = Load(path, ".env")
}

func Load(path, envPath string) Configuration {
	c := Default()

	if path == "" {
		path = "config.json"
	}
	cf, err := os.ReadFile(path)
	if err != nil {
		slog.Info("failed to open config at path provided, using default config instead", slog.String("path", path))
	} else if err = json.Unmarshal(cf, &c); err != nil {
		slog.Info("failed to read configuration, using default config instead...", slog.Any("error", err))
		c = Default()
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Info("failed to load env file", slog.String("path", envPath), slog.Any("error", err))
		}
	}
	applyEnv(&c)

	if c.FrameDelayMs < 0 {
		c.FrameDelayMs = 0
	}
	if c.HoldTicks < 1 {
		c.HoldTicks = 1
	}
	return c
}

func applyEnv(c *Configuration) {
	if v, ok := os.LookupEnv("PONG_LOG_FILE"); ok {
		c.LogFile = v
	}
	envInt("PONG_LOG_LEVEL", &c.LogLevel)
	envInt("PONG_FRAME_DELAY_MS", &c.FrameDelayMs)
	envInt("PONG_HOLD_TICKS", &c.HoldTicks)

	if v, ok := os.LookupEnv("PONG_RANDOM_SERVE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Info("ignoring bad env override", slog.String("key", "PONG_RANDOM_SERVE"), slog.Any("error", err))
		} else {
			c.RandomServe = b
		}
	}
	if v, ok := os.LookupEnv("PONG_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			slog.Info("ignoring bad env override", slog.String("key", "PONG_SEED"), slog.Any("error", err))
		} else {
			c.Seed = n
		}
	}
}

func envInt(key string, dst *int) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Info("ignoring bad env override", slog.String("key", key), slog.Any("error", err))
		return
	}
	*dst = n
}
