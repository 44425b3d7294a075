package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Config struct {
	Debug bool
	// Out receives log records; nil means stderr.
	Out io.Writer
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs the process logger. The returned func restores the
// discarding logger.
func Setup(cfg Config) func() {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// Drop timestamps.
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	global.Debug("logger.initialized", "debug", cfg.Debug)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
