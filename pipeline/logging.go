package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"

	"github.com/katalvlaran/medax"
)

// LogConfig selects where and how verbosely the medax logger writes.
type LogConfig struct {
	// Logfile, if set, receives logs through a size-rotated writer;
	// otherwise logs go to stderr.
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
	// Level is debug, info, warn or error. Empty means info.
	Level string `toml:"level"`
}

func (c LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.Level))); err != nil {
		return lvl, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Level)
	}

	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Install makes a text handler at the configured level the medax logger.
// The returned Closer releases the log file; it is a no-op for stderr.
func (c LogConfig) Install() (io.Closer, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if c.Logfile != "" {
		l := &lumberjack.Logger{
			Filename: c.Logfile,
			MaxSize:  c.MaxSize,
			MaxAge:   c.MaxAge,
		}
		w, closer = l, l
	}
	medax.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))

	return closer, nil
}
