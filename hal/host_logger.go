//go:build !tinygo

package hal

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type hostLogger struct {
	zl zerolog.Logger
}

func newHostLogger(level, file string) *hostLogger {
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	if file != "" {
		w = zerolog.MultiLevelWriter(w, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    8, // MB
			MaxBackups: 2,
		})
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return &hostLogger{zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

// lineLevel grades a plain log line so log.level filters it. The Logger
// interface carries no level, so it is read from the text.
func lineLevel(s string) zerolog.Level {
	switch {
	case strings.Contains(s, "panic"), strings.HasPrefix(s, "step: "):
		return zerolog.ErrorLevel
	case strings.Contains(s, "not found"),
		strings.Contains(s, "not recognised"),
		strings.Contains(s, "not available"),
		strings.Contains(s, "degenerate"):
		return zerolog.WarnLevel
	case strings.HasPrefix(s, "/"):
		// File names logged by the blitter before every open.
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *hostLogger) WriteLineString(s string) {
	l.zl.WithLevel(lineLevel(s)).Msg(strings.TrimSpace(s))
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
