//go:build !tinygo

package hal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLineLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"/silhouettes/B738.bmp":            zerolog.DebugLevel,
		" File not found":                  zerolog.WarnLevel,
		"BMP format not recognised":        zerolog.WarnLevel,
		"weather station: not available":   zerolog.WarnLevel,
		"PlaneSpotter panic: boom":         zerolog.ErrorLevel,
		"screen: main menu":                zerolog.InfoLevel,
		"map: centre Schiphol (52.3, 4.7)": zerolog.InfoLevel,
	}
	for line, want := range cases {
		if got := lineLevel(line); got != want {
			t.Fatalf("lineLevel(%q) = %v; want %v", line, got, want)
		}
	}
}

func TestHostLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := &hostLogger{zl: zerolog.New(&buf).Level(zerolog.WarnLevel)}

	l.WriteLineString("screen: map")
	l.WriteLineString("/silhouettes/A319.bmp")
	l.WriteLineBytes([]byte(" File not found"))

	out := buf.String()
	if strings.Contains(out, "screen: map") || strings.Contains(out, "A319") {
		t.Fatalf("lines below warn written: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, `"message":"File not found"`) {
		t.Fatalf("warning missing: %s", out)
	}
}
