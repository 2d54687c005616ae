package obslog

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"chatty":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	for _, format := range []string{"json", "console", "other"} {
		l := New("warn", format)
		if l.Core().Enabled(zapcore.InfoLevel) {
			t.Errorf("%s logger should drop info at warn level", format)
		}
		if !l.Core().Enabled(zapcore.ErrorLevel) {
			t.Errorf("%s logger should keep errors", format)
		}
	}
}
