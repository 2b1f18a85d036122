package logging

import (
	"bytes"
	"os"
	"testing"
)

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, LevelInfo)
	defer SetOutput(os.Stderr, LevelWarning)

	Debug("debug %d", 1)
	if buf.Len() != 0 {
		t.Errorf("debug message written at level info: %q", buf.String())
	}

	Info("info %d", 2)
	if !bytes.Contains(buf.Bytes(), []byte("I ")) || !bytes.Contains(buf.Bytes(), []byte("info 2")) {
		t.Errorf("info message missing: %q", buf.String())
	}

	buf.Reset()
	SetLevel(LevelNone)
	Error("error")
	if buf.Len() != 0 {
		t.Errorf("message written at level none: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarning,
		"error":   LevelError,
		"none":    LevelNone,
	}
	for s, expected := range cases {
		l, err := ParseLevel(s)
		if err != nil {
			t.Errorf("failed to parse %q: %v", s, err)
		}
		if l != expected {
			t.Errorf("unexpected level for %q: %v", s, l)
		}
	}

	_, err := ParseLevel("verbose")
	if err == nil {
		t.Errorf("invalid level was accepted")
	}
}
