package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesPrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "starcatch")

	logger.Info("round over", "score", 120)

	out := buf.String()
	for _, want := range []string{"starcatch", "round over", "score=120"} {
		if !strings.Contains(out, want) {
			t.Errorf("Log line %q missing %q", out, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"warn", log.WarnLevel, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")

	for i := 0; i < 2; i++ {
		w, closeFn, err := OpenFile(path)
		if err != nil {
			t.Fatalf("OpenFile() failed: %v", err)
		}
		New(w, "").Info("line")
		if err := closeFn(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if n := strings.Count(string(data), "line"); n != 2 {
		t.Errorf("Expected 2 log lines, got %d", n)
	}
}

func TestOpenFileSpecialPaths(t *testing.T) {
	w, _, err := OpenFile("-")
	if err != nil || w != os.Stderr {
		t.Errorf("OpenFile(\"-\") = %v, %v; want stderr", w, err)
	}

	w, _, err = OpenFile("")
	if err != nil || w != io.Discard {
		t.Errorf("OpenFile(\"\") = %v, %v; want discard", w, err)
	}
}
