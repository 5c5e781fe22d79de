package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.V(1).Info("hidden detail")
	log.Info("visible", "task", "build")
	got := buf.String()
	if strings.Contains(got, "hidden detail") {
		t.Fatalf("expected debug message to be suppressed, got %q", got)
	}
	if !strings.Contains(got, "visible") || !strings.Contains(got, "build") {
		t.Fatalf("expected info message with key/value, got %q", got)
	}

	buf.Reset()
	log, err = New("debug", &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.V(1).Info("resolved task")
	if !strings.Contains(buf.String(), "resolved task") {
		t.Fatalf("expected debug message at debug level, got %q", buf.String())
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
