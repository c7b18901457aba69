package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewRespectsLevel(t *testing.T) {
	l, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Core().Enabled(zapcore.InfoLevel) {
		t.Errorf("expected info level to be enabled")
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("did not expect debug level to be enabled")
	}

	l, err = New("debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("expected debug level to be enabled")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
