package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewDefaultsToInfo(t *testing.T) {
	log, err := New("", "production")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer zap.ReplaceGlobals(zap.NewNop())

	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug to be disabled at info level")
	}
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info to be enabled")
	}
}

func TestNewDevelopmentDebug(t *testing.T) {
	log, err := New("DEBUG", "development")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer zap.ReplaceGlobals(zap.NewNop())

	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug to be enabled")
	}
}

func TestNewReplacesGlobal(t *testing.T) {
	log, err := New("warn", "production")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer zap.ReplaceGlobals(zap.NewNop())

	if L().Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected global logger to follow the warn level")
	}
	if log != L() {
		t.Error("expected L to return the logger built by New")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", "production"); err == nil {
		t.Error("expected error for unknown level")
	}
}
