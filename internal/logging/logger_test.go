package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	if err != nil || lvl != zapcore.WarnLevel {
		t.Fatalf("expected warn default, got %v %v", lvl, err)
	}
	lvl, err = ParseLevel(" DEBUG ")
	if err != nil || lvl != zapcore.DebugLevel {
		t.Fatalf("expected debug, got %v %v", lvl, err)
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewRejectsUnknownMode(t *testing.T) {
	if _, err := New("verbose", "info"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if _, err := New("dev", "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewBuildsBothModes(t *testing.T) {
	for _, mode := range []string{"", ModeDevelopment, ModeProduction} {
		logger, err := New(mode, "error")
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		logger.Debug("hidden")
	}
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := &Logger{SugaredLogger: zap.New(core).Sugar()}

	logger.With("group", "Geography").Info("loaded", "questions", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["group"] != "Geography" || fields["questions"] != int64(3) {
		t.Fatalf("unexpected fields %v", fields)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected nop logger")
	}
	logger := Nop()
	if OrNop(logger) != logger {
		t.Fatalf("expected same logger")
	}
}
