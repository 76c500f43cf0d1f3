package logger

import (
	"context"
	"testing"
)

func TestInitAndGet(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	ctx := context.Background()
	Get().Info(ctx, "test message", String("k", "v"), Int("n", 1))
	Named("sub").Debug(ctx, "named message", Any("v", []int{1, 2}))
}

func TestSetLevelString(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", ""} {
		if err := SetLevelString(level); err != nil {
			t.Errorf("SetLevelString(%q) failed: %v", level, err)
		}
	}
	if err := SetLevelString("shout"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNop(t *testing.T) {
	n := Nop()
	n.Info(context.Background(), "discarded", Error(nil))
	if n.Named("x") == nil {
		t.Fatal("nop Named returned nil")
	}
}
