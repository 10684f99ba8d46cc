package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/olivier-w/cord/internal/config"
)

func TestRunHeadlessWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cord.png")

	if err := runHeadless(config.Default(), path, 50, 30); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected snapshot: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty snapshot")
	}
}

func TestRunHeadlessRejectsNegativeSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cord.png")
	if err := runHeadless(config.Default(), path, -1, 0); err == nil {
		t.Fatal("expected error for negative steps")
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatal("expected no file on error")
	}
}
