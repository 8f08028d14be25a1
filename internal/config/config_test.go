// ABOUTME: Tests for configuration loading and device identity.
// ABOUTME: Covers env overrides and first-run identity minting.

package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	t.Setenv("TAPNOTE_DATA_DIR", "")
	t.Setenv("TAPNOTE_DB_PATH", "")

	cfg := Load()

	if cfg.DataDir != "/tmp/xdg/tapnote" {
		t.Errorf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.DBPath != "/tmp/xdg/tapnote/notes.db" {
		t.Errorf("unexpected db path %q", cfg.DBPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TAPNOTE_DATA_DIR", "/custom")
	t.Setenv("TAPNOTE_DB_PATH", "/elsewhere/notes.db")

	cfg := Load()

	if cfg.DataDir != "/custom" {
		t.Errorf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.DBPath != "/elsewhere/notes.db" {
		t.Errorf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.JournalDir != "/custom/journal" {
		t.Errorf("unexpected journal dir %q", cfg.JournalDir)
	}
}

func TestLoadDeviceMintsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.yaml")

	first, err := LoadDevice(path)
	if err != nil {
		t.Fatalf("failed to load device: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected a minted device id")
	}

	second, err := LoadDevice(path)
	if err != nil {
		t.Fatalf("failed to reload device: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("device id changed between loads: %q vs %q", first.ID, second.ID)
	}
}
