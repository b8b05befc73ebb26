package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/padukov/go-snakeshot/internal/game"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg != game.DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "width = 48\nmax_ammo = 9\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != 48 {
		t.Errorf("expected width 48 from file, got %d", cfg.Width)
	}
	if cfg.MaxAmmo != 9 {
		t.Errorf("expected max_ammo 9 from file, got %d", cfg.MaxAmmo)
	}
	// Keys the file does not mention keep their defaults.
	if cfg.Height != game.DefaultConfig().Height {
		t.Errorf("expected default height, got %d", cfg.Height)
	}
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("width = [not toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("malformed file should be an error")
	}
}

func TestWriteDefaultConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg != game.DefaultConfig() {
		t.Errorf("round trip drifted: %+v", cfg)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(game.DefaultConfig()); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	bad := game.DefaultConfig()
	bad.Width = 4
	if err := validateConfig(bad); err == nil {
		t.Error("a 4-wide grid should be rejected")
	}

	bad = game.DefaultConfig()
	bad.MaxAmmo = 0
	if err := validateConfig(bad); err == nil {
		t.Error("a zero ammo pool should be rejected")
	}

	bad = game.DefaultConfig()
	bad.TickRate = 0
	if err := validateConfig(bad); err == nil {
		t.Error("a zero tick rate should be rejected")
	}
}
