package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/padukov/go-snakeshot/internal/game"
)

// defaultConfigPath is where the config lives unless -config says otherwise.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "snakeshot", "config.toml")
}

// loadConfig overlays the TOML file at path onto the built-in defaults.
// A missing file is fine and leaves the defaults standing; a file that
// exists but does not parse is an error.
func loadConfig(path string) (game.Config, error) {
	cfg := game.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// writeDefaultConfig creates the config directory if needed and writes the
// built-in defaults as a starting point for editing.
func writeDefaultConfig(path string) error {
	if path == "" {
		return fmt.Errorf("no config path available")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(game.DefaultConfig()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
