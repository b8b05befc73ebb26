package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/padukov/go-snakeshot/internal/game"
	"github.com/padukov/go-snakeshot/internal/ui"
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "Config file path (TOML)")
	initConfig := flag.Bool("init-config", false, "Write the default config file and exit")
	width := flag.Int("width", 0, "Grid width (0 = from config)")
	height := flag.Int("height", 0, "Grid height (0 = from config)")
	maxAmmo := flag.Int("max-ammo", 0, "Ammo pool size (0 = from config)")
	fps := flag.Int("fps", 0, "Simulation frames per second (0 = from config)")
	seed := flag.Uint64("seed", 0, "Random seed for a reproducible run (0 = from config)")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	flag.Parse()

	if *initConfig {
		if err := writeDefaultConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote default config to %s\n", *configPath)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags override whatever the file said.
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *maxAmmo > 0 {
		cfg.MaxAmmo = *maxAmmo
	}
	if *fps > 0 {
		cfg.TickRate = *fps
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Redirect log output IMMEDIATELY — before the TUI starts. The UI uses
	// log.Printf, which writes to stderr by default, and any stderr output
	// would corrupt Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	// Start the TUI — this takes over the terminal completely.
	model := ui.NewModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// validateConfig rejects configurations the session cannot run with.
func validateConfig(cfg game.Config) error {
	if cfg.Width < 8 || cfg.Height < 8 {
		return fmt.Errorf("grid %dx%d is too small, need at least 8x8", cfg.Width, cfg.Height)
	}
	if cfg.MaxAmmo < 1 {
		return fmt.Errorf("max ammo must be at least 1, got %d", cfg.MaxAmmo)
	}
	if cfg.TickRate < 1 || cfg.TickRate > 240 {
		return fmt.Errorf("fps must be between 1 and 240, got %d", cfg.TickRate)
	}
	return nil
}
