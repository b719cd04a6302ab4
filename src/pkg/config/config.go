// Package config provides functionality for loading, saving, and managing
// application configuration settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"mindflow/src/pkg/model"
)

// Global variables to store the current configuration and its file path.
var (
	currentConfig *model.Config
	configPath    = "./data/config.toml"
)

// ConfigDefault returns the built-in default configuration.
func ConfigDefault() *model.Config {
	return &model.Config{
		LogFolder:  "./logs",
		CommandLog: "commands.log",
		ErrorLog:   "errors.log",
		InfoLog:    "info.log",
		RootText:   "Central Topic",
		NodeText:   "New Node",
		Layout: model.LayoutConfig{
			LeafWidth:    50,
			SiblingGap:   10,
			LevelSpacing: 150,
			Bilateral:    true,
		},
		Canvas: model.CanvasConfig{
			Width:       800,
			Height:      600,
			FontSize:    14,
			TweenFrames: 12,
		},
	}
}

// ConfigSetPath overrides the configuration file location. It must be
// called before ConfigLoad.
func ConfigSetPath(path string) {
	configPath = path
}

// ConfigLoad loads the configuration from the TOML file.
// If the file doesn't exist, it creates a default configuration.
func ConfigLoad() error {
	// Ensure the data directory exists
	dataDir := filepath.Dir(configPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Check if the config file exists, if not create a default one
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaultConfig := ConfigDefault()
		if err := ConfigSave(defaultConfig); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
		currentConfig = defaultConfig
		return nil
	}

	// Parse the existing config file
	currentConfig = &model.Config{}
	if _, err := toml.DecodeFile(configPath, currentConfig); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	// Fill in zero-valued settings so an edited or partial config cannot
	// degenerate the layout or the window geometry.
	fillDefaults(currentConfig)

	return nil
}

// fillDefaults replaces zero or negative values in cfg with the built-in
// defaults. A hand-edited file that drops a table or a key must still
// yield a usable configuration.
func fillDefaults(cfg *model.Config) {
	defaults := ConfigDefault()
	if cfg.LogFolder == "" {
		cfg.LogFolder = defaults.LogFolder
	}
	if cfg.CommandLog == "" {
		cfg.CommandLog = defaults.CommandLog
	}
	if cfg.ErrorLog == "" {
		cfg.ErrorLog = defaults.ErrorLog
	}
	if cfg.InfoLog == "" {
		cfg.InfoLog = defaults.InfoLog
	}
	if cfg.RootText == "" {
		cfg.RootText = defaults.RootText
	}
	if cfg.NodeText == "" {
		cfg.NodeText = defaults.NodeText
	}
	if cfg.Layout.LeafWidth <= 0 {
		cfg.Layout.LeafWidth = defaults.Layout.LeafWidth
	}
	if cfg.Layout.SiblingGap < 0 {
		cfg.Layout.SiblingGap = defaults.Layout.SiblingGap
	}
	if cfg.Layout.LevelSpacing <= 0 {
		cfg.Layout.LevelSpacing = defaults.Layout.LevelSpacing
	}
	if cfg.Canvas.Width <= 0 {
		cfg.Canvas.Width = defaults.Canvas.Width
	}
	if cfg.Canvas.Height <= 0 {
		cfg.Canvas.Height = defaults.Canvas.Height
	}
	if cfg.Canvas.FontSize <= 0 {
		cfg.Canvas.FontSize = defaults.Canvas.FontSize
	}
	if cfg.Canvas.TweenFrames <= 0 {
		cfg.Canvas.TweenFrames = defaults.Canvas.TweenFrames
	}
}

// ConfigSave saves the provided configuration to the TOML file.
func ConfigSave(cfg *model.Config) error {
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// ConfigGet returns the current configuration.
func ConfigGet() *model.Config {
	return currentConfig
}
