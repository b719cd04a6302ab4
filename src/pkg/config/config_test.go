package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	ConfigSetPath(path)

	if err := ConfigLoad(); err != nil {
		t.Fatalf("ConfigLoad failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file was not written: %v", err)
	}
	cfg := ConfigGet()
	if cfg.RootText != "Central Topic" {
		t.Errorf("root_text = %q, want 'Central Topic'", cfg.RootText)
	}
	if cfg.Layout.LeafWidth <= 0 || cfg.Layout.LevelSpacing <= 0 {
		t.Errorf("default layout constants must be positive: %+v", cfg.Layout)
	}
}

func TestConfigLoadExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `log_folder = "./logs"
command_log = "commands.log"
error_log = "errors.log"
info_log = "info.log"
root_text = "My Map"
node_text = "Idea"

[layout]
leaf_width = 80.0
sibling_gap = 20.0
level_spacing = 200.0
bilateral = false

[canvas]
width = 1024
height = 768
font_size = 16.0
tween_frames = 8
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	ConfigSetPath(path)

	if err := ConfigLoad(); err != nil {
		t.Fatalf("ConfigLoad failed: %v", err)
	}
	cfg := ConfigGet()
	if cfg.RootText != "My Map" {
		t.Errorf("root_text = %q, want 'My Map'", cfg.RootText)
	}
	if cfg.Layout.LeafWidth != 80 {
		t.Errorf("leaf_width = %v, want 80", cfg.Layout.LeafWidth)
	}
	if cfg.Layout.Bilateral {
		t.Error("bilateral should be false")
	}
	if cfg.Canvas.Width != 1024 {
		t.Errorf("canvas width = %d, want 1024", cfg.Canvas.Width)
	}
}

func TestConfigLoadFillsDegenerateLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `root_text = "r"

[layout]
leaf_width = 0.0
sibling_gap = -1.0
level_spacing = 0.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	ConfigSetPath(path)

	if err := ConfigLoad(); err != nil {
		t.Fatalf("ConfigLoad failed: %v", err)
	}
	cfg := ConfigGet()
	if cfg.Layout.LeafWidth <= 0 {
		t.Errorf("leaf_width must be backfilled, got %v", cfg.Layout.LeafWidth)
	}
	if cfg.Layout.SiblingGap < 0 {
		t.Errorf("sibling_gap must be backfilled, got %v", cfg.Layout.SiblingGap)
	}
	if cfg.Layout.LevelSpacing <= 0 {
		t.Errorf("level_spacing must be backfilled, got %v", cfg.Layout.LevelSpacing)
	}
}

// A config file that only pins the layout must still produce a usable
// window geometry and placeholder texts.
func TestConfigLoadFillsMissingCanvasAndTexts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[layout]
leaf_width = 80.0
sibling_gap = 20.0
level_spacing = 200.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	ConfigSetPath(path)

	if err := ConfigLoad(); err != nil {
		t.Fatalf("ConfigLoad failed: %v", err)
	}
	cfg := ConfigGet()
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		t.Errorf("window size must be backfilled, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.FontSize <= 0 {
		t.Errorf("font_size must be backfilled, got %v", cfg.Canvas.FontSize)
	}
	if cfg.Canvas.TweenFrames <= 0 {
		t.Errorf("tween_frames must be backfilled, got %d", cfg.Canvas.TweenFrames)
	}
	if cfg.RootText == "" || cfg.NodeText == "" {
		t.Errorf("placeholder texts must be backfilled, got %q / %q", cfg.RootText, cfg.NodeText)
	}
	if cfg.LogFolder == "" || cfg.InfoLog == "" {
		t.Errorf("log locations must be backfilled, got %q / %q", cfg.LogFolder, cfg.InfoLog)
	}
	if cfg.Layout.LeafWidth != 80 {
		t.Errorf("explicit layout values must survive, leaf_width = %v", cfg.Layout.LeafWidth)
	}
}
