// Package model defines the data structures shared across the Mindflow application.
package model

// Config holds the application configuration, loaded from a TOML file.
type Config struct {
	LogFolder  string `toml:"log_folder"`
	CommandLog string `toml:"command_log"`
	ErrorLog   string `toml:"error_log"`
	InfoLog    string `toml:"info_log"`

	RootText string `toml:"root_text"` // label of the central node
	NodeText string `toml:"node_text"` // placeholder label for new nodes

	Layout LayoutConfig `toml:"layout"`
	Canvas CanvasConfig `toml:"canvas"`
}

// LayoutConfig holds the layout engine constants. All distances are in
// canvas units (pixels for the graphical frontend).
type LayoutConfig struct {
	LeafWidth    float64 `toml:"leaf_width"`    // minimum cross-axis extent of a leaf
	SiblingGap   float64 `toml:"sibling_gap"`   // gap between adjacent sibling extents
	LevelSpacing float64 `toml:"level_spacing"` // distance between depth levels
	Bilateral    bool    `toml:"bilateral"`     // alternate root children left/right
}

// CanvasConfig holds the graphical frontend options.
type CanvasConfig struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	FontSize    float64 `toml:"font_size"`
	TweenFrames int     `toml:"tween_frames"` // frames to animate a relayout
}
