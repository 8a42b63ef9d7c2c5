// Package config provides YAML-based configuration loading for twinstep.
package config

// Config contains all runtime configuration.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
}

// RenderConfig defines how the board is drawn.
type RenderConfig struct {
	CellSpacing float64 `yaml:"cell_spacing"` // World units between adjacent cells
	ShowHazards bool    `yaml:"show_hazards"`
}

// TimingConfig defines the game loop timing.
type TimingConfig struct {
	TickRate      int `yaml:"tick_rate"`       // Ticks per second
	WinDelayTicks int `yaml:"win_delay_ticks"` // Ticks to hold the win banner before advancing
}

// InputConfig defines input handling behavior.
type InputConfig struct {
	Lock bool `yaml:"lock"` // Reject commands until the move animation finishes
}

// normalize clamps out-of-range values back to usable defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Render.CellSpacing <= 0 {
		c.Render.CellSpacing = def.Render.CellSpacing
	}
	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Timing.WinDelayTicks < 0 {
		c.Timing.WinDelayTicks = def.Timing.WinDelayTicks
	}
}
