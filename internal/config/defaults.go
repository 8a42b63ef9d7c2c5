package config

import (
	_ "embed"
)

//go:embed defaults/twinstep.yaml
var defaultYAML []byte

// DefaultConfig returns the default twinstep configuration.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			CellSpacing: 2.0,
			ShowHazards: true,
		},
		Timing: TimingConfig{
			TickRate:      30,
			WinDelayTicks: 45,
		},
		Input: InputConfig{
			Lock: false,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
