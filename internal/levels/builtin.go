// Package levels provides the builtin level catalog and a YAML level-pack
// loader. It depends on game but game does not depend on levels.
package levels

import (
	"github.com/mkarpushin/twinstep/internal/core"
	"github.com/mkarpushin/twinstep/internal/game"
)

// Builtin returns the builtin level catalog in play order.
func Builtin() []game.Definition {
	return []game.Definition{
		{
			ID:    "corridor",
			Name:  "Corridor",
			Rows:  []string{"100002"},
			Split: core.AxisX,
			Win:   core.CmdMoveRight,
		},
		{
			ID:   "courtyard",
			Name: "Courtyard",
			Rows: []string{
				"000000",
				"100002",
				"000000",
			},
			Split: core.AxisX,
			Win:   core.CmdMoveRight,
		},
		{
			ID:   "shaft",
			Name: "Shaft",
			Rows: []string{
				"0.2",
				"000",
				"000",
				"0.1",
			},
			Split: core.AxisY,
			Win:   core.CmdMoveUp,
		},
		{
			ID:   "broken-bridge",
			Name: "Broken Bridge",
			Rows: []string{
				"10.0..02",
				"0.000.00",
			},
			Split: core.AxisX,
			Win:   core.CmdMoveRight,
		},
		{
			ID:   "watchtowers",
			Name: "Watchtowers",
			Rows: []string{
				"0..0",
				"1002",
				"0..0",
				"X..X",
			},
			Split: core.AxisX,
			Win:   core.CmdMoveRight,
		},
		{
			ID:   "lava-field",
			Name: "Lava Field",
			Rows: []string{
				"0X0020",
				"000X00",
				"00X000",
				"0X1000",
			},
			Split: core.AxisY,
			Win:   core.CmdMoveUp,
		},
	}
}

// Get returns the builtin level at the given index, wrapping modulo the
// catalog size.
func Get(index int) game.Definition {
	catalog := Builtin()
	return catalog[((index%len(catalog))+len(catalog))%len(catalog)]
}

// Count returns the number of builtin levels.
func Count() int {
	return len(Builtin())
}
