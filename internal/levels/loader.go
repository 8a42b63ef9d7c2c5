package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mkarpushin/twinstep/internal/core"
	"github.com/mkarpushin/twinstep/internal/game"
)

// yamlLevel is the on-disk YAML structure for a level file.
type yamlLevel struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Split string   `yaml:"split"` // "horizontal" or "vertical"
	Win   string   `yaml:"win"`   // "left", "right", "up", "down"
	Rows  []string `yaml:"rows"`
}

// ParseYAML parses a single YAML level file into a validated definition.
// Validation builds the board once, so a loaded level can always be played.
func ParseYAML(data []byte) (game.Definition, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return game.Definition{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}

	split, err := parseSplit(yl.Split)
	if err != nil {
		return game.Definition{}, err
	}
	win, err := parseWin(yl.Win)
	if err != nil {
		return game.Definition{}, err
	}

	def := game.Definition{
		ID:    yl.ID,
		Name:  yl.Name,
		Rows:  yl.Rows,
		Split: split,
		Win:   win,
	}
	if def.ID == "" {
		return game.Definition{}, fmt.Errorf("levels: level file has no id")
	}
	if def.Name == "" {
		def.Name = def.ID
	}
	if _, err := game.BuildBoard(def); err != nil {
		return game.Definition{}, fmt.Errorf("levels: %s: %w", def.ID, err)
	}

	return def, nil
}

func parseSplit(s string) (core.Axis, error) {
	switch strings.ToLower(s) {
	case "horizontal", "":
		// Horizontal is the common case and the default.
		return core.AxisX, nil
	case "vertical":
		return core.AxisY, nil
	}
	return 0, fmt.Errorf("levels: unknown split %q", s)
}

func parseWin(s string) (core.Command, error) {
	switch strings.ToLower(s) {
	case "left":
		return core.CmdMoveLeft, nil
	case "right":
		return core.CmdMoveRight, nil
	case "up":
		return core.CmdMoveUp, nil
	case "down":
		return core.CmdMoveDown, nil
	}
	return core.CmdNone, fmt.Errorf("levels: unknown win command %q", s)
}

// Loader loads level packs from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are skipped. Returns levels sorted
// by ID for deterministic catalog ordering.
func (l *Loader) LoadAll() ([]game.Definition, error) {
	var defs []game.Definition

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		def, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})

	return defs, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (game.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Definition{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	return ParseYAML(data)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (game.Definition, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return game.Definition{}, err
	}
	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}
	return game.Definition{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	return ids, nil
}
