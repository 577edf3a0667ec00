// Package formats provides pluggable board file format parsers.
package formats

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a board file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Timer    int               `yaml:"timer,omitempty"` // Seconds, 0 keeps the configured timer
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed board ready for use.
type Level struct {
	ID       string
	Name     string
	Timer    int
	Grid     *core.Grid
	Metadata map[string]string
}

// ParseYAML parses a YAML board file.
// Rows use R, G and B for colors and '.' for empty cells.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, errors.New("missing id")
	}
	if yl.Timer < 0 {
		return Level{}, fmt.Errorf("negative timer: %d", yl.Timer)
	}

	grid, err := core.ParseRows(yl.Rows)
	if err != nil {
		return Level{}, fmt.Errorf("rows: %w", err)
	}
	if grid.FilledCount() == 0 {
		return Level{}, errors.New("board has no cells to clear")
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:       yl.ID,
		Name:     name,
		Timer:    yl.Timer,
		Grid:     grid,
		Metadata: yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
