// Package levels provides preset board loading for Color Grid.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/core"
	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/levels/formats"
)

//go:embed boards/*.yaml
var builtinBoards embed.FS

// Level represents a complete preset board.
type Level struct {
	ID       string
	Name     string
	Height   int
	Width    int
	Timer    int // Seconds, 0 means use the configured timer
	Metadata map[string]string
	FilePath string

	grid *core.Grid
}

// ToGrid returns a fresh copy of the board's starting grid.
func (l *Level) ToGrid() *core.Grid {
	return l.grid.Clone()
}

// Loader handles loading boards from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for boards under root on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns a loader over the boards shipped with the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinBoards, "boards")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// LoadAll recursively scans and loads all board files.
// Invalid files are skipped. Returns boards sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.load(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single board file from disk.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return build(data, p)
}

// load reads a board relative to the loader root.
func (l *Loader) load(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return build(data, path.Join(l.Root, p))
}

func build(data []byte, p string) (Level, error) {
	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Height:   parsed.Grid.H,
		Width:    parsed.Grid.W,
		Timer:    parsed.Timer,
		Metadata: parsed.Metadata,
		FilePath: p,
		grid:     parsed.Grid,
	}, nil
}

// LoadByID loads a specific board by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all board IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Resolve finds a board by file path or, failing that, by built-in ID.
func Resolve(ref string) (Level, error) {
	if ext := strings.ToLower(path.Ext(ref)); isSupportedExtension(ext) {
		return LoadFile(ref)
	}
	return Builtin().LoadByID(ref)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
