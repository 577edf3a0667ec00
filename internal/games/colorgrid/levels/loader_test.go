package levels_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/core"
	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/levels"
	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/levels/formats"
)

func TestLoaderLoadAllSkipsInvalid(t *testing.T) {
	loader := levels.NewLoader("testdata")

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// ragged, badcolor and empty are skipped.
	if len(lvls) != 2 {
		t.Fatalf("expected 2 valid boards, got %d", len(lvls))
	}
	if lvls[0].ID != "alpha" || lvls[1].ID != "beta" {
		t.Errorf("expected [alpha beta], got [%s %s]", lvls[0].ID, lvls[1].ID)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader("testdata")

	lvl, err := loader.LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "beta" {
		t.Errorf("name should default to the ID, got %q", lvl.Name)
	}
	if lvl.Height != 2 || lvl.Width != 3 {
		t.Errorf("expected 2x3, got %dx%d", lvl.Height, lvl.Width)
	}
	if lvl.Timer != 0 {
		t.Errorf("expected no timer override, got %d", lvl.Timer)
	}
	if !strings.HasSuffix(lvl.FilePath, filepath.Join("nested", "beta.yml")) {
		t.Errorf("unexpected FilePath %q", lvl.FilePath)
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected error for unknown ID")
	}
}

func TestLevelToGridIsACopy(t *testing.T) {
	lvl, err := levels.LoadFile(filepath.Join("testdata", "alpha.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	g := lvl.ToGrid()
	want, _ := core.ParseRows([]string{"RR", "GB"})
	if !g.Equal(want) {
		t.Fatalf("ToGrid:\n%s\nwant\n%s", g, want)
	}

	g.Set(0, 0, core.ColorEmpty)
	if lvl.ToGrid().At(0, 0) != core.ColorRed {
		t.Error("mutating a returned grid must not change the level")
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"ragged rows", "ragged.yaml"},
		{"unknown color", "badcolor.yaml"},
		{"already cleared", "empty.yaml"},
		{"missing file", "nope.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := levels.LoadFile(filepath.Join("testdata", tt.file)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid", "id: x\nrows: [\"RG\", \"GR\"]\n", false},
		{"missing id", "rows: [\"RG\"]\n", true},
		{"no rows", "id: x\n", true},
		{"negative timer", "id: x\ntimer: -5\nrows: [\"R\"]\n", true},
		{"broken yaml", "id: [x\n", true},
		{"too wide", "id: x\nrows: [\"" + strings.Repeat("R", 51) + "\"]\n", true},
		{"all empty", "id: x\nrows: [\"..\", \"..\"]\n", true},
		{"one filled cell", "id: x\nrows: [\"..\", \".R\"]\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formats.ParseYAML([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseYAML error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuiltinBoards(t *testing.T) {
	ids, err := levels.Builtin().ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}

	expected := []string{"lvl01", "lvl02", "lvl03", "lvl04"}
	if strings.Join(ids, ",") != strings.Join(expected, ",") {
		t.Fatalf("ListIDs = %v, expected %v", ids, expected)
	}

	for _, id := range ids {
		lvl, err := levels.Builtin().LoadByID(id)
		if err != nil {
			t.Fatalf("LoadByID(%s) failed: %v", id, err)
		}
		if lvl.ToGrid().IsCleared() {
			t.Errorf("board %s starts cleared", id)
		}
	}
}

func TestBuiltinBoardsAreSolvable(t *testing.T) {
	solutions := map[string][]core.Coord{
		"lvl01": {core.At(0, 0), core.At(1, 0)},
		"lvl02": {core.At(0, 0), core.At(0, 3), core.At(1, 2), core.At(2, 0)},
		"lvl03": {core.At(0, 3), core.At(1, 1), core.At(1, 0), core.At(2, 0), core.At(2, 3), core.At(3, 0)},
		"lvl04": {core.At(0, 1), core.At(2, 4), core.At(1, 0), core.At(1, 2), core.At(3, 0), core.At(4, 0)},
	}

	for id, moves := range solutions {
		t.Run(id, func(t *testing.T) {
			lvl, err := levels.Builtin().LoadByID(id)
			if err != nil {
				t.Fatalf("LoadByID failed: %v", err)
			}
			s, err := core.NewSessionWithGrid(lvl.ToGrid(), core.NewRNG(1))
			if err != nil {
				t.Fatalf("NewSessionWithGrid failed: %v", err)
			}
			for _, m := range moves {
				if !s.Click(m.Row, m.Col) {
					t.Fatalf("move %v rejected on\n%s", m, s.Grid())
				}
			}
			if s.Status() != core.StatusWon {
				t.Errorf("expected won, got %v with\n%s", s.Status(), s.Grid())
			}
		})
	}
}

func TestResolve(t *testing.T) {
	lvl, err := levels.Resolve("lvl02")
	if err != nil {
		t.Fatalf("Resolve by ID failed: %v", err)
	}
	if lvl.Name != "Corner Drop" {
		t.Errorf("expected Corner Drop, got %q", lvl.Name)
	}

	dir := t.TempDir()
	p := filepath.Join(dir, "mine.yaml")
	if err := os.WriteFile(p, []byte("id: mine\nrows: [\"GG\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	lvl, err = levels.Resolve(p)
	if err != nil {
		t.Fatalf("Resolve by path failed: %v", err)
	}
	if lvl.ID != "mine" {
		t.Errorf("expected mine, got %q", lvl.ID)
	}
}
