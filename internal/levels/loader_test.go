package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gunsnake/internal/engine"
)

const crossYAML = `id: cross
name: Cross
size: {w: 7, h: 5}
direction: right
modifiable: true
snake:
  head: {x: 1, y: 0}
  tail: {x: 0, y: 0}
layout:
  - "......."
  - "...#..."
  - ".*###.."
  - "...#..."
`

func writeLevel(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeLevel(t, dir, "cross.yaml", crossYAML)

	e, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	l := e.Level
	if e.ID != "cross" || l.Name != "Cross" || l.Width != 7 || l.Height != 5 {
		t.Errorf("loaded %q %q %dx%d", e.ID, l.Name, l.Width, l.Height)
	}
	if l.Direction != engine.DirRight || !l.Modifiable {
		t.Errorf("direction %v modifiable %v", l.Direction, l.Modifiable)
	}
	if l.Cells[2][1] != engine.CellFood || l.Cells[2][3] != engine.CellWall || l.Cells[4][3] != engine.CellEmpty {
		t.Errorf("layout not parsed: %v", l.Cells)
	}
	if e.FilePath != path {
		t.Errorf("FilePath = %q, expected %q", e.FilePath, path)
	}
}

func TestLoadAllSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "cross.yaml", crossYAML)
	writeLevel(t, dir, "broken.yaml", "size: {w: 5, h: 5}\nlayout:\n  - \"..x..\"\n")
	writeLevel(t, dir, "notes.txt", "ignored")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeLevel(t, filepath.Join(dir, "sub"), "b.yml", `id: box
name: Box
size: {w: 5, h: 5}
snake:
  head: {x: 2, y: 2}
  tail: {x: 2, y: 1}
`)

	entries, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != "box" || entries[1].ID != "cross" {
		t.Errorf("entries = %+v, expected box and cross in ID order", entries)
	}
}

func TestLoadAllMissingRoot(t *testing.T) {
	entries, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	if err != nil || len(entries) != 0 {
		t.Errorf("LoadAll on missing root = %v, %v", entries, err)
	}
}

func TestSaveThenLoadByName(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "levels"))
	lvl, _ := Builtin(Walled, 12, 9)
	lvl.Name = "My Walls"
	lvl.Modifiable = true
	lvl.Cells[4][3] = engine.CellFood

	saved, err := loader.Save(lvl)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID != "my-walls-12x9" {
		t.Errorf("ID = %q", saved.ID)
	}

	got, err := loader.LoadByName("my walls")
	if err != nil {
		t.Fatalf("LoadByName: %v", err)
	}
	for y := range lvl.Cells {
		for x := range lvl.Cells[y] {
			if got.Level.Cells[y][x] != lvl.Cells[y][x] {
				t.Fatalf("cell (%d,%d) = %v, expected %v", x, y, got.Level.Cells[y][x], lvl.Cells[y][x])
			}
		}
	}
	if got.Level.Head != lvl.Head || got.Level.Tail != lvl.Tail || got.Level.Direction != lvl.Direction {
		t.Errorf("snake start changed: %+v", got.Level)
	}
}

func TestFilterBySize(t *testing.T) {
	loader := NewLoader(t.TempDir())
	for _, size := range [][2]int{{32, 18}, {64, 36}, {32, 18}} {
		lvl, _ := Builtin(Stripped, size[0], size[1])
		lvl.Name = lvl.Name + " copy"
		if size[0] == 32 {
			lvl.Name += " small"
		}
		if _, err := loader.Save(lvl); err != nil {
			t.Fatal(err)
		}
	}
	small, err := loader.FilterBySize(32, 18)
	if err != nil {
		t.Fatal(err)
	}
	if len(small) != 1 {
		t.Errorf("FilterBySize(32,18) = %d levels, expected 1", len(small))
	}
}

func TestRemove(t *testing.T) {
	loader := NewLoader(t.TempDir())
	locked, _ := Builtin(Empty, 10, 10)
	locked.Name = "Locked"
	open, _ := Builtin(Empty, 10, 10)
	open.Name = "Open"
	open.Modifiable = true
	for _, l := range []engine.Level{locked, open} {
		if _, err := loader.Save(l); err != nil {
			t.Fatal(err)
		}
	}

	if err := loader.Remove("Locked"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Remove(Locked) err = %v, expected ErrReadOnly", err)
	}
	if err := loader.Remove("Open"); err != nil {
		t.Errorf("Remove(Open): %v", err)
	}
	if _, err := loader.LoadByName("Open"); !errors.Is(err, ErrNotFound) {
		t.Errorf("level still present after Remove: %v", err)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "cross.yaml", crossYAML)
	loader := NewLoader(dir)

	l, err := loader.Resolve("walled", 32, 18)
	if err != nil || l.Name != Walled || l.Width != 32 {
		t.Errorf("Resolve(walled) = %v, %v", l.Name, err)
	}
	if l, err := loader.Resolve("Cross", 7, 5); err != nil || l.Name != "Cross" {
		t.Errorf("Resolve(Cross) = %v, %v", l.Name, err)
	}
	if _, err := loader.Resolve("Cross", 32, 18); err == nil {
		t.Error("expected a size mismatch error")
	}
	if _, err := loader.Resolve("Nowhere", 32, 18); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, expected ErrNotFound", err)
	}
}
