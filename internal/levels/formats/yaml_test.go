package formats

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gunsnake/internal/engine"
)

func TestParseYAMLDefaults(t *testing.T) {
	lvl, err := ParseYAML([]byte("name: Open Field\nsize: {w: 6, h: 4}\nsnake:\n  head: {x: 2, y: 2}\n  tail: {x: 2, y: 1}\n"))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if lvl.ID != "open-field" {
		t.Errorf("ID = %q, expected slug of the name", lvl.ID)
	}
	if lvl.Level.Direction != engine.DirDown {
		t.Errorf("direction = %v, expected down", lvl.Level.Direction)
	}
	if len(lvl.Level.Cells) != 4 || len(lvl.Level.Cells[0]) != 6 {
		t.Errorf("cells are %dx?, expected 6x4", len(lvl.Level.Cells))
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "size: [", "yaml unmarshal"},
		{"no size", "name: x\n", "invalid size"},
		{"unknown rune", "size: {w: 3, h: 3}\nlayout:\n  - \".x.\"\n", "unknown cell"},
		{"too wide", "size: {w: 3, h: 3}\nlayout:\n  - \"....\"\n", "wider"},
		{"too tall", "size: {w: 3, h: 1}\nlayout:\n  - \"...\"\n  - \"...\"\n", "rows"},
		{"bad direction", "size: {w: 3, h: 3}\ndirection: diagonal\n", "unknown direction"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestEncodeThenParse(t *testing.T) {
	l := engine.NewEmptyLevel("Ring", 5, 5)
	l.Cells[0][0] = engine.CellWall
	l.Cells[4][4] = engine.CellFood
	l.Direction = engine.DirLeft

	data, err := EncodeYAML("ring", l)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML of encoded level: %v\n%s", err, data)
	}
	if got.ID != "ring" || got.Level.Direction != engine.DirLeft {
		t.Errorf("parsed %q %v", got.ID, got.Level.Direction)
	}
	if got.Level.Cells[0][0] != engine.CellWall || got.Level.Cells[4][4] != engine.CellFood {
		t.Error("layout lost in encoding")
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Walled":          "walled",
		"  My Level 2 ":   "my-level-2",
		"Stripped 32x18":  "stripped-32x18",
		"!!!":             "",
		"a -- b":          "a-b",
	}
	for in, want := range tests {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, expected %q", in, got, want)
		}
	}
}
