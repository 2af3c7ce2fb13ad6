// Package formats provides level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gunsnake/internal/engine"
	"gopkg.in/yaml.v3"
)

// Layout characters.
const (
	RuneEmpty = '.'
	RuneWall  = '#'
	RuneFood  = '*'
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	Size       YAMLSize  `yaml:"size"`
	Direction  string    `yaml:"direction"`
	Modifiable bool      `yaml:"modifiable"`
	Snake      YAMLSnake `yaml:"snake"`
	Layout     []string  `yaml:"layout,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLSnake holds the starting head and tail cells.
type YAMLSnake struct {
	Head YAMLPoint `yaml:"head"`
	Tail YAMLPoint `yaml:"tail"`
}

// YAMLPoint is a cell position.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Level is a parsed level with its file identifier.
type Level struct {
	ID    string
	Level engine.Level
}

// ParseYAML parses a YAML level file. An omitted layout means an empty
// field; rows shorter than the width are padded with empty cells.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.Size.W <= 0 || yl.Size.H <= 0 {
		return Level{}, fmt.Errorf("invalid size %dx%d", yl.Size.W, yl.Size.H)
	}
	if len(yl.Layout) > yl.Size.H {
		return Level{}, fmt.Errorf("layout has %d rows, size allows %d", len(yl.Layout), yl.Size.H)
	}

	dir := engine.DirDown
	if yl.Direction != "" {
		d, err := engine.ParseDirection(yl.Direction)
		if err != nil {
			return Level{}, err
		}
		dir = d
	}

	lvl := engine.NewEmptyLevel(yl.Name, yl.Size.W, yl.Size.H)
	lvl.Head = engine.Point{X: yl.Snake.Head.X, Y: yl.Snake.Head.Y}
	lvl.Tail = engine.Point{X: yl.Snake.Tail.X, Y: yl.Snake.Tail.Y}
	lvl.Direction = dir
	lvl.Modifiable = yl.Modifiable

	for y, row := range yl.Layout {
		x := 0
		for _, r := range row {
			if x >= yl.Size.W {
				return Level{}, fmt.Errorf("layout row %d is wider than %d", y, yl.Size.W)
			}
			switch r {
			case RuneEmpty, ' ':
			case RuneWall:
				lvl.Cells[y][x] = engine.CellWall
			case RuneFood:
				lvl.Cells[y][x] = engine.CellFood
			default:
				return Level{}, fmt.Errorf("layout row %d: unknown cell %q", y, r)
			}
			x++
		}
	}

	id := yl.ID
	if id == "" {
		id = Slug(yl.Name)
	}
	return Level{ID: id, Level: lvl}, nil
}

// EncodeYAML renders a level in the format ParseYAML reads.
func EncodeYAML(id string, l engine.Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:         id,
		Name:       l.Name,
		Size:       YAMLSize{W: l.Width, H: l.Height},
		Direction:  l.Direction.String(),
		Modifiable: l.Modifiable,
		Snake: YAMLSnake{
			Head: YAMLPoint{X: l.Head.X, Y: l.Head.Y},
			Tail: YAMLPoint{X: l.Tail.X, Y: l.Tail.Y},
		},
		Layout: make([]string, len(l.Cells)),
	}
	var sb strings.Builder
	for y, row := range l.Cells {
		sb.Reset()
		for _, c := range row {
			switch c {
			case engine.CellWall:
				sb.WriteRune(RuneWall)
			case engine.CellFood:
				sb.WriteRune(RuneFood)
			default:
				sb.WriteRune(RuneEmpty)
			}
		}
		yl.Layout[y] = sb.String()
	}
	data, err := yaml.Marshal(yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// Slug turns a level name into a file-safe identifier.
func Slug(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			dash = false
		case !dash && sb.Len() > 0:
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
