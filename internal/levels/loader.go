// Package levels provides level loading and storage. Levels are YAML files
// under a root directory; the built-in layouts need no files.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/gunsnake/internal/engine"
	"github.com/vovakirdan/gunsnake/internal/levels/formats"
)

// ErrNotFound is returned when no level matches a name.
var ErrNotFound = errors.New("levels: not found")

// ErrReadOnly is returned when removing a level that is not modifiable.
var ErrReadOnly = errors.New("levels: level is not modifiable")

// Entry is a level together with where it came from.
type Entry struct {
	ID       string
	Level    engine.Level
	FilePath string // empty for built-ins
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. A missing root
// directory yields no levels.
func (l *Loader) LoadAll() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == l.Root {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		entry, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if err := parsed.Level.Validate(); err != nil {
		return Entry{}, fmt.Errorf("validating file %s: %w", path, err)
	}

	return Entry{ID: parsed.ID, Level: parsed.Level, FilePath: path}, nil
}

// LoadByName returns the level whose name or ID matches, ignoring case.
func (l *Loader) LoadByName(name string) (Entry, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if strings.EqualFold(e.Level.Name, name) || strings.EqualFold(e.ID, name) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// FilterBySize returns the stored levels that fit a w×h field.
func (l *Loader) FilterBySize(w, h int) ([]Entry, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	out := entries[:0]
	for _, e := range entries {
		if e.Level.Width == w && e.Level.Height == h {
			out = append(out, e)
		}
	}
	return out, nil
}

// Save writes a level to <root>/<id>.yaml, replacing an existing file.
func (l *Loader) Save(level engine.Level) (Entry, error) {
	if err := level.Validate(); err != nil {
		return Entry{}, err
	}
	id := formats.Slug(fmt.Sprintf("%s %dx%d", level.Name, level.Width, level.Height))
	if id == "" {
		return Entry{}, fmt.Errorf("level name %q has no usable characters", level.Name)
	}
	data, err := formats.EncodeYAML(id, level)
	if err != nil {
		return Entry{}, err
	}
	if err := os.MkdirAll(l.Root, 0o755); err != nil {
		return Entry{}, fmt.Errorf("creating directory %s: %w", l.Root, err)
	}
	path := filepath.Join(l.Root, id+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Entry{}, fmt.Errorf("writing file %s: %w", path, err)
	}
	return Entry{ID: id, Level: level.Clone(), FilePath: path}, nil
}

// Remove deletes a stored level. Levels not marked modifiable are refused.
func (l *Loader) Remove(name string) error {
	e, err := l.LoadByName(name)
	if err != nil {
		return err
	}
	if !e.Level.Modifiable {
		return fmt.Errorf("%w: %s", ErrReadOnly, e.Level.Name)
	}
	if err := os.Remove(e.FilePath); err != nil {
		return fmt.Errorf("removing file %s: %w", e.FilePath, err)
	}
	return nil
}

// Resolve finds a level for a w×h field: built-ins first, then stored
// levels of the same size.
func (l *Loader) Resolve(name string, w, h int) (engine.Level, error) {
	for _, b := range BuiltinNames {
		if strings.EqualFold(b, name) {
			lvl, _ := Builtin(b, w, h)
			return lvl, nil
		}
	}
	e, err := l.LoadByName(name)
	if err != nil {
		return engine.Level{}, err
	}
	if e.Level.Width != w || e.Level.Height != h {
		return engine.Level{}, fmt.Errorf("level %s is %dx%d, field is %dx%d",
			e.Level.Name, e.Level.Width, e.Level.Height, w, h)
	}
	return e.Level, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
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
