// Package corpus loads content units from YAML or JSON files on disk.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/pthm/scenariolint/internal/logger"
	"github.com/pthm/scenariolint/internal/model"
)

// ErrNoFiles is returned when no pattern matches a file.
var ErrNoFiles = errors.New("no corpus files matched")

// DefaultPatterns are used when no pattern is given.
var DefaultPatterns = []string{
	"scenarios/**/*.yaml",
	"scenarios/**/*.yml",
	"scenarios/**/*.json",
}

// Corpus is the loaded, ordered set of units. Order is file path order,
// then document order within a file.
type Corpus struct {
	Units []model.ContentUnit
	// Files lists every file read, sorted.
	Files []string
	// Origin maps unit index to the file it came from.
	Origin []string

	index map[string]int
}

// Unit returns the first unit with the given identifier.
func (c *Corpus) Unit(id string) (*model.ContentUnit, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.Units[i], true
}

// Loader reads corpus files.
type Loader struct {
	log *logger.Logger
}

func NewLoader(log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{log: log}
}

// Load expands the patterns (doublestar syntax, "**" allowed) and decodes
// every matching file.
func (l *Loader) Load(patterns ...string) (*Corpus, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	files, err := expand(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFiles, patterns)
	}

	c := &Corpus{Files: files, index: make(map[string]int)}
	for _, path := range files {
		units, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		l.log.Debug("loaded corpus file", "path", path, "units", len(units))
		for _, u := range units {
			if _, dup := c.index[u.ID]; !dup && u.ID != "" {
				c.index[u.ID] = len(c.Units)
			}
			c.Units = append(c.Units, u)
			c.Origin = append(c.Origin, path)
		}
	}

	l.log.Info("corpus loaded", "files", len(files), "units", len(c.Units))
	return c, nil
}

func expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// ReadFile decodes one corpus file.
func ReadFile(path string) ([]model.ContentUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	units, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return units, nil
}

// Decode reads units from YAML or JSON. Each document may be a single
// unit, a list of units, or a mapping with a "scenarios" list.
func Decode(data []byte) ([]model.ContentUnit, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var units []model.ContentUnit
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return units, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding units: %w", err)
		}
		decoded, err := decodeDocument(&doc)
		if err != nil {
			return nil, err
		}
		units = append(units, decoded...)
	}
}

func decodeDocument(doc *yaml.Node) ([]model.ContentUnit, error) {
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		var units []model.ContentUnit
		if err := root.Decode(&units); err != nil {
			return nil, fmt.Errorf("line %d: decoding unit list: %w", root.Line, err)
		}
		return units, nil

	case yaml.MappingNode:
		if list := mappingValue(root, "scenarios"); list != nil {
			var units []model.ContentUnit
			if err := list.Decode(&units); err != nil {
				return nil, fmt.Errorf("line %d: decoding scenarios: %w", list.Line, err)
			}
			return units, nil
		}
		var u model.ContentUnit
		if err := root.Decode(&u); err != nil {
			return nil, fmt.Errorf("line %d: decoding unit: %w", root.Line, err)
		}
		return []model.ContentUnit{u}, nil

	default:
		return nil, fmt.Errorf("line %d: expected a unit, a list of units or a scenarios mapping", root.Line)
	}
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
