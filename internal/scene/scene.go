// Package scene describes layout trees as data. A scene is either one of
// the built-in demonstration layouts or a TOML file; either way it builds a
// fresh, independent tree on every call to Build.
package scene

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-flex/internal/layout"
)

// ErrUnknownScene is returned by Lookup for a name that is neither a
// built-in scene nor a readable file.
var ErrUnknownScene = errors.New("unknown scene")

// Scene is a named layout tree with a suggested window size.
type Scene struct {
	Name        string
	Description string
	Width       int
	Height      int

	build func() (layout.Node, error)
}

// Build creates a new tree for the scene.
func (s *Scene) Build() (layout.Node, error) {
	return s.build()
}

// file is the TOML form of a scene.
type file struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Width       int      `toml:"width"`
	Height      int      `toml:"height"`
	Root        NodeSpec `toml:"root"`
}

// Parse decodes a TOML scene. The tree is built once to validate it.
func Parse(data []byte) (*Scene, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if !md.IsDefined("root") {
		return nil, errors.New("decode scene: missing [root] table")
	}

	root := f.Root
	if _, err := root.Build(); err != nil {
		return nil, err
	}
	return &Scene{
		Name:        f.Name,
		Description: f.Description,
		Width:       f.Width,
		Height:      f.Height,
		build:       root.Build,
	}, nil
}

// Load reads and parses a TOML scene file. A scene without a name is named
// after the file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Lookup resolves a built-in scene name or a path to a scene file.
func Lookup(nameOrPath string) (*Scene, error) {
	if s, ok := builtins[nameOrPath]; ok {
		return s, nil
	}
	if strings.HasSuffix(nameOrPath, ".toml") {
		return Load(nameOrPath)
	}
	if _, err := os.Stat(nameOrPath); err == nil {
		return Load(nameOrPath)
	}
	return nil, fmt.Errorf("%w %q (built-in scenes: %s)", ErrUnknownScene, nameOrPath, strings.Join(Names(), ", "))
}

// Names returns the built-in scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Builtins returns the built-in scenes sorted by name.
func Builtins() []*Scene {
	out := make([]*Scene, 0, len(builtins))
	for _, name := range Names() {
		out = append(out, builtins[name])
	}
	return out
}
