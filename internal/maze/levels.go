package maze

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed levels/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded levels sorted by id.
func Builtin() ([]Layout, error) {
	return loadFS(builtinFS, "levels", "embedded levels")
}

// LoadLayoutsDir loads every .yaml/.yml level under dir, sorted by id.
func LoadLayoutsDir(dir string) ([]Layout, error) {
	return loadFS(os.DirFS(dir), ".", dir)
}

func loadFS(fsys fs.FS, root, label string) ([]Layout, error) {
	var layouts []Layout
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
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

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading file %s: %w", path, err)
		}
		layout, err := ParseLayoutYAML(data)
		if err != nil {
			return fmt.Errorf("parsing file %s: %w", path, err)
		}
		if prev, dup := seen[layout.ID]; dup {
			return fmt.Errorf("maze: duplicate level id %q in %s and %s", layout.ID, prev, path)
		}
		seen[layout.ID] = path
		layouts = append(layouts, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", label, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts, nil
}

// Find returns the layout with the given id.
func Find(layouts []Layout, id string) (Layout, bool) {
	for _, l := range layouts {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}
