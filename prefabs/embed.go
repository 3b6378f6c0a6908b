// Package prefabs holds the YAML data the menu host boots from: menu
// tuning and layout, sprite palette and starting save state. Files are
// embedded in the binary and may be overridden by copies on disk, which
// the Watcher reloads while the game runs.
package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is where on-disk overrides are looked up.
var Dir = "prefabs"

const (
	MenuFile = "menu.yaml"
	SaveFile = "save.yaml"
)

// Load returns the on-disk override of name if one exists, else the
// embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// ModTime reports when the on-disk override of name last changed.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPrefabPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Write stores data as the on-disk override of name.
func Write(name string, data []byte) error {
	path := diskPrefabPath(cleanPrefabPath(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, filepath.ToSlash(Dir)+"/"); ok {
		return after
	}
	return filepath.Base(s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
