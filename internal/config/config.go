// Package config decodes the settings file spec.md §6 describes: a TOML
// document the external rendering layer owns, but whose schema the core
// and that layer must agree on. The core itself never acts on these
// values; it only needs a typed home for them so replay headers and
// startup logging can record what a session ran with. Grounded on the
// manifest dependency on github.com/BurntSushi/toml surfaced by the
// rdtc8822-debug-L1JGO-Whale and joeycumines-go-utilpkg examples.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Display is the window mode the settings file selects.
type Display string

const (
	DisplayFullscreen Display = "fullscreen"
	DisplayWindow     Display = "window"
)

// Backend names the rendering backend the settings file selects. The
// known set is out of scope for the core; it's recorded as-is.
type Backend string

// Settings mirrors the TOML document spec.md §6 names: `display`,
// `tile_size`, `backend`.
type Settings struct {
	Display  Display `toml:"display"`
	TileSize int     `toml:"tile_size"`
	Backend  Backend `toml:"backend"`
}

// Default returns the settings a fresh install ships with.
func Default() Settings {
	return Settings{
		Display:  DisplayWindow,
		TileSize: 16,
		Backend:  "opengl",
	}
}

// Load decodes a settings file at path. A missing or malformed file is a
// content error: the caller decides whether to fall back to Default or
// abort, per spec.md §7's "content errors ... fatal with a clear
// diagnostic" guidance for the equivalent replay-log case.
func Load(path string) (Settings, error) {
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings file %q: %w", path, err)
	}
	return s, nil
}
