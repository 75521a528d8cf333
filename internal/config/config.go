// Package config loads the optional .tapem.yaml file and merges it with
// command-line flags and environment into the theme used for a run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/tapem/pkg/render"
)

// File is the on-disk configuration shape.
type File struct {
	Theme   string `yaml:"theme"`    // "emoji" or "ascii"
	NoColor bool   `yaml:"no_color"` // strip color styles
}

// Flags holds the command-line values that participate in theme resolution.
type Flags struct {
	Theme   string // --theme; empty means unset
	ASCII   bool   // --ascii; wins over --theme
	NoColor bool   // --no-color
}

// DefaultTheme is used when neither flags nor the config file pick one.
const DefaultTheme = "emoji"

// Load reads .tapem.yaml if one exists, falling back to defaults on any
// problem. A broken config file is a warning, never a fatal error — the
// tool's job is to finish its report.
func Load() *File {
	cfg := &File{Theme: DefaultTheme}

	path := configPath()
	if path == "" {
		debugf("no .tapem.yaml found, using defaults")
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}

	var fileCfg File
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unmarshalling config file %s: %v. Using defaults.\n", path, err)
		return cfg
	}

	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	cfg.NoColor = fileCfg.NoColor
	debugf("loaded %s: theme=%s no_color=%t", path, cfg.Theme, cfg.NoColor)
	return cfg
}

// Resolve produces the final theme: flags override the config file, the
// NO_COLOR convention and non-TTY output both force monochrome. Color
// resolution never touches the glyph table.
func Resolve(cfg *File, flags Flags, isTTY bool) render.Theme {
	name := cfg.Theme
	if flags.Theme != "" {
		name = flags.Theme
	}
	if flags.ASCII {
		name = "ascii"
	}
	theme := render.ThemeByName(name)

	noColor := cfg.NoColor || flags.NoColor || os.Getenv("NO_COLOR") != "" || !isTTY
	if noColor {
		theme = render.Monochrome(theme)
	}
	debugf("resolved theme=%s noColor=%t", theme.Name, noColor)
	return theme
}

// configPath checks the working directory first, then the user config dir.
func configPath() string {
	local := ".tapem.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdg := filepath.Join(configHome, "tapem", ".tapem.yaml")
	if _, err := os.Stat(xdg); err == nil {
		return xdg
	}
	return ""
}

func debugf(format string, args ...any) {
	if os.Getenv("TAPEM_DEBUG") == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG config] "+format+"\n", args...)
}
