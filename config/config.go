// Package config loads engine and backend settings from TOML
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/termcanvas/input"
	"github.com/lixenwraith/termcanvas/logging"
	"github.com/lixenwraith/termcanvas/terminal"
)

// Backend names accepted by the backend key
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// Config describes how an engine is opened
// Zero width and height fill the terminal
type Config struct {
	Backend   string              `toml:"backend"`
	FPS       int                 `toml:"fps"`
	Width     int                 `toml:"width"`
	Height    int                 `toml:"height"`
	MinWidth  int                 `toml:"min_width"`
	MinHeight int                 `toml:"min_height"`
	ColorMode string              `toml:"color_mode"`
	Mouse     bool                `toml:"mouse"`
	Log       LogConfig           `toml:"log"`
	Keys      map[string][]string `toml:"keys,omitempty"`
}

// LogConfig selects the log sink, an empty file discards logs
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the settings used for keys a file leaves out
func Default() Config {
	return Config{
		Backend:   BackendTcell,
		FPS:       30,
		ColorMode: "auto",
		Mouse:     true,
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads and validates a TOML file on top of Default
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return finish(cfg, md)
}

// Decode parses and validates TOML text on top of Default
func Decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot open an engine
func (c Config) Validate() error {
	switch c.Backend {
	case BackendTcell, BackendANSI:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Width < 0 || c.Height < 0 || c.MinWidth < 0 || c.MinHeight < 0 {
		return fmt.Errorf("sizes must not be negative")
	}
	if (c.Width == 0) != (c.Height == 0) {
		return fmt.Errorf("width and height must be set together")
	}
	if c.Width > 0 && (c.MinWidth > c.Width || c.MinHeight > c.Height) {
		return fmt.Errorf("minimum size %dx%d exceeds screen size %dx%d", c.MinWidth, c.MinHeight, c.Width, c.Height)
	}
	if _, ok := terminal.ParseColorMode(c.ColorMode); !ok {
		return fmt.Errorf("unknown color mode %q", c.ColorMode)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := input.ParseBindings(c.Keys); err != nil {
		return err
	}
	return nil
}

// Bindings parses the keys table, which Validate has already checked
func (c Config) Bindings() input.Bindings {
	b, _ := input.ParseBindings(c.Keys)
	return b
}

// TerminalColorMode returns the parsed color mode, auto when invalid
func (c Config) TerminalColorMode() terminal.ColorMode {
	mode, _ := terminal.ParseColorMode(c.ColorMode)
	return mode
}

// Encode renders c as TOML
func (c Config) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", err
	}
	return b.String(), nil
}
