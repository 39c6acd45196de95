package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/glengine/engine"
	"github.com/spaghettifunk/glengine/engine/core"
	"github.com/spaghettifunk/glengine/engine/platform"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Log     LogConfig     `toml:"log"`
	Profile ProfileConfig `toml:"profile"`
}

type WindowConfig struct {
	Title  string   `toml:"title"`
	X      int      `toml:"x"`
	Y      int      `toml:"y"`
	Width  int      `toml:"width"`
	Height int      `toml:"height"`
	Flags  []string `toml:"flags"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type ProfileConfig struct {
	// One of "", "cpu", "mem" or "trace".
	Mode string `toml:"mode"`
	// Output directory; empty means a temporary directory.
	Path string `toml:"path"`
}

const (
	ProfileNone  = ""
	ProfileCPU   = "cpu"
	ProfileMem   = "mem"
	ProfileTrace = "trace"
)

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Hello Triangle",
			X:      0,
			Y:      0,
			Width:  320,
			Height: 240,
			Flags:  []string{"rgb"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file. Keys missing from the file keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", core.ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, err := platform.ParseWindowFlags(c.Window.Flags); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Profile.Mode {
	case ProfileNone, ProfileCPU, ProfileMem, ProfileTrace:
	default:
		return fmt.Errorf("%w: unknown profile mode %q", core.ErrInvalidConfig, c.Profile.Mode)
	}
	return nil
}

func (c *Config) LogLevel() (core.LogLevel, error) {
	level, err := core.ParseLogLevel(c.Log.Level)
	if err != nil {
		return level, fmt.Errorf("%w: %v", core.ErrInvalidConfig, err)
	}
	return level, nil
}

// Application converts the window section into the engine's settings.
func (c *Config) Application() (*engine.ApplicationConfig, error) {
	flags, err := platform.ParseWindowFlags(c.Window.Flags)
	if err != nil {
		return nil, err
	}
	return &engine.ApplicationConfig{
		StartPosX:   c.Window.X,
		StartPosY:   c.Window.Y,
		StartWidth:  c.Window.Width,
		StartHeight: c.Window.Height,
		Name:        c.Window.Title,
		Flags:       flags,
	}, nil
}
