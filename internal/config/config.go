package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/jellyreel/internal/gallery"
)

type Config struct {
	Server   ServerConfig  `toml:"server"`
	Library  LibraryConfig `toml:"library"`
	Gallery  GalleryConfig `toml:"gallery"`
	UI       UIConfig      `toml:"ui"`
	Term     TermConfig    `toml:"term"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type ServerConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Token    string `toml:"token"`
	UserID   string `toml:"user_id"`
}

// LibraryConfig picks where reel items come from. A server URL with a token
// wins over Dir; with neither, a generated demo library is shown.
type LibraryConfig struct {
	Dir   string `toml:"dir"`
	Shelf string `toml:"shelf"`
	Limit int    `toml:"limit"`
}

type GalleryConfig struct {
	Axis            string  `toml:"axis"`
	CallbackInFling bool    `toml:"callback_in_fling"`
	MinScale        float64 `toml:"min_scale"`
	DPI             float64 `toml:"dpi"`
	InitialIndex    int     `toml:"initial_index"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type TermConfig struct {
	CardWidth  int  `toml:"card_width"`
	CardHeight int  `toml:"card_height"`
	Sound      bool `toml:"sound"`
}

type KeybindConfig struct {
	Prev      string `toml:"prev"`
	Next      string `toml:"next"`
	Select    string `toml:"select"`
	Back      string `toml:"back"`
	First     string `toml:"first"`
	Last      string `toml:"last"`
	ShelfPrev string `toml:"shelf_prev"`
	ShelfNext string `toml:"shelf_next"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{},
		Library: LibraryConfig{
			Limit: 200,
		},
		Gallery: GalleryConfig{
			Axis:         gallery.Horizontal.String(),
			MinScale:     0.75,
			DPI:          gallery.DefaultDPI,
			InitialIndex: 0,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1920,
			Height:     1080,
		},
		Term: TermConfig{
			CardWidth:  18,
			CardHeight: 9,
			Sound:      false,
		},
		Keybinds: KeybindConfig{
			Prev:      "Left",
			Next:      "Right",
			Select:    "Enter",
			Back:      "Escape",
			First:     "Home",
			Last:      "End",
			ShelfPrev: "Up",
			ShelfNext: "Down",
		},
	}
}

// Axis returns the configured reel axis. Unknown values are horizontal.
func (c *Config) Axis() gallery.Axis {
	return gallery.ParseAxis(c.Gallery.Axis)
}

// normalize replaces out-of-range values with their defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Library.Limit <= 0 {
		c.Library.Limit = def.Library.Limit
	}
	if c.Gallery.MinScale <= 0 || c.Gallery.MinScale > 1 {
		c.Gallery.MinScale = def.Gallery.MinScale
	}
	if c.Gallery.DPI <= 0 {
		c.Gallery.DPI = def.Gallery.DPI
	}
	if c.Gallery.InitialIndex < 0 {
		c.Gallery.InitialIndex = 0
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		c.UI.Width, c.UI.Height = def.UI.Width, def.UI.Height
	}
	if c.Term.CardWidth <= 0 {
		c.Term.CardWidth = def.Term.CardWidth
	}
	if c.Term.CardHeight <= 0 {
		c.Term.CardHeight = def.Term.CardHeight
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "jellyreel"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
