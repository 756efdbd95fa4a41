package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Bar      BarConfig     `toml:"bar"`
	UI       UIConfig      `toml:"ui"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type BarConfig struct {
	Tolerance   float64 `toml:"tolerance"`
	Height      float64 `toml:"height"`
	SnapDelayMS int     `toml:"snap_delay_ms"`
	Title       string  `toml:"title"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Rows       int  `toml:"rows"` // number of demo feed rows
}

type KeybindConfig struct {
	ScrollUp   string `toml:"scroll_up"`
	ScrollDown string `toml:"scroll_down"`
	PageUp     string `toml:"page_up"`
	PageDown   string `toml:"page_down"`
	Reset      string `toml:"reset"`
	Debug      string `toml:"debug"`

	ToleranceDown string `toml:"tolerance_down"`
	ToleranceUp   string `toml:"tolerance_up"`
}

func DefaultConfig() *Config {
	return &Config{
		Bar: BarConfig{
			Tolerance:   44,
			Height:      60,
			SnapDelayMS: 300,
			Title:       "Scrollable",
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      480,
			Height:     800,
			Rows:       120,
		},
		Keybinds: KeybindConfig{
			ScrollUp:   "Up",
			ScrollDown: "Down",
			PageUp:     "PageUp",
			PageDown:   "PageDown",
			Reset:      "R",
			Debug:      "F12",

			ToleranceDown: "[",
			ToleranceUp:   "]",
		},
	}
}

// SnapDelay returns the bar's release snap delay. Zero or negative disables snapping.
func (b BarConfig) SnapDelay() time.Duration {
	if b.SnapDelayMS <= 0 {
		return -1
	}
	return time.Duration(b.SnapDelayMS) * time.Millisecond
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
	return filepath.Join(configHome, "scrollnav"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path over the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return f.Close()
}
