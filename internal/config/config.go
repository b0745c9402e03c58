package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "actionbar"

// Config is the user configuration.
type Config struct {
	Icons    string `koanf:"icons"`    // "nerd", "unicode", or "none"
	Language string `koanf:"language"` // requested display language, e.g. "fr-CA"
	Catalog  string `koanf:"catalog"`  // TOML or YAML toolbar definition, empty uses the demo
	LogFile  string `koanf:"log_file"` // defaults to the XDG state dir

	// Toolbar cosmetics
	Toolbar ToolbarConfig `koanf:"toolbar"`

	// Per-identifier glyph overrides applied on top of the icon style
	IconsOverride map[string]string `koanf:"icons_override"`
}

// ToolbarConfig holds the toolbar cosmetics. Use the accessor methods to get
// values with defaults applied.
type ToolbarConfig struct {
	FeedbackMS        *int   `koanf:"feedback_ms"`         // press feedback, 0 disables (default: 150)
	ButtonGap         *int   `koanf:"button_gap"`          // cells between buttons (default: 1)
	Align             string `koanf:"align"`               // "right" or "left" (default: "right")
	CloseIconPosition string `koanf:"close_icon_position"` // "right" or "left" (default: "right")
	NoCloseIcon       bool   `koanf:"no_close_icon"`
	TriggerIcon       string `koanf:"trigger_icon"`    // icon identifier (default: "more_vert")
	MaxMenuHeight     int    `koanf:"max_menu_height"` // visible menu rows, 0 shows all
	Title             string `koanf:"title"`           // heading of the overflow menu
}

// Load reads the configuration. With an explicit path only that file is
// read and it must exist; otherwise the XDG config file and ./config.toml
// are merged (last wins), both optional.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	configPaths := getConfigPaths()
	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, err
		}
		configPaths = []string{explicit}
	}

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/actionbar/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogPath returns the log file location, defaulting to the XDG state dir.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// Feedback returns how long a pressed button stays highlighted.
func (t ToolbarConfig) Feedback() time.Duration {
	if t.FeedbackMS == nil || *t.FeedbackMS < 0 {
		return 150 * time.Millisecond
	}
	return time.Duration(*t.FeedbackMS) * time.Millisecond
}

// Gap returns the spacing between buttons.
func (t ToolbarConfig) Gap() int {
	if t.ButtonGap == nil || *t.ButtonGap < 0 {
		return 1
	}
	return *t.ButtonGap
}

// AlignRight reports whether buttons are pushed to the right edge.
func (t ToolbarConfig) AlignRight() bool {
	return !strings.EqualFold(t.Align, "left")
}

// CloseIconLeft reports whether the menu's close icon sits before the title.
func (t ToolbarConfig) CloseIconLeft() bool {
	return strings.EqualFold(t.CloseIconPosition, "left")
}

// MenuHeight returns the visible menu rows, 0 meaning all.
func (t ToolbarConfig) MenuHeight() int {
	return max(t.MaxMenuHeight, 0)
}
