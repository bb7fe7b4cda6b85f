package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/linealabs/code39/pkg/render"
)

// fileConfig mirrors the optional TOML config file. Every field
// overrides the built-in default for the matching generate flag; flags
// given on the command line win over the file.
//
// Example ~/.config/code39/config.toml:
//
//	format = "svg"
//	module_width = 3
//	bar_height = 80
//	quiet_zone = 12
type fileConfig struct {
	Format      string `toml:"format"`
	ModuleWidth int    `toml:"module_width"`
	BarHeight   int    `toml:"bar_height"`
	QuietZone   *int   `toml:"quiet_zone"` // pointer: zero is a valid setting
}

// configPath returns the config file location using the XDG standard
// (~/.config/code39/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadRenderDefaults returns the render defaults with any config file
// settings applied on top. A missing file is not an error; a malformed
// file is, so typos surface instead of being silently ignored.
func loadRenderDefaults() (render.Config, error) {
	cfg := render.DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	return applyConfigFile(cfg, path)
}

func applyConfigFile(cfg render.Config, path string) (render.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, err
	}

	if fc.Format != "" {
		cfg.Format = fc.Format
	}
	if fc.ModuleWidth != 0 {
		cfg.ModuleWidth = fc.ModuleWidth
	}
	if fc.BarHeight != 0 {
		cfg.BarHeight = fc.BarHeight
	}
	if fc.QuietZone != nil {
		cfg.QuietZone = *fc.QuietZone
	}
	return cfg, nil
}
