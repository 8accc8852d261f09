// Package config loads optional defaults for the nesting server and CLI
// from a TOML file, following the same BurntSushi/toml decoding style the
// rest of the corpus uses for manifest parsing.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the server port and a [nesting] section of default bin
// dimensions, rotation angles, margin and max bins. nestserver reads only
// Server.Port; the Nesting values are decoded but not applied to requests,
// and nestcli does not load a config file.
type Config struct {
	Server struct {
		Port string `toml:"port"`
	} `toml:"server"`

	Nesting struct {
		BinWidth       float64 `toml:"bin_width"`
		BinHeight      float64 `toml:"bin_height"`
		RotationAngles []int   `toml:"rotation_angles"`
		Margin         float64 `toml:"margin"`
		MaxBins        int     `toml:"max_bins"`
	} `toml:"nesting"`
}

// Default returns the built-in fallback configuration, used when no file is
// loaded or a file omits a section entirely.
func Default() Config {
	var c Config
	c.Server.Port = "8080"
	c.Nesting.BinWidth = 1000
	c.Nesting.BinHeight = 1000
	c.Nesting.RotationAngles = []int{0, 90, 180, 270}
	c.Nesting.Margin = 0
	c.Nesting.MaxBins = 0
	return c
}

// Load reads a TOML file at path on top of Default(). A missing file is not
// an error: Load silently returns the defaults, since config files are
// optional everywhere this is called.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
