// Package config loads runtime settings from an optional YAML file with
// environment-variable overrides.
package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries the tunables of the annotation pipeline. The window radius
// and tie-break policy of the resolver are deliberately configurable rather
// than hard-coded.
type Config struct {
	WindowRadius int    `yaml:"window_radius" env:"PINYIN_WINDOW_RADIUS" env-default:"10"`
	Workers      int    `yaml:"workers" env:"PINYIN_WORKERS" env-default:"4"`
	LogLevel     string `yaml:"log_level" env:"PINYIN_LOG_LEVEL" env-default:"info"`
	LogDir       string `yaml:"log_dir" env:"PINYIN_LOG_DIR" env-default:"logs"`
}

// Load reads path when it exists, then applies environment overrides. A
// missing file is not an error; the environment and defaults apply alone.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			err := cleanenv.ReadConfig(path, &cfg)
			return cfg, err
		}
	}
	err := cleanenv.ReadEnv(&cfg)
	return cfg, err
}
