package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"LOG_FORMAT" env-default:"text"`
	Game      Game   `yaml:"game"`
}

type Game struct {
	PlayerXName string `yaml:"player-x-name" env:"PLAYER_X_NAME" env-default:"Player 1"`
	PlayerOName string `yaml:"player-o-name" env:"PLAYER_O_NAME" env-default:"Player 2"`
}

// Load - reads the config file when it exists; otherwise the configuration
// comes from environment variables and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}
