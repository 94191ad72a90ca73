// Package config loads server configuration from a yaml file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the websocket gateway settings.
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	ReadLimit    int64         `mapstructure:"read_limit"`
}

// PlayerConfig names one of the two fixed players.
type PlayerConfig struct {
	Name  string `mapstructure:"name"`
	Color string `mapstructure:"color"`
}

// GameConfig holds the per-game settings.
type GameConfig struct {
	FirstPlayer  PlayerConfig `mapstructure:"first_player"`
	SecondPlayer PlayerConfig `mapstructure:"second_player"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8089")
	v.SetDefault("server.tick_interval", 100*time.Millisecond)
	v.SetDefault("server.read_limit", 4096)

	v.SetDefault("game.first_player.name", "White")
	v.SetDefault("game.first_player.color", "#ffffff")
	v.SetDefault("game.second_player.name", "Black")
	v.SetDefault("game.second_player.color", "#000000")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads the configuration file at path. A missing file is not an
// error; defaults and PENTAGO_* environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PENTAGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.TickInterval <= 0 {
		return fmt.Errorf("server.tick_interval must be positive, got %s", c.Server.TickInterval)
	}
	if c.Game.FirstPlayer.Name == c.Game.SecondPlayer.Name {
		return fmt.Errorf("players must have distinct names, both are %q", c.Game.FirstPlayer.Name)
	}
	return nil
}
