package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig bundles the settings required by the REST API application.
type RestConfig struct {
	Logger     LoggerSettings    `mapstructure:"logger"`
	Database   DatabaseSettings  `mapstructure:"database"`
	Server     ServerSettings    `mapstructure:"server"`
	Challenges ChallengeSettings `mapstructure:"challenges"`
}

// Validate checks all nested settings.
func (c *RestConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Challenges.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the REST API configuration from the given YAML
// file, with CRYPTOPALS_-prefixed environment variables taking precedence.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("CRYPTOPALS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setRestDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "cryptopals.db")
	v.SetDefault("server.port", "8080")
	v.SetDefault("challenges.data_dir", "data")
}
