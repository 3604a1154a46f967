package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Db      DbConfig           `mapstructure:"db"`
	Staking StakingConfig      `mapstructure:"staking"`
	Asset   AssetClientConfig  `mapstructure:"asset"`
	Reward  RewardClientConfig `mapstructure:"reward"`
	Queue   QueueConfig        `mapstructure:"queue"`
	Api     ApiConfig          `mapstructure:"api"`
	Metrics MetricsConfig      `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return err
	}
	if err := cfg.Staking.Validate(); err != nil {
		return err
	}
	if err := cfg.Asset.Validate(); err != nil {
		return err
	}
	if err := cfg.Reward.Validate(); err != nil {
		return err
	}
	if err := cfg.Queue.Validate(); err != nil {
		return err
	}
	if err := cfg.Api.Validate(); err != nil {
		return err
	}
	return cfg.Metrics.Validate()
}

// New returns a fully parsed Config object from the given config file path
func New(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
