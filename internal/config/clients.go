package config

import (
	"fmt"
	"time"
)

type AssetClientConfig struct {
	// Endpoint is the base URL of the asset custody service.
	Endpoint      string        `mapstructure:"endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *AssetClientConfig) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("asset custody service endpoint is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("asset custody service timeout is required")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("asset custody service max-retry-times is required")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("asset custody service retry-interval is required")
	}

	return nil
}

type RewardClientConfig struct {
	// Endpoint is the base URL of the reward asset service.
	Endpoint      string        `mapstructure:"endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *RewardClientConfig) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("reward asset service endpoint is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("reward asset service timeout is required")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("reward asset service max-retry-times is required")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("reward asset service retry-interval is required")
	}

	return nil
}
