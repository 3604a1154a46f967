package config

import (
	"errors"

	"cosmossdk.io/math"
)

type StakingConfig struct {
	// EngineAddress is the identity under which the engine holds custody of
	// staked assets at the asset custody service.
	EngineAddress string `mapstructure:"engine-address"`
	// AdminKey is the capability required by administrative operations.
	AdminKey string `mapstructure:"admin-key"`
	// DefaultRewardRate seeds version 0 of the rate timeline on first start,
	// expressed in reward base units accrued per asset per day.
	DefaultRewardRate string `mapstructure:"default-reward-rate"`
}

func (cfg *StakingConfig) Validate() error {
	if cfg.EngineAddress == "" {
		return errors.New("engine-address is required")
	}
	if cfg.AdminKey == "" {
		return errors.New("admin-key is required")
	}

	rate, ok := math.NewIntFromString(cfg.DefaultRewardRate)
	if !ok {
		return errors.New("default-reward-rate must be an integer amount of base units per day")
	}
	if rate.IsNegative() {
		return errors.New("default-reward-rate must not be negative")
	}

	return nil
}
