package config

import (
	"github.com/fox-one/pkg/config"
)

// Load load config file
func Load(cfgFile string, cfg *Config) error {
	config.AutomaticLoadEnv("LENDING")
	if err := config.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	defaults(cfg)
	return nil
}

func defaults(cfg *Config) {
	if cfg.API.Port == 0 {
		cfg.API.Port = 9000
	}

	if cfg.Oracle.StaleAfter == "" {
		cfg.Oracle.StaleAfter = "5m"
	}

	if cfg.Worker.InterestSpec == "" {
		cfg.Worker.InterestSpec = "@every 24h"
	}

	if cfg.Worker.LiquidationSpec == "" {
		cfg.Worker.LiquidationSpec = "@every 1m"
	}
}
