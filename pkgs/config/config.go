// Package config reads the coordinator's startup configuration, following
// the teacher's viper SetDefault-then-Unmarshal idiom (pkgs/config in the
// original Configuration/Server split), generalized to the gateway/port
// options spec §6 names.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// CoordinatorConfig holds the options recognized at coordinator startup
// (spec §6): gateway address, local bind port, the per-send timeout every
// runner uses, and default_retries (read, but not applied to commands,
// which default to 2 retries unless given command.Retries).
type CoordinatorConfig struct {
	GatewayIP      string `mapstructure:"gateway_ip"`
	GatewayPort    uint16 `mapstructure:"gateway_port"`
	LocalPort      uint16 `mapstructure:"local_port"`
	DefaultRetries uint8  `mapstructure:"default_retries"`
	SendTimeoutMS  uint32 `mapstructure:"send_timeout_ms"`
}

// NewConfig reads a single .zipgw.yaml, from $HOME if one exists there and
// otherwise from the current directory, applying spec §6's defaults for
// anything unset.
func NewConfig() (*CoordinatorConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(".zipgw")
	v.AddConfigPath("$HOME/")
	v.AddConfigPath(".")
	_ = v.SafeWriteConfig()

	v.SetDefault("gateway_port", 4123)
	v.SetDefault("local_port", 4000)
	v.SetDefault("default_retries", 2)
	v.SetDefault("send_timeout_ms", 2000)

	cfg := CoordinatorConfig{}
	if err := v.ReadInConfig(); err != nil {
		return &cfg, fmt.Errorf("config: cannot read configuration: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return &cfg, fmt.Errorf("config: cannot parse configuration: %w", err)
	}
	if cfg.GatewayIP == "" {
		return &cfg, fmt.Errorf("config: gateway_ip is required")
	}
	return &cfg, nil
}
