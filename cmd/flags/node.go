// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"
	"time"

	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/endpoint"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var nodeFlagNames = []string{
	constants.ConfigEndpoint,
	constants.ConfigNetworkTable,
	constants.ConfigRequestTimeout,
	constants.ConfigInitAttempts,
}

// NodeConfig is everything needed to reach a node and resolve its network.
type NodeConfig struct {
	Endpoint       string
	NetworkTable   string
	RequestTimeout time.Duration
	InitAttempts   uint
}

func AddNodeFlags(fs *pflag.FlagSet) {
	fs.String(constants.ConfigEndpoint, constants.DefaultEndpoint, "node endpoint URL (env "+constants.EnvEndpoint+")")
	fs.String(constants.ConfigNetworkTable, "", "YAML network table replacing the built-in networks (env "+constants.EnvNetworkTable+")")
	fs.Duration(constants.ConfigRequestTimeout, constants.APIRequestTimeout, "timeout of each node request")
	fs.Uint(constants.ConfigInitAttempts, constants.InitAttempts, "attempts to reach the node before giving up")
}

// BindNodeFlags wires the node flags into v.
// Priority: flags > env vars > config file > flag defaults
func BindNodeFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, name := range nodeFlagNames {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	if err := v.BindEnv(constants.ConfigEndpoint, constants.EnvEndpoint); err != nil {
		return err
	}
	return v.BindEnv(constants.ConfigNetworkTable, constants.EnvNetworkTable)
}

func ReadNodeConfig(v *viper.Viper) (NodeConfig, error) {
	cfg := NodeConfig{
		Endpoint:       v.GetString(constants.ConfigEndpoint),
		NetworkTable:   v.GetString(constants.ConfigNetworkTable),
		RequestTimeout: v.GetDuration(constants.ConfigRequestTimeout),
		InitAttempts:   v.GetUint(constants.ConfigInitAttempts),
	}
	if _, err := endpoint.Parse(cfg.Endpoint); err != nil {
		return NodeConfig{}, err
	}
	if cfg.RequestTimeout <= 0 {
		return NodeConfig{}, fmt.Errorf("%w: %s must be positive", constants.ErrInvalidArgument, constants.ConfigRequestTimeout)
	}
	if cfg.InitAttempts == 0 {
		return NodeConfig{}, fmt.Errorf("%w: %s must be at least 1", constants.ErrInvalidArgument, constants.ConfigInitAttempts)
	}
	return cfg, nil
}
