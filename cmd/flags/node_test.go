// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"testing"
	"time"

	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newBoundFlags(t *testing.T) (*viper.Viper, *pflag.FlagSet) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddNodeFlags(fs)
	v := viper.New()
	require.NoError(t, BindNodeFlags(v, fs))
	return v, fs
}

func TestReadNodeConfigDefaults(t *testing.T) {
	require := require.New(t)
	t.Setenv(constants.EnvEndpoint, "")

	v, _ := newBoundFlags(t)
	cfg, err := ReadNodeConfig(v)
	require.NoError(err)
	require.Equal(NodeConfig{
		Endpoint:       constants.DefaultEndpoint,
		RequestTimeout: constants.APIRequestTimeout,
		InitAttempts:   constants.InitAttempts,
	}, cfg)
}

func TestReadNodeConfigPriority(t *testing.T) {
	require := require.New(t)
	t.Setenv(constants.EnvEndpoint, "https://api.lux-test.network:443")

	v, fs := newBoundFlags(t)
	cfg, err := ReadNodeConfig(v)
	require.NoError(err)
	require.Equal("https://api.lux-test.network:443", cfg.Endpoint)

	require.NoError(fs.Parse([]string{"--endpoint", "http://10.0.0.1:9650", "--request-timeout", "5s"}))
	cfg, err = ReadNodeConfig(v)
	require.NoError(err)
	require.Equal("http://10.0.0.1:9650", cfg.Endpoint)
	require.Equal(5*time.Second, cfg.RequestTimeout)
}

func TestReadNodeConfigInvalid(t *testing.T) {
	require := require.New(t)

	v, fs := newBoundFlags(t)
	require.NoError(fs.Parse([]string{"--endpoint", "notaurl"}))
	_, err := ReadNodeConfig(v)
	require.ErrorIs(err, constants.ErrInvalidArgument)

	v, fs = newBoundFlags(t)
	require.NoError(fs.Parse([]string{"--endpoint", "http://localhost:9650", "--init-attempts", "0"}))
	_, err = ReadNodeConfig(v)
	require.ErrorIs(err, constants.ErrInvalidArgument)
}
