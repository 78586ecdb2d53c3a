// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package atomiccmd

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/luxfi/atomicexport/cmd/flags"
	"github.com/luxfi/atomicexport/pkg/application"
	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/exportclient"
	"github.com/luxfi/atomicexport/pkg/netctx"
	"github.com/luxfi/atomicexport/pkg/utils"
	"github.com/luxfi/atomicexport/pkg/ux"
	"github.com/spf13/viper"
)

var app *application.Lux

// connect reads the node config, dials the node and resolves its network,
// retrying while the node is unreachable.
func connect(ctx context.Context) (*exportclient.Client, *netctx.Context, error) {
	cfg, err := flags.ReadNodeConfig(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}
	tables, err := loadTables(cfg.NetworkTable)
	if err != nil {
		return nil, nil, err
	}
	client, err := exportclient.New(exportclient.Config{
		Endpoint:       cfg.Endpoint,
		Tables:         tables,
		RequestTimeout: cfg.RequestTimeout,
	}, app.Log)
	if err != nil {
		return nil, nil, err
	}
	nc, err := utils.RetryUnavailable(ctx, cfg.InitAttempts, constants.InitRetryDelay, app.Log, client.Init)
	if err != nil {
		ux.Logger.RedXToUser("failed to connect to %s: %s", cfg.Endpoint, err)
		client.Close()
		return nil, nil, err
	}
	return client, nc, nil
}

// loadTables prefers an explicit table, then one in the base dir, then the
// built-in networks.
func loadTables(path string) (*netctx.Tables, error) {
	if path != "" {
		return netctx.LoadTables(path)
	}
	path = app.GetNetworkTablePath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return netctx.LoadTables(path)
}

func parsePublicKey(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	publicKey, err := hex.DecodeString(s)
	if err != nil || len(publicKey) == 0 {
		return nil, fmt.Errorf("%w: public key must be hex encoded", constants.ErrInvalidArgument)
	}
	return publicKey, nil
}
