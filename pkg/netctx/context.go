// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package netctx resolves the network a node belongs to and exposes the
// per-network constants that address rendering and transaction assembly need.
package netctx

import (
	"context"
	"fmt"
	"maps"

	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/ids"
)

// Context is the resolved network. It is read-only once Initialize returns it;
// re-initializing yields a new value. A nil or zero Context is uninitialized.
type Context struct {
	initialized   bool
	networkID     uint32
	name          string
	hrp           string
	assetID       ids.ID
	txFee         uint64
	blockchainIDs map[models.ChainID]ids.ID
}

// Initialize asks the node for its network ID once and resolves it against
// tables. A nil tables uses DefaultTables.
func Initialize(ctx context.Context, discoverer Discoverer, tables *Tables) (*Context, error) {
	if discoverer == nil {
		return nil, fmt.Errorf("%w: nil discoverer", constants.ErrInvalidArgument)
	}
	if tables == nil {
		var err error
		tables, err = DefaultTables()
		if err != nil {
			return nil, err
		}
	}

	networkID, err := discoverer.GetNetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get network ID: %w", constants.ErrNetworkUnavailable, err)
	}
	network, ok := tables.Lookup(networkID)
	if !ok {
		return nil, fmt.Errorf("%w: no configuration for network ID %d", constants.ErrUnknownNetwork, networkID)
	}

	return &Context{
		initialized:   true,
		networkID:     network.ID,
		name:          network.Name,
		hrp:           network.HRP,
		assetID:       network.AssetID,
		txFee:         network.TxFee,
		blockchainIDs: maps.Clone(network.BlockchainIDs),
	}, nil
}

// Ready reports whether c came out of a successful Initialize.
func (c *Context) Ready() error {
	if c == nil || !c.initialized {
		return constants.ErrContextNotInitialized
	}
	return nil
}

func (c *Context) NetworkID() (uint32, error) {
	if err := c.Ready(); err != nil {
		return 0, err
	}
	return c.networkID, nil
}

func (c *Context) Name() (string, error) {
	if err := c.Ready(); err != nil {
		return "", err
	}
	return c.name, nil
}

// HRP returns the human-readable prefix of bech32 addresses on this network.
func (c *Context) HRP() (string, error) {
	if err := c.Ready(); err != nil {
		return "", err
	}
	return c.hrp, nil
}

// AssetID returns the native asset ID.
func (c *Context) AssetID() (ids.ID, error) {
	if err := c.Ready(); err != nil {
		return ids.Empty, err
	}
	return c.assetID, nil
}

// TxFee returns the static X/P chain transaction fee.
func (c *Context) TxFee() (uint64, error) {
	if err := c.Ready(); err != nil {
		return 0, err
	}
	return c.txFee, nil
}

func (c *Context) BlockchainID(chain models.ChainID) (ids.ID, error) {
	if err := c.Ready(); err != nil {
		return ids.Empty, err
	}
	switch chain {
	case models.ChainX, models.ChainC, models.ChainP:
		return c.blockchainIDs[chain], nil
	}
	return ids.Empty, fmt.Errorf("%w: unknown chain %s", constants.ErrInvalidArgument, chain)
}

// Network returns a copy of the resolved network parameters.
func (c *Context) Network() (Network, error) {
	if err := c.Ready(); err != nil {
		return Network{}, err
	}
	return Network{
		ID:            c.networkID,
		Name:          c.name,
		HRP:           c.hrp,
		AssetID:       c.assetID,
		TxFee:         c.txFee,
		BlockchainIDs: maps.Clone(c.blockchainIDs),
	}, nil
}

// Kind maps the network ID to a well known network, or models.Undefined.
func (c *Context) Kind() models.Network {
	if c.Ready() != nil {
		return models.Undefined
	}
	return models.NetworkFromNetworkID(c.networkID)
}
