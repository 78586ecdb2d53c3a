// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package chainclient

import (
	"context"
	"fmt"

	"github.com/luxfi/atomicexport/pkg/atomictx"
	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/atomicexport/pkg/netctx"
)

// Client bundles one sub-client per chain of a single node.
type Client struct {
	x *StaticFeeClient
	c *EVMClient
	p *StaticFeeClient
}

// New builds the X and P sub-clients from the static fee of nc and takes
// ownership of evm.
func New(evm *EVMClient, nc *netctx.Context) (*Client, error) {
	if evm == nil {
		return nil, fmt.Errorf("%w: nil C-chain client", constants.ErrInvalidArgument)
	}
	txFee, err := nc.TxFee()
	if err != nil {
		return nil, err
	}
	x, err := NewStaticFeeClient(models.ChainX, txFee)
	if err != nil {
		return nil, err
	}
	p, err := NewStaticFeeClient(models.ChainP, txFee)
	if err != nil {
		return nil, err
	}
	return &Client{x: x, c: evm, p: p}, nil
}

func (c *Client) ForChain(chain models.ChainID) (ChainClient, error) {
	switch chain {
	case models.ChainX:
		return c.x, nil
	case models.ChainC:
		return c.c, nil
	case models.ChainP:
		return c.p, nil
	default:
		return nil, fmt.Errorf("%w: unknown chain %s", constants.ErrInvalidArgument, chain)
	}
}

func (c *Client) CChain() *EVMClient {
	return c.c
}

// BuildExportTx assembles intent on its source chain. Only the C-chain
// exports through this path.
func (c *Client) BuildExportTx(ctx context.Context, intent *models.ExportIntent) (*atomictx.Tx, error) {
	if intent == nil {
		return nil, fmt.Errorf("%w: nil export intent", constants.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch intent.SourceChain {
	case models.ChainC:
		return atomictx.NewExportTx(intent)
	case models.ChainX, models.ChainP:
		return nil, fmt.Errorf("%w: %s-chain exports are not supported", constants.ErrTxAssembly, intent.SourceChain)
	default:
		return nil, fmt.Errorf("%w: unknown source chain %s", constants.ErrInvalidArgument, intent.SourceChain)
	}
}

func (c *Client) Close() {
	c.c.Close()
}
