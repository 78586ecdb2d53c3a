// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainclient

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/geth/ethclient"
)

// EVMClient talks to the C-chain JSON-RPC endpoint
type EVMClient struct {
	client  *ethclient.Client
	timeout time.Duration
}

// NewEVMClientWithTimeout creates an EVM client with a custom per-call timeout
func NewEVMClientWithTimeout(url string, timeout time.Duration) (*EVMClient, error) {
	client, err := ethclient.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to dial EVM RPC: %w", constants.ErrInvalidArgument, err)
	}
	if timeout <= 0 {
		timeout = constants.APIRequestTimeout
	}
	return &EVMClient{
		client:  client,
		timeout: timeout,
	}, nil
}

func (*EVMClient) Chain() models.ChainID {
	return models.ChainC
}

// BaseFee asks the node for its current base fee, falling back to the latest
// header when eth_baseFee is not served.
func (c *EVMClient) BaseFee(ctx context.Context) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var fee hexutil.Big
	if err := c.client.Client().CallContext(ctx, &fee, "eth_baseFee"); err == nil {
		return fee.ToInt(), nil
	}
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get base fee: %w", err)
	}
	if header.BaseFee != nil {
		return header.BaseFee, nil
	}
	return c.client.SuggestGasPrice(ctx)
}

// TransactionCount returns the confirmed nonce of a 0x-prefixed account.
func (c *EVMClient) TransactionCount(ctx context.Context, address string) (uint64, error) {
	if !common.IsHexAddress(address) {
		return 0, fmt.Errorf("%w: invalid hex address %q", constants.ErrInvalidArgument, address)
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.NonceAt(ctx, common.HexToAddress(address), nil)
}

// Close closes the client connection
func (c *EVMClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
