// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chainclient holds the per-chain sub-clients of a node and the
// assembly entry point for atomic transactions.
package chainclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
)

// ChainClient is the per-chain view the export builder needs.
type ChainClient interface {
	Chain() models.ChainID
	// BaseFee is the chain's current base fee in its smallest unit.
	BaseFee(ctx context.Context) (*big.Int, error)
}

var (
	_ ChainClient = (*StaticFeeClient)(nil)
	_ ChainClient = (*EVMClient)(nil)
)

// StaticFeeClient serves chains whose fee is a network constant (X and P).
type StaticFeeClient struct {
	chain models.ChainID
	fee   uint64
}

func NewStaticFeeClient(chain models.ChainID, fee uint64) (*StaticFeeClient, error) {
	switch chain {
	case models.ChainX, models.ChainP:
		return &StaticFeeClient{chain: chain, fee: fee}, nil
	case models.ChainC:
		return nil, fmt.Errorf("%w: C-chain fees are dynamic", constants.ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: unknown chain %s", constants.ErrInvalidArgument, chain)
	}
}

func (s *StaticFeeClient) Chain() models.ChainID {
	return s.chain
}

func (s *StaticFeeClient) BaseFee(context.Context) (*big.Int, error) {
	return new(big.Int).SetUint64(s.fee), nil
}
