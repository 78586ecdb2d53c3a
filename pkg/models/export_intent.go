// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"math/big"

	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/ids"
)

// ExportIntent carries every parameter of a C->P export before it is encoded.
// It is built per request and handed straight to the assembly primitive.
type ExportIntent struct {
	NetworkID uint32
	// HRP is the network's bech32 prefix; every address string must carry it.
	HRP     string
	Amount  *big.Int
	AssetID ids.ID

	SourceChain             ChainID
	DestinationChain        ChainID
	SourceBlockchainID      ids.ID
	DestinationBlockchainID ids.ID

	// SourceAddress is the 0x-prefixed hex account on the source chain.
	SourceAddress string
	// SourceAddressBech32 is the same key rendered as a C-<hrp>1... string.
	SourceAddressBech32  string
	DestinationAddresses []string

	Nonce     uint64
	LockTime  uint64
	Threshold uint32
	Fee       uint64
}

func (i *ExportIntent) Validate() error {
	switch {
	case i == nil:
		return fmt.Errorf("%w: nil export intent", constants.ErrInvalidArgument)
	case i.Amount == nil || i.Amount.Sign() <= 0:
		return fmt.Errorf("%w: export amount must be positive", constants.ErrInvalidArgument)
	case i.SourceChain != ChainC:
		return fmt.Errorf("%w: export source chain must be C, got %s", constants.ErrInvalidArgument, i.SourceChain)
	case i.DestinationChain != ChainP:
		return fmt.Errorf("%w: export destination chain must be P, got %s", constants.ErrInvalidArgument, i.DestinationChain)
	case len(i.DestinationAddresses) != 1:
		return fmt.Errorf("%w: expected exactly one destination address, got %d", constants.ErrInvalidArgument, len(i.DestinationAddresses))
	case i.LockTime != constants.ExportLockTime:
		return fmt.Errorf("%w: export lock time must be %d", constants.ErrInvalidArgument, constants.ExportLockTime)
	case i.Threshold != constants.ExportThreshold:
		return fmt.Errorf("%w: export threshold must be %d", constants.ErrInvalidArgument, constants.ExportThreshold)
	}
	return nil
}
