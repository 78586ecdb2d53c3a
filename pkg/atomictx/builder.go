// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package atomictx

import (
	"fmt"
	"math"

	"github.com/luxfi/address"
	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"
	"github.com/luxfi/utxo"
	"github.com/luxfi/utxo/secp256k1fx"
)

// NewExportTx encodes intent as a single-input export. The input debits
// amount+fee from the source account; the output credits amount to the
// destination owners. Every failure wraps constants.ErrTxAssembly.
func NewExportTx(intent *models.ExportIntent) (*Tx, error) {
	if err := intent.Validate(); err != nil {
		return nil, assemblyErr(err)
	}
	if !intent.Amount.IsUint64() {
		return nil, assemblyErr(fmt.Errorf("amount %s overflows uint64", intent.Amount))
	}
	amount := intent.Amount.Uint64()
	if amount > math.MaxUint64-intent.Fee {
		return nil, assemblyErr(fmt.Errorf("amount %d plus fee %d overflows uint64", amount, intent.Fee))
	}
	if intent.AssetID == ids.Empty {
		return nil, assemblyErr(errEmptyInputAssetID)
	}
	if !common.IsHexAddress(intent.SourceAddress) {
		return nil, assemblyErr(fmt.Errorf("invalid source address %q", intent.SourceAddress))
	}
	if _, err := parseChainAddress(intent.SourceAddressBech32, intent.SourceChain, intent.HRP); err != nil {
		return nil, assemblyErr(err)
	}

	addrs := make([]ids.ShortID, 0, len(intent.DestinationAddresses))
	for _, addrStr := range intent.DestinationAddresses {
		addr, err := parseChainAddress(addrStr, intent.DestinationChain, intent.HRP)
		if err != nil {
			return nil, assemblyErr(err)
		}
		addrs = append(addrs, addr)
	}

	unsigned := &UnsignedExportTx{
		NetworkID:        intent.NetworkID,
		BlockchainID:     intent.SourceBlockchainID,
		DestinationChain: intent.DestinationBlockchainID,
		Ins: []EVMInput{{
			Address: common.HexToAddress(intent.SourceAddress),
			Amount:  amount + intent.Fee,
			AssetID: intent.AssetID,
			Nonce:   intent.Nonce,
		}},
		ExportedOutputs: []*utxo.TransferableOutput{{
			Asset: utxo.Asset{ID: intent.AssetID},
			Out: &secp256k1fx.TransferOutput{
				Amt: amount,
				OutputOwners: secp256k1fx.OutputOwners{
					Locktime:  intent.LockTime,
					Threshold: intent.Threshold,
					Addrs:     addrs,
				},
			},
		}},
	}
	if err := unsigned.Verify(); err != nil {
		return nil, assemblyErr(err)
	}
	return &Tx{Unsigned: unsigned}, nil
}

// parseChainAddress decodes addrStr and checks it belongs to chain on the
// network identified by hrp.
func parseChainAddress(addrStr string, chain models.ChainID, hrp string) (ids.ShortID, error) {
	chainAlias, addrHRP, addrBytes, err := address.Parse(addrStr)
	if err != nil {
		return ids.ShortEmpty, fmt.Errorf("invalid address %q: %w", addrStr, err)
	}
	if chainAlias != chain.String() {
		return ids.ShortEmpty, fmt.Errorf("address %q is not a %s-chain address", addrStr, chain)
	}
	if addrHRP != hrp {
		return ids.ShortEmpty, fmt.Errorf("address %q has hrp %q, expected %q", addrStr, addrHRP, hrp)
	}
	return ids.ToShortID(addrBytes)
}

func assemblyErr(err error) error {
	return fmt.Errorf("%w: %w", constants.ErrTxAssembly, err)
}
