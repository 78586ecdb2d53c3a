// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package atomictx

import (
	"errors"
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"
	"github.com/luxfi/utxo"
)

var (
	_ UnsignedAtomicTx = (*UnsignedExportTx)(nil)

	errNoInputs           = errors.New("export tx has no inputs")
	errNoExportedOutputs  = errors.New("export tx has no exported outputs")
	errNilOutput          = errors.New("nil exported output")
	errSameChainExport    = errors.New("export tx cannot target its own chain")
	errZeroInputAmount    = errors.New("input has zero amount")
	errEmptyInputAssetID  = errors.New("input has empty asset id")
	errEmptySourceChainID = errors.New("export tx has empty blockchain id")
)

// UnsignedAtomicTx is an atomic transaction body before credentials are
// attached.
type UnsignedAtomicTx interface {
	Verify() error
}

// EVMInput debits an account on the exporting EVM chain.
type EVMInput struct {
	Address common.Address `serialize:"true" json:"address"`
	Amount  uint64         `serialize:"true" json:"amount"`
	AssetID ids.ID         `serialize:"true" json:"assetID"`
	Nonce   uint64         `serialize:"true" json:"nonce"`
}

// UnsignedExportTx moves funds from the EVM chain into shared memory for
// DestinationChain.
type UnsignedExportTx struct {
	NetworkID uint32 `serialize:"true" json:"networkID"`
	// ID of the exporting chain
	BlockchainID ids.ID `serialize:"true" json:"blockchainID"`
	// Which chain to send the funds to
	DestinationChain ids.ID `serialize:"true" json:"destinationChain"`
	// Accounts debited on the exporting chain
	Ins []EVMInput `serialize:"true" json:"inputs"`
	// The outputs this transaction is sending to the other chain
	ExportedOutputs []*utxo.TransferableOutput `serialize:"true" json:"exportedOutputs"`
}

func (tx *UnsignedExportTx) Verify() error {
	switch {
	case tx.BlockchainID == ids.Empty:
		return errEmptySourceChainID
	case tx.BlockchainID == tx.DestinationChain:
		return errSameChainExport
	case len(tx.Ins) == 0:
		return errNoInputs
	case len(tx.ExportedOutputs) == 0:
		return errNoExportedOutputs
	}
	for i, in := range tx.Ins {
		if in.Amount == 0 {
			return fmt.Errorf("input %d: %w", i, errZeroInputAmount)
		}
		if in.AssetID == ids.Empty {
			return fmt.Errorf("input %d: %w", i, errEmptyInputAssetID)
		}
	}
	for i, out := range tx.ExportedOutputs {
		if out == nil || out.Out == nil {
			return fmt.Errorf("output %d: %w", i, errNilOutput)
		}
	}
	return nil
}
