// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package exporttx builds unsigned C->P export transactions. Missing fees
// and nonces are filled in from the node before the intent is assembled.
package exporttx

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/luxfi/atomicexport/pkg/atomictx"
	"github.com/luxfi/atomicexport/pkg/chainclient"
	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/atomicexport/pkg/netctx"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LedgerClient exposes the per-chain sub-clients of a node and the
// transaction assembly primitive.
type LedgerClient interface {
	ForChain(chain models.ChainID) (chainclient.ChainClient, error)
	BuildExportTx(ctx context.Context, intent *models.ExportIntent) (*atomictx.Tx, error)
}

// AccountQuery returns the confirmed transaction count of a hex account.
type AccountQuery interface {
	TransactionCount(ctx context.Context, address string) (uint64, error)
}

// Request is one export. Nonce and Fee are looked up when nil.
type Request struct {
	Amount *big.Int
	// SourceAddress is the 0x-prefixed C-chain account that pays.
	SourceAddress string
	// SourceAddressBech32 is the same account as C-<hrp>1...
	SourceAddressBech32 string
	// DestinationAddress is the receiving P-<hrp>1... address.
	DestinationAddress string
	Nonce              *uint64
	Fee                *uint64
}

func (r Request) validate() error {
	switch {
	case r.Amount == nil || r.Amount.Sign() <= 0:
		return fmt.Errorf("%w: amount must be positive", constants.ErrInvalidArgument)
	case strings.TrimSpace(r.SourceAddress) == "":
		return fmt.Errorf("%w: empty source address", constants.ErrInvalidArgument)
	case strings.TrimSpace(r.SourceAddressBech32) == "":
		return fmt.Errorf("%w: empty source bech32 address", constants.ErrInvalidArgument)
	case strings.TrimSpace(r.DestinationAddress) == "":
		return fmt.Errorf("%w: empty destination address", constants.ErrInvalidArgument)
	}
	return nil
}

type Builder struct {
	ledger   LedgerClient
	accounts AccountQuery
	log      luxlog.Logger
}

func NewBuilder(ledger LedgerClient, accounts AccountQuery, log luxlog.Logger) *Builder {
	return &Builder{
		ledger:   ledger,
		accounts: accounts,
		log:      log,
	}
}

// BuildExportIntent resolves every parameter of req against nc. The fee and
// nonce lookups run concurrently; the nonce is never cached between calls.
func (b *Builder) BuildExportIntent(ctx context.Context, nc *netctx.Context, req Request) (*models.ExportIntent, error) {
	if err := nc.Ready(); err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	networkID, err := nc.NetworkID()
	if err != nil {
		return nil, err
	}
	hrp, err := nc.HRP()
	if err != nil {
		return nil, err
	}
	assetID, err := nc.AssetID()
	if err != nil {
		return nil, err
	}
	sourceID, err := nc.BlockchainID(models.ChainC)
	if err != nil {
		return nil, err
	}
	destinationID, err := nc.BlockchainID(models.ChainP)
	if err != nil {
		return nil, err
	}

	var fee, nonce uint64
	errGroup, gctx := errgroup.WithContext(ctx)
	if req.Fee != nil {
		fee = *req.Fee
	} else {
		errGroup.Go(func() error {
			var err error
			fee, err = b.lookupFee(gctx)
			return err
		})
	}
	if req.Nonce != nil {
		nonce = *req.Nonce
	} else {
		errGroup.Go(func() error {
			var err error
			nonce, err = b.accounts.TransactionCount(gctx, req.SourceAddress)
			if err != nil {
				return fmt.Errorf("%w: failed to get transaction count: %w", constants.ErrUpstreamUnavailable, err)
			}
			return nil
		})
	}
	if err := errGroup.Wait(); err != nil {
		return nil, err
	}

	intent := &models.ExportIntent{
		NetworkID:               networkID,
		HRP:                     hrp,
		Amount:                  new(big.Int).Set(req.Amount),
		AssetID:                 assetID,
		SourceChain:             models.ChainC,
		DestinationChain:        models.ChainP,
		SourceBlockchainID:      sourceID,
		DestinationBlockchainID: destinationID,
		SourceAddress:           req.SourceAddress,
		SourceAddressBech32:     req.SourceAddressBech32,
		DestinationAddresses:    []string{req.DestinationAddress},
		Nonce:                   nonce,
		LockTime:                constants.ExportLockTime,
		Threshold:               constants.ExportThreshold,
		Fee:                     fee,
	}
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	b.log.Debug("built export intent",
		zap.Uint32("network-id", networkID),
		zap.Stringer("amount", intent.Amount),
		zap.Uint64("fee", fee),
		zap.Uint64("nonce", nonce),
		zap.String("destination", req.DestinationAddress),
	)
	return intent, nil
}

// BuildExportTx builds the intent for req and hands it to the ledger client
// for assembly. It is not retried.
func (b *Builder) BuildExportTx(ctx context.Context, nc *netctx.Context, req Request) (*atomictx.Tx, error) {
	intent, err := b.BuildExportIntent(ctx, nc, req)
	if err != nil {
		return nil, err
	}
	tx, err := b.ledger.BuildExportTx(ctx, intent)
	if err != nil {
		if errors.Is(err, constants.ErrTxAssembly) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", constants.ErrTxAssembly, err)
	}
	if tx == nil {
		return nil, fmt.Errorf("%w: ledger client returned no transaction", constants.ErrTxAssembly)
	}
	return tx, nil
}

func (b *Builder) lookupFee(ctx context.Context) (uint64, error) {
	cChain, err := b.ledger.ForChain(models.ChainC)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", constants.ErrUpstreamUnavailable, err)
	}
	baseFee, err := cChain.BaseFee(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get base fee: %w", constants.ErrUpstreamUnavailable, err)
	}
	fee, err := DefaultFee(baseFee)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", constants.ErrUpstreamUnavailable, err)
	}
	return fee, nil
}
