// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package key

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/luxfi/address"
	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/ids"
	"golang.org/x/crypto/ripemd160" //nolint:gosec // G507: address derivation is defined over ripemd160
)

// AddressCodec turns public keys into raw addresses and renders raw addresses
// as chain-prefixed bech32 strings.
type AddressCodec interface {
	AddressFromPublicKey(publicKey []byte) (ids.ShortID, error)
	Format(chain models.ChainID, hrp string, addr ids.ShortID) (string, error)
	Parse(addrStr string) (models.ChainID, string, ids.ShortID, error)
}

var _ AddressCodec = Secp256k1Codec{}

// Secp256k1Codec derives addresses as ripemd160(sha256(compressed public key)).
type Secp256k1Codec struct{}

// AddressFromPublicKey accepts a 33 byte compressed or 65 byte uncompressed key.
func (Secp256k1Codec) AddressFromPublicKey(publicKey []byte) (ids.ShortID, error) {
	pubKey, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return ids.ShortEmpty, fmt.Errorf("%w: invalid secp256k1 public key: %w", constants.ErrInvalidArgument, err)
	}
	sha256Hash := sha256.Sum256(pubKey.SerializeCompressed())
	ripemdHasher := ripemd160.New() //nolint:gosec // G406: address derivation is defined over ripemd160
	ripemdHasher.Write(sha256Hash[:])
	return ids.ToShortID(ripemdHasher.Sum(nil))
}

func (Secp256k1Codec) Format(chain models.ChainID, hrp string, addr ids.ShortID) (string, error) {
	if !chain.Valid() {
		return "", fmt.Errorf("%w: unknown chain %s", constants.ErrInvalidArgument, chain)
	}
	return address.Format(chain.String(), hrp, addr[:])
}

// Parse splits a chain address into its chain, hrp and raw address.
func (Secp256k1Codec) Parse(addrStr string) (models.ChainID, string, ids.ShortID, error) {
	chainAlias, hrp, addrBytes, err := address.Parse(addrStr)
	if err != nil {
		return 0, "", ids.ShortEmpty, fmt.Errorf("%w: invalid address %q: %w", constants.ErrInvalidArgument, addrStr, err)
	}
	chain, err := models.ParseChainID(chainAlias)
	if err != nil {
		return 0, "", ids.ShortEmpty, err
	}
	addr, err := ids.ToShortID(addrBytes)
	if err != nil {
		return 0, "", ids.ShortEmpty, fmt.Errorf("%w: invalid address %q: %w", constants.ErrInvalidArgument, addrStr, err)
	}
	return chain, hrp, addr, nil
}
