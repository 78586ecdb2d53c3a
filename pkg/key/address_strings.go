// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package key

import (
	"fmt"

	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/atomicexport/pkg/netctx"
)

// AddressStrings holds one raw address rendered for each primary chain.
type AddressStrings struct {
	X string `json:"xAddress"`
	C string `json:"cAddress"`
	P string `json:"pAddress"`
}

func (a AddressStrings) ForChain(chain models.ChainID) (string, error) {
	switch chain {
	case models.ChainX:
		return a.X, nil
	case models.ChainC:
		return a.C, nil
	case models.ChainP:
		return a.P, nil
	}
	return "", fmt.Errorf("%w: unknown chain %s", constants.ErrInvalidArgument, chain)
}

type Deriver struct {
	Codec AddressCodec
}

func NewDeriver() Deriver {
	return Deriver{Codec: Secp256k1Codec{}}
}

// DeriveAddressStrings renders publicKey's address for X, C and P using the
// network's hrp.
func DeriveAddressStrings(publicKey []byte, nc *netctx.Context) (AddressStrings, error) {
	return NewDeriver().Derive(publicKey, nc)
}

func (d Deriver) Derive(publicKey []byte, nc *netctx.Context) (AddressStrings, error) {
	hrp, err := nc.HRP()
	if err != nil {
		return AddressStrings{}, err
	}
	addr, err := d.Codec.AddressFromPublicKey(publicKey)
	if err != nil {
		return AddressStrings{}, err
	}

	var strs AddressStrings
	for _, chain := range models.AllChains() {
		s, err := d.Codec.Format(chain, hrp, addr)
		if err != nil {
			return AddressStrings{}, fmt.Errorf("failed to format %s address: %w", chain, err)
		}
		switch chain {
		case models.ChainX:
			strs.X = s
		case models.ChainC:
			strs.C = s
		case models.ChainP:
			strs.P = s
		}
	}
	return strs, nil
}
