// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"github.com/luxfi/atomicexport/pkg/constants"
)

type Network int64

const (
	Undefined Network = iota
	Mainnet
	Testnet
	Local
)

func (s Network) String() string {
	switch s {
	case Mainnet:
		return "Mainnet"
	case Testnet:
		return "Testnet"
	case Local:
		return "Local Network"
	}
	return "Unknown Network"
}

func NetworkFromNetworkID(networkID uint32) Network {
	switch networkID {
	case constants.MainnetID:
		return Mainnet
	case constants.TestnetID:
		return Testnet
	case constants.LocalID:
		return Local
	}
	return Undefined
}
