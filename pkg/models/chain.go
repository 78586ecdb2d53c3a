// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"strings"

	"github.com/luxfi/atomicexport/pkg/constants"
)

// ChainID identifies one of the three primary network chains.
// The zero value is not a valid chain.
type ChainID uint8

const (
	ChainX ChainID = iota + 1
	ChainC
	ChainP
)

// AllChains returns the primary network chains in X, C, P order.
func AllChains() []ChainID {
	return []ChainID{ChainX, ChainC, ChainP}
}

// String returns the chain alias used in addresses and API paths.
func (c ChainID) String() string {
	switch c {
	case ChainX:
		return "X"
	case ChainC:
		return "C"
	case ChainP:
		return "P"
	}
	return fmt.Sprintf("ChainID(%d)", uint8(c))
}

func (c ChainID) Valid() bool {
	switch c {
	case ChainX, ChainC, ChainP:
		return true
	}
	return false
}

// ParseChainID accepts a chain alias, case-insensitively.
func ParseChainID(alias string) (ChainID, error) {
	switch strings.ToUpper(strings.TrimSpace(alias)) {
	case "X":
		return ChainX, nil
	case "C":
		return ChainC, nil
	case "P":
		return ChainP, nil
	}
	return 0, fmt.Errorf("%w: chain must be either 'X', 'C' or 'P', got %q", constants.ErrInvalidArgument, alias)
}
