// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package exporttx

import (
	"fmt"
	"math"
	"math/big"

	"github.com/luxfi/atomicexport/pkg/constants"
)

// DefaultFee converts a C-chain base fee (wei) into the export fee charged
// on top of the amount: floor(baseFee / 1e9) + 1e6.
func DefaultFee(baseFee *big.Int) (uint64, error) {
	if baseFee == nil || baseFee.Sign() < 0 {
		return 0, fmt.Errorf("%w: base fee must be non-negative", constants.ErrInvalidArgument)
	}
	scaled := new(big.Int).Quo(baseFee, big.NewInt(constants.BaseFeeDivisor))
	if !scaled.IsUint64() || scaled.Uint64() > math.MaxUint64-constants.ExportFeeMargin {
		return 0, fmt.Errorf("%w: base fee %s overflows the export fee", constants.ErrInvalidArgument, baseFee)
	}
	return scaled.Uint64() + constants.ExportFeeMargin, nil
}
