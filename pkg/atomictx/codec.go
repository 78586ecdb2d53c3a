// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package atomictx

import (
	"errors"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
	"github.com/luxfi/utxo/secp256k1fx"
)

const CodecVersion = 0

// Codec serializes atomic transactions. Type IDs follow the C-chain atomic
// registry: import tx 0, export tx 1, secp256k1fx transfer output 7.
var Codec codec.Manager

func init() {
	Codec = codec.NewDefaultManager()
	c := linearcodec.NewDefault()

	c.SkipRegistrations(1)
	errExport := c.RegisterType(&UnsignedExportTx{})
	c.SkipRegistrations(5)
	errOutput := c.RegisterType(&secp256k1fx.TransferOutput{})

	if err := errors.Join(
		errExport,
		errOutput,
		Codec.RegisterCodec(CodecVersion, c),
	); err != nil {
		panic(err)
	}
}
