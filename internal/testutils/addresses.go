// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// The well known local-network funding key.
const (
	EwoqPrivateKeyHex = "56289e99c94b6912bfc12adc093c9b51124f0dc54ac7a766b2bc5ccf558d8027"
	EwoqShortIDHex    = "3cb7d3842e8cee6a0ebd09f1fe884f6861e1b29c"
	EwoqEthAddress    = "0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC"
)

// EwoqPublicKey returns the compressed public key of the ewoq key.
func EwoqPublicKey() ([]byte, error) {
	privBytes, err := hex.DecodeString(EwoqPrivateKeyHex)
	if err != nil {
		return nil, err
	}
	return secp256k1.PrivKeyFromBytes(privBytes).PubKey().SerializeCompressed(), nil
}

// GeneratePublicKeys returns count fresh compressed public keys.
func GeneratePublicKeys(count int) ([][]byte, error) {
	keys := make([][]byte, count)
	for i := 0; i < count; i++ {
		pk, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return nil, err
		}
		keys[i] = pk.PubKey().SerializeCompressed()
	}
	return keys, nil
}
