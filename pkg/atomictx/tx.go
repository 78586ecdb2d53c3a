// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package atomictx encodes unsigned C-chain atomic export transactions.
package atomictx

import (
	"fmt"

	"github.com/luxfi/formatting"
)

// Tx is an unsigned atomic transaction. Its byte encoding is deterministic,
// so Parse(tx.Bytes()) yields a value equal to tx.
type Tx struct {
	Unsigned UnsignedAtomicTx `serialize:"true" json:"unsignedTx"`
}

// Bytes returns the codec encoding of the unsigned transaction, the payload
// that gets signed.
func (t *Tx) Bytes() ([]byte, error) {
	return Codec.Marshal(CodecVersion, &t.Unsigned)
}

// Hex returns Bytes as checksummed hex.
func (t *Tx) Hex() (string, error) {
	b, err := t.Bytes()
	if err != nil {
		return "", err
	}
	return formatting.Encode(formatting.Hex, b)
}

func Parse(b []byte) (*Tx, error) {
	var unsigned UnsignedAtomicTx
	if _, err := Codec.Unmarshal(b, &unsigned); err != nil {
		return nil, fmt.Errorf("failed to parse unsigned atomic tx: %w", err)
	}
	return &Tx{Unsigned: unsigned}, nil
}

func ParseHex(s string) (*Tx, error) {
	b, err := formatting.Decode(formatting.Hex, s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode unsigned atomic tx: %w", err)
	}
	return Parse(b)
}
