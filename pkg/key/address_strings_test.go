// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package key

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/luxfi/atomicexport/internal/testutils"
	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/atomicexport/pkg/netctx"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestAddressFromPublicKeyKnownVector(t *testing.T) {
	require := require.New(t)

	pub, err := testutils.EwoqPublicKey()
	require.NoError(err)

	addr, err := Secp256k1Codec{}.AddressFromPublicKey(pub)
	require.NoError(err)
	require.Equal(testutils.EwoqShortIDHex, hex.EncodeToString(addr[:]))

	pStr, err := Secp256k1Codec{}.Format(models.ChainP, "custom", addr)
	require.NoError(err)
	require.Equal("P-custom18jma8ppw3nhx5r4ap8clazz0dps7rv5u9xde7p", pStr)
}

func TestAddressFromUncompressedPublicKey(t *testing.T) {
	require := require.New(t)

	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(err)

	fromCompressed, err := Secp256k1Codec{}.AddressFromPublicKey(priv.PubKey().SerializeCompressed())
	require.NoError(err)
	fromUncompressed, err := Secp256k1Codec{}.AddressFromPublicKey(priv.PubKey().SerializeUncompressed())
	require.NoError(err)
	require.Equal(fromCompressed, fromUncompressed)
}

func TestAddressFromInvalidPublicKey(t *testing.T) {
	for name, pub := range map[string][]byte{
		"nil":       nil,
		"short":     {0x02, 0x01},
		"bad flag":  append([]byte{0x07}, make([]byte, 32)...),
		"off curve": append([]byte{0x04}, make([]byte, 64)...),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Secp256k1Codec{}.AddressFromPublicKey(pub)
			require.ErrorIs(t, err, constants.ErrInvalidArgument)
		})
	}
}

func TestDeriveAddressStrings(t *testing.T) {
	require := require.New(t)

	nc := testutils.NewNetworkContext(t, constants.LocalID, "local")
	pub, err := testutils.EwoqPublicKey()
	require.NoError(err)

	strs, err := DeriveAddressStrings(pub, nc)
	require.NoError(err)
	require.Equal("X-local18jma8ppw3nhx5r4ap8clazz0dps7rv5u00z96u", strs.X)
	require.True(strings.HasPrefix(strs.C, "C-local1"))
	require.True(strings.HasPrefix(strs.P, "P-local1"))

	// the chain alias is outside the bech32 payload, so only the prefix differs
	require.Equal(strings.TrimPrefix(strs.X, "X-"), strings.TrimPrefix(strs.C, "C-"))
	require.Equal(strings.TrimPrefix(strs.X, "X-"), strings.TrimPrefix(strs.P, "P-"))
}

func TestDeriveAddressStringsRoundTrip(t *testing.T) {
	require := require.New(t)

	nc := testutils.NewNetworkContext(t, constants.TestnetID, "test")
	pubs, err := testutils.GeneratePublicKeys(5)
	require.NoError(err)

	codec := Secp256k1Codec{}
	for _, pub := range pubs {
		expected, err := codec.AddressFromPublicKey(pub)
		require.NoError(err)

		first, err := DeriveAddressStrings(pub, nc)
		require.NoError(err)
		second, err := DeriveAddressStrings(pub, nc)
		require.NoError(err)
		require.Equal(first, second)

		for _, chain := range models.AllChains() {
			s, err := first.ForChain(chain)
			require.NoError(err)

			parsedChain, hrp, addr, err := codec.Parse(s)
			require.NoError(err)
			require.Equal(chain, parsedChain)
			require.Equal("test", hrp)
			require.Equal(expected, addr)
		}
	}
}

func TestDeriveAddressStringsUninitialized(t *testing.T) {
	pub, err := testutils.EwoqPublicKey()
	require.NoError(t, err)

	_, err = DeriveAddressStrings(pub, nil)
	require.ErrorIs(t, err, constants.ErrContextNotInitialized)

	_, err = DeriveAddressStrings(pub, &netctx.Context{})
	require.ErrorIs(t, err, constants.ErrContextNotInitialized)
}

func TestDeriveAddressStringsInvalidKey(t *testing.T) {
	nc := testutils.NewNetworkContext(t, constants.TestnetID, "test")
	_, err := DeriveAddressStrings([]byte{0x01}, nc)
	require.ErrorIs(t, err, constants.ErrInvalidArgument)
}

func TestAddressStringsForChain(t *testing.T) {
	strs := AddressStrings{X: "x", C: "c", P: "p"}
	for chain, expected := range map[models.ChainID]string{
		models.ChainX: "x",
		models.ChainC: "c",
		models.ChainP: "p",
	} {
		s, err := strs.ForChain(chain)
		require.NoError(t, err)
		require.Equal(t, expected, s)
	}
	_, err := strs.ForChain(models.ChainID(0))
	require.ErrorIs(t, err, constants.ErrInvalidArgument)
}

func TestCodecRejectsUnknownChain(t *testing.T) {
	_, err := Secp256k1Codec{}.Format(models.ChainID(0), "test", ids.ShortID{1})
	require.ErrorIs(t, err, constants.ErrInvalidArgument)

	_, _, _, err = Secp256k1Codec{}.Parse("not-an-address")
	require.ErrorIs(t, err, constants.ErrInvalidArgument)
}
