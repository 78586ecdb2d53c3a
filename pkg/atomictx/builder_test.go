// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package atomictx

import (
	"encoding/binary"
	"math"
	"math/big"
	"testing"

	"github.com/luxfi/atomicexport/internal/testutils"
	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/key"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"
	"github.com/luxfi/utxo/secp256k1fx"
	"github.com/stretchr/testify/require"
)

const testHRP = "test"

func testIntent(t *testing.T) *models.ExportIntent {
	t.Helper()

	nc := testutils.NewNetworkContext(t, constants.TestnetID, testHRP)
	pub, err := testutils.EwoqPublicKey()
	require.NoError(t, err)
	strs, err := key.DeriveAddressStrings(pub, nc)
	require.NoError(t, err)

	return &models.ExportIntent{
		NetworkID:               constants.TestnetID,
		HRP:                     testHRP,
		Amount:                  big.NewInt(1_000_000_000),
		AssetID:                 testutils.AssetID,
		SourceChain:             models.ChainC,
		DestinationChain:        models.ChainP,
		SourceBlockchainID:      testutils.CChainID,
		DestinationBlockchainID: testutils.PChainID,
		SourceAddress:           testutils.EwoqEthAddress,
		SourceAddressBech32:     strs.C,
		DestinationAddresses:    []string{strs.P},
		Nonce:                   7,
		LockTime:                constants.ExportLockTime,
		Threshold:               constants.ExportThreshold,
		Fee:                     1_000_001,
	}
}

func TestNewExportTx(t *testing.T) {
	require := require.New(t)

	intent := testIntent(t)
	tx, err := NewExportTx(intent)
	require.NoError(err)

	exportTx, ok := tx.Unsigned.(*UnsignedExportTx)
	require.True(ok)
	require.Equal(uint32(constants.TestnetID), exportTx.NetworkID)
	require.Equal(testutils.CChainID, exportTx.BlockchainID)
	require.Equal(testutils.PChainID, exportTx.DestinationChain)

	require.Len(exportTx.Ins, 1)
	in := exportTx.Ins[0]
	require.Equal(common.HexToAddress(testutils.EwoqEthAddress), in.Address)
	require.Equal(uint64(1_000_000_000+1_000_001), in.Amount)
	require.Equal(testutils.AssetID, in.AssetID)
	require.Equal(uint64(7), in.Nonce)

	require.Len(exportTx.ExportedOutputs, 1)
	out := exportTx.ExportedOutputs[0]
	require.Equal(testutils.AssetID, out.Asset.ID)
	transferOut, ok := out.Out.(*secp256k1fx.TransferOutput)
	require.True(ok)
	require.Equal(uint64(1_000_000_000), transferOut.Amt)
	require.Equal(uint64(0), transferOut.OutputOwners.Locktime)
	require.Equal(uint32(1), transferOut.OutputOwners.Threshold)
	require.Len(transferOut.OutputOwners.Addrs, 1)

	pub, err := testutils.EwoqPublicKey()
	require.NoError(err)
	expectedAddr, err := key.Secp256k1Codec{}.AddressFromPublicKey(pub)
	require.NoError(err)
	require.Equal(expectedAddr, transferOut.OutputOwners.Addrs[0])
}

func TestExportTxRoundTrip(t *testing.T) {
	require := require.New(t)

	tx, err := NewExportTx(testIntent(t))
	require.NoError(err)

	txBytes, err := tx.Bytes()
	require.NoError(err)
	require.Equal(uint16(CodecVersion), binary.BigEndian.Uint16(txBytes[0:2]))
	require.Equal(uint32(1), binary.BigEndian.Uint32(txBytes[2:6]))

	parsed, err := Parse(txBytes)
	require.NoError(err)
	require.Equal(tx, parsed)

	parsedBytes, err := parsed.Bytes()
	require.NoError(err)
	require.Equal(txBytes, parsedBytes)

	// the hex string is what gets stored between building and signing
	txHex, err := tx.Hex()
	require.NoError(err)
	fromHex, err := ParseHex(txHex)
	require.NoError(err)
	require.Equal(tx, fromHex)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte{0x00, 0x00, 0xff, 0xff, 0xff, 0xff})
	require.Error(t, err)

	_, err = ParseHex("0xzz")
	require.Error(t, err)
}

func TestNewExportTxRejects(t *testing.T) {
	nc := testutils.NewNetworkContext(t, constants.MainnetID, "lux")
	pub, err := testutils.EwoqPublicKey()
	require.NoError(t, err)
	foreign, err := key.DeriveAddressStrings(pub, nc)
	require.NoError(t, err)

	tooLarge := new(big.Int).Lsh(big.NewInt(1), 64)

	tests := []struct {
		name   string
		mutate func(*models.ExportIntent)
	}{
		{"amount overflows uint64", func(i *models.ExportIntent) { i.Amount = tooLarge }},
		{"amount plus fee overflows", func(i *models.ExportIntent) {
			i.Amount = new(big.Int).SetUint64(math.MaxUint64)
			i.Fee = 1
		}},
		{"zero amount", func(i *models.ExportIntent) { i.Amount = big.NewInt(0) }},
		{"empty asset", func(i *models.ExportIntent) { i.AssetID = ids.Empty }},
		{"bad source hex", func(i *models.ExportIntent) { i.SourceAddress = "0x1234" }},
		{"source bech32 on P", func(i *models.ExportIntent) { i.SourceAddressBech32 = i.DestinationAddresses[0] }},
		{"destination on C", func(i *models.ExportIntent) { i.DestinationAddresses = []string{i.SourceAddressBech32} }},
		{"destination on other network", func(i *models.ExportIntent) { i.DestinationAddresses = []string{foreign.P} }},
		{"garbage destination", func(i *models.ExportIntent) { i.DestinationAddresses = []string{"P-nothing"} }},
		{"empty source chain id", func(i *models.ExportIntent) { i.SourceBlockchainID = ids.Empty }},
		{"same chain", func(i *models.ExportIntent) { i.DestinationBlockchainID = i.SourceBlockchainID }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := testIntent(t)
			tt.mutate(intent)
			_, err := NewExportTx(intent)
			require.ErrorIs(t, err, constants.ErrTxAssembly)
		})
	}
}
