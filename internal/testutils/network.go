// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/luxfi/atomicexport/pkg/netctx"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

var (
	AssetID  = ids.ID{'l', 'u', 'x'}
	XChainID = ids.ID{'x'}
	CChainID = ids.ID{'c'}
	PChainID = ids.Empty
)

const TxFee = 1_000_000

// NetworkTable renders a single-network table using the fixed test IDs.
func NetworkTable(networkID uint32, hrp string) string {
	return fmt.Sprintf(`networks:
  - id: %d
    name: %s
    hrp: %s
    assetID: %s
    txFee: %d
    blockchainIDs:
      X: %s
      C: %s
      P: %s
`, networkID, hrp, hrp, AssetID, TxFee, XChainID, CChainID, PChainID)
}

// NewNetworkContext initializes a context against a stub discoverer.
func NewNetworkContext(t testing.TB, networkID uint32, hrp string) *netctx.Context {
	t.Helper()

	tables, err := netctx.ParseTables([]byte(NetworkTable(networkID, hrp)))
	require.NoError(t, err)

	discoverer := netctx.DiscovererFunc(func(context.Context) (uint32, error) {
		return networkID, nil
	})
	nc, err := netctx.Initialize(context.Background(), discoverer, tables)
	require.NoError(t, err)
	return nc
}
