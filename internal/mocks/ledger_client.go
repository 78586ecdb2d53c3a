// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/luxfi/atomicexport/pkg/atomictx"
	"github.com/luxfi/atomicexport/pkg/chainclient"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/stretchr/testify/mock"
)

// LedgerClient is a mock implementation of exporttx.LedgerClient
type LedgerClient struct {
	mock.Mock
}

func (m *LedgerClient) ForChain(chain models.ChainID) (chainclient.ChainClient, error) {
	args := m.Called(chain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(chainclient.ChainClient), args.Error(1)
}

func (m *LedgerClient) BuildExportTx(ctx context.Context, intent *models.ExportIntent) (*atomictx.Tx, error) {
	args := m.Called(ctx, intent)
	if fn, ok := args.Get(0).(func(context.Context, *models.ExportIntent) (*atomictx.Tx, error)); ok {
		return fn(ctx, intent)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*atomictx.Tx), args.Error(1)
}
