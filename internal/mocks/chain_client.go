// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"
	"math/big"

	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/stretchr/testify/mock"
)

// ChainClient is a mock implementation of chainclient.ChainClient
type ChainClient struct {
	mock.Mock
}

func (m *ChainClient) Chain() models.ChainID {
	args := m.Called()
	return args.Get(0).(models.ChainID)
}

func (m *ChainClient) BaseFee(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}
