// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// AccountQuery is a mock implementation of exporttx.AccountQuery
type AccountQuery struct {
	mock.Mock
}

func (m *AccountQuery) TransactionCount(ctx context.Context, address string) (uint64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(uint64), args.Error(1)
}
