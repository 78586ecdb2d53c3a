// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Discoverer is a mock implementation of netctx.Discoverer
type Discoverer struct {
	mock.Mock
}

func (m *Discoverer) GetNetworkID(ctx context.Context) (uint32, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint32), args.Error(1)
}
