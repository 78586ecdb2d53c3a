// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package netctx

import (
	"context"

	"github.com/luxfi/atomicexport/pkg/endpoint"
	"github.com/luxfi/sdk/api/info"
)

// Discoverer reports the ID of the network a node is part of.
type Discoverer interface {
	GetNetworkID(ctx context.Context) (uint32, error)
}

// DiscovererFunc adapts a plain function to Discoverer.
type DiscovererFunc func(ctx context.Context) (uint32, error)

func (f DiscovererFunc) GetNetworkID(ctx context.Context) (uint32, error) {
	return f(ctx)
}

// NewInfoDiscoverer queries the node's info API at ep.
func NewInfoDiscoverer(ep endpoint.Endpoint) Discoverer {
	infoClient := info.NewClient(ep.URI())
	return DiscovererFunc(func(ctx context.Context) (uint32, error) {
		return infoClient.GetNetworkID(ctx)
	})
}
