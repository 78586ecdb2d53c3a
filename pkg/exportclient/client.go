// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package exportclient is the entry point for building C->P exports against
// a single node: resolve the network once, then derive addresses and build
// unsigned transactions with the returned context.
package exportclient

import (
	"context"
	"fmt"
	"time"

	"github.com/luxfi/atomicexport/pkg/atomictx"
	"github.com/luxfi/atomicexport/pkg/chainclient"
	"github.com/luxfi/atomicexport/pkg/endpoint"
	"github.com/luxfi/atomicexport/pkg/exporttx"
	"github.com/luxfi/atomicexport/pkg/key"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/atomicexport/pkg/netctx"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

type Config struct {
	// Endpoint is the node URL, e.g. http://127.0.0.1:9650.
	Endpoint string
	// Tables overrides the built-in network tables when set.
	Tables *netctx.Tables
	// RequestTimeout bounds each C-chain RPC call.
	RequestTimeout time.Duration
}

type Option func(*Client)

// WithDiscoverer replaces the info API discoverer.
func WithDiscoverer(d netctx.Discoverer) Option {
	return func(c *Client) {
		c.discoverer = d
	}
}

type Client struct {
	endpoint   endpoint.Endpoint
	tables     *netctx.Tables
	evm        *chainclient.EVMClient
	discoverer netctx.Discoverer
	deriver    key.Deriver
	log        luxlog.Logger
}

// New parses cfg.Endpoint and prepares the node clients. No request is made
// until Init.
func New(cfg Config, log luxlog.Logger, opts ...Option) (*Client, error) {
	ep, err := endpoint.Parse(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	rpcURL, err := ep.APIURL(models.ChainC)
	if err != nil {
		return nil, err
	}
	evm, err := chainclient.NewEVMClientWithTimeout(rpcURL, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	c := &Client{
		endpoint:   ep,
		tables:     cfg.Tables,
		evm:        evm,
		discoverer: netctx.NewInfoDiscoverer(ep),
		deriver:    key.NewDeriver(),
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Init resolves the node's network. Failures are logged and returned; the
// caller decides whether to retry.
func (c *Client) Init(ctx context.Context) (*netctx.Context, error) {
	nc, err := netctx.Initialize(ctx, c.discoverer, c.tables)
	if err != nil {
		c.log.Error("failed to initialize network context",
			zap.String("endpoint", c.endpoint.URI()),
			zap.Error(err),
		)
		return nil, err
	}
	network, err := nc.Network()
	if err != nil {
		return nil, err
	}
	c.log.Info("network context initialized",
		zap.String("endpoint", c.endpoint.URI()),
		zap.Uint32("network-id", network.ID),
		zap.String("network", network.Name),
	)
	return nc, nil
}

// AddressStrings derives the X, C and P addresses of publicKey on nc.
func (c *Client) AddressStrings(publicKey []byte, nc *netctx.Context) (key.AddressStrings, error) {
	return c.deriver.Derive(publicKey, nc)
}

// ClientForChain returns the sub-client serving chain on nc.
func (c *Client) ClientForChain(nc *netctx.Context, chain models.ChainID) (chainclient.ChainClient, error) {
	ledger, err := c.ledger(nc)
	if err != nil {
		return nil, err
	}
	return ledger.ForChain(chain)
}

// BuildExportIntent resolves req without assembling it.
func (c *Client) BuildExportIntent(ctx context.Context, nc *netctx.Context, req exporttx.Request) (*models.ExportIntent, error) {
	builder, err := c.builder(nc)
	if err != nil {
		return nil, err
	}
	return builder.BuildExportIntent(ctx, nc, req)
}

// CreateExportTx builds the unsigned C->P export for req.
func (c *Client) CreateExportTx(ctx context.Context, nc *netctx.Context, req exporttx.Request) (*atomictx.Tx, error) {
	builder, err := c.builder(nc)
	if err != nil {
		return nil, err
	}
	tx, err := builder.BuildExportTx(ctx, nc, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create export tx: %w", err)
	}
	return tx, nil
}

// Close releases the node connections.
func (c *Client) Close() {
	c.evm.Close()
}

func (c *Client) ledger(nc *netctx.Context) (*chainclient.Client, error) {
	return chainclient.New(c.evm, nc)
}

func (c *Client) builder(nc *netctx.Context) (*exporttx.Builder, error) {
	ledger, err := c.ledger(nc)
	if err != nil {
		return nil, err
	}
	return exporttx.NewBuilder(ledger, c.evm, c.log), nil
}
