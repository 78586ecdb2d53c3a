// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package endpoint splits a node endpoint string into scheme, host and port.
package endpoint

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
)

const schemeDelimiter = "://"

// Endpoint is an immutable scheme/host/port triple. Only Parse produces a
// valid value.
type Endpoint struct {
	Scheme string
	Host   string
	Port   uint16
}

// Parse decodes urls of the form scheme://host[:port][/path][?query].
// Anything after the port is discarded. The port defaults to 80.
func Parse(url string) (Endpoint, error) {
	scheme, rest, found := strings.Cut(url, schemeDelimiter)
	if !found || scheme == "" {
		return Endpoint{}, invalid(url)
	}

	host, portPart, hasPort := strings.Cut(rest, ":")
	// a path without a port still has to come off the host
	if i := strings.IndexAny(host, "/?"); i >= 0 {
		host = host[:i]
		hasPort = false
	}
	if host == "" {
		return Endpoint{}, invalid(url)
	}

	portStr := strconv.Itoa(constants.DefaultHTTPPort)
	// an empty port after the colon falls back to the default
	if hasPort && portPart != "" {
		portStr = portPart
		if i := strings.IndexAny(portStr, "/?"); i >= 0 {
			portStr = portStr[:i]
		}
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil || port == 0 {
		return Endpoint{}, invalid(url)
	}

	return Endpoint{
		Scheme: scheme,
		Host:   host,
		Port:   uint16(port),
	}, nil
}

func invalid(url string) error {
	return fmt.Errorf("%w: invalid URL %q provided to decode", constants.ErrInvalidArgument, url)
}

// URI renders the endpoint without any path.
func (e Endpoint) URI() string {
	return e.Scheme + schemeDelimiter + net.JoinHostPort(e.Host, strconv.FormatUint(uint64(e.Port), 10))
}

// APIURL returns the node API url for the given chain.
func (e Endpoint) APIURL(chain models.ChainID) (string, error) {
	switch chain {
	case models.ChainX:
		return e.URI() + constants.XChainAPIPath, nil
	case models.ChainC:
		return e.URI() + constants.CChainRPCPath, nil
	case models.ChainP:
		return e.URI() + constants.PChainAPIPath, nil
	}
	return "", fmt.Errorf("%w: unknown chain %s", constants.ErrInvalidArgument, chain)
}

func (e Endpoint) String() string {
	return e.URI()
}
