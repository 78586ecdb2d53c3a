// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrContextNotInitialized = errors.New("network context not initialized")
	ErrNetworkUnavailable    = errors.New("network unavailable")
	ErrUpstreamUnavailable   = errors.New("upstream unavailable")
	ErrUnknownNetwork        = errors.New("unknown network")
	ErrTxAssembly            = errors.New("transaction assembly failed")
)
