// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	BaseDirName = ".lux"
	LogDir      = "logs"

	DefaultConfigFileName = "atomicexport"
	DefaultConfigFileType = "yaml"
	NetworkTableFileName  = "networks.yaml"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	APIRequestTimeout = 30 * time.Second
	InitAttempts      = 3
	InitRetryDelay    = 2 * time.Second

	DefaultEndpoint = "http://127.0.0.1:9650"
	DefaultHTTPPort = 80

	// Node API paths, relative to the endpoint URI
	CChainRPCPath = "/ext/bc/C/rpc"
	XChainAPIPath = "/ext/bc/X"
	PChainAPIPath = "/ext/bc/P"
)

// Fee policy for C->P exports. The C-chain reports its base fee in wei-like
// units; export fees are paid in the 9-decimal denomination used by X/P.
const (
	BaseFeeDivisor  = 1_000_000_000
	ExportFeeMargin = 1_000_000
)

// Fixed parameters of the single-recipient export flow.
const (
	ExportLockTime  uint64 = 0
	ExportThreshold uint32 = 1
)

// Configuration keys, also used as flag names.
const (
	ConfigEndpoint       = "endpoint"
	ConfigNetworkTable   = "network-table"
	ConfigLogLevel       = "log-level"
	ConfigRequestTimeout = "request-timeout"
	ConfigInitAttempts   = "init-attempts"

	EnvEndpoint     = "LUX_RPC_URL"
	EnvNetworkTable = "LUX_NETWORK_TABLE"
)
