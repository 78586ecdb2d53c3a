// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// Network IDs
const (
	MainnetID = 1
	TestnetID = 5
	LocalID   = 12345
)
