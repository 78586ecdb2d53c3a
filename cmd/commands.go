// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	// ExportCmd is the export command name
	ExportCmd = "export"

	// AddressCmd is the address command name
	AddressCmd = "address"
)
