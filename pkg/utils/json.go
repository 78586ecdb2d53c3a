// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadJSON reads a JSON file and unmarshals it into the provided interface
func ReadJSON(path string, v interface{}) error {
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(contentBytes, v); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}

	return nil
}

// WriteJSON writes the provided interface to a JSON file
func WriteJSON(path string, v interface{}) error {
	contentBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, contentBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON to %s: %w", path, err)
	}

	return nil
}
