// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package netctx

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/ids"
	"gopkg.in/yaml.v3"
)

//go:embed networks.yaml
var defaultTable []byte

// Network holds the static parameters of one network.
type Network struct {
	ID            uint32
	Name          string
	HRP           string
	AssetID       ids.ID
	TxFee         uint64
	BlockchainIDs map[models.ChainID]ids.ID
}

// Tables maps network IDs to their static parameters.
type Tables struct {
	networks map[uint32]Network
}

type tableFile struct {
	Networks []networkEntry `yaml:"networks"`
}

type networkEntry struct {
	ID            uint32            `yaml:"id"`
	Name          string            `yaml:"name"`
	HRP           string            `yaml:"hrp"`
	AssetID       string            `yaml:"assetID"`
	TxFee         uint64            `yaml:"txFee"`
	BlockchainIDs map[string]string `yaml:"blockchainIDs"`
}

// DefaultTables returns the tables compiled into the binary.
func DefaultTables() (*Tables, error) {
	return ParseTables(defaultTable)
}

// LoadTables reads an operator supplied table file.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read network table %s: %w", path, err)
	}
	return ParseTables(data)
}

func ParseTables(data []byte) (*Tables, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid network table: %w", err)
	}
	if len(file.Networks) == 0 {
		return nil, fmt.Errorf("network table has no networks")
	}

	tables := &Tables{networks: make(map[uint32]Network, len(file.Networks))}
	for _, entry := range file.Networks {
		if _, ok := tables.networks[entry.ID]; ok {
			return nil, fmt.Errorf("duplicate network id %d in network table", entry.ID)
		}
		network, err := entry.toNetwork()
		if err != nil {
			return nil, fmt.Errorf("network %d: %w", entry.ID, err)
		}
		tables.networks[entry.ID] = network
	}
	return tables, nil
}

func (e networkEntry) toNetwork() (Network, error) {
	if e.HRP == "" {
		return Network{}, fmt.Errorf("missing hrp")
	}
	assetID, err := ids.FromString(e.AssetID)
	if err != nil {
		return Network{}, fmt.Errorf("invalid asset id %q: %w", e.AssetID, err)
	}

	blockchainIDs := make(map[models.ChainID]ids.ID, len(e.BlockchainIDs))
	for alias, idStr := range e.BlockchainIDs {
		chain, err := models.ParseChainID(alias)
		if err != nil {
			return Network{}, err
		}
		id, err := ids.FromString(idStr)
		if err != nil {
			return Network{}, fmt.Errorf("invalid %s blockchain id %q: %w", chain, idStr, err)
		}
		blockchainIDs[chain] = id
	}
	for _, chain := range models.AllChains() {
		if _, ok := blockchainIDs[chain]; !ok {
			return Network{}, fmt.Errorf("missing %s blockchain id", chain)
		}
	}

	return Network{
		ID:            e.ID,
		Name:          e.Name,
		HRP:           e.HRP,
		AssetID:       assetID,
		TxFee:         e.TxFee,
		BlockchainIDs: blockchainIDs,
	}, nil
}

func (t *Tables) Lookup(networkID uint32) (Network, bool) {
	if t == nil {
		return Network{}, false
	}
	network, ok := t.networks[networkID]
	return network, ok
}
