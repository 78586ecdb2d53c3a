// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package atomiccmd

import (
	"encoding/json"

	"github.com/luxfi/atomicexport/pkg/application"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/luxfi/atomicexport/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	publicKeyHex string
	jsonOutput   bool
)

// lux-atomic address
func NewAddressCmd(injectedApp *application.Lux) *cobra.Command {
	app = injectedApp

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the X, C and P addresses of a public key",
		Long: `The address command renders a secp256k1 public key as the X-, C- and
P-chain addresses of the network the node belongs to. All three addresses
share the same 20-byte key hash; only the chain prefix differs.`,
		Args: cobra.NoArgs,
		RunE: addressCmd,
	}
	cmd.Flags().StringVar(&publicKeyHex, "public-key", "", "hex encoded secp256k1 public key (compressed or uncompressed)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the addresses as JSON")
	_ = cmd.MarkFlagRequired("public-key")
	return cmd
}

func addressCmd(cmd *cobra.Command, _ []string) error {
	publicKey, err := parsePublicKey(publicKeyHex)
	if err != nil {
		return err
	}
	client, nc, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	addrs, err := client.AddressStrings(publicKey, nc)
	if err != nil {
		return err
	}
	if jsonOutput {
		out, err := json.MarshalIndent(addrs, "", "  ")
		if err != nil {
			return err
		}
		ux.Logger.PrintToUser("%s", out)
		return nil
	}

	rows := make([][]string, 0, len(models.AllChains())+1)
	rows = append(rows, []string{"Network", nc.Kind().String()})
	for _, chain := range models.AllChains() {
		addr, err := addrs.ForChain(chain)
		if err != nil {
			return err
		}
		rows = append(rows, []string{chain.String(), addr})
	}
	ux.Logger.PrintTable([]string{"Chain", "Address"}, rows)
	return nil
}
