// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package atomiccmd

import (
	"fmt"
	"math/big"

	"github.com/luxfi/atomicexport/pkg/application"
	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/exporttx"
	"github.com/luxfi/atomicexport/pkg/utils"
	"github.com/luxfi/atomicexport/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	amountFlag     = "amount"
	fromFlag       = "from"
	fromBech32Flag = "from-bech32"
	toFlag         = "to"
	nonceFlag      = "nonce"
	feeFlag        = "fee"
	outputFileFlag = "output-file"
)

type exportFlags struct {
	amount     string
	from       string
	fromBech32 string
	to         string
	publicKey  string
	nonce      uint64
	fee        uint64
	outputFile string
}

var exportArgs exportFlags

// exportRecord is what --output-file stores for a later signing step.
type exportRecord struct {
	NetworkID   uint32 `json:"networkID"`
	Amount      string `json:"amount"`
	Fee         uint64 `json:"fee"`
	Nonce       uint64 `json:"nonce"`
	Destination string `json:"destination"`
	UnsignedTx  string `json:"unsignedTx"`
}

// lux-atomic export
func NewExportCmd(injectedApp *application.Lux) *cobra.Command {
	app = injectedApp

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build an unsigned C-Chain to P-Chain export transaction",
		Long: `The export command builds the unsigned atomic transaction that moves
--amount (in nLUX) from a C-Chain account into shared memory for the P-Chain.

When --fee is omitted it is derived from the current C-Chain base fee. When
--nonce is omitted the account's confirmed transaction count is used. With
--public-key the C-Chain source and P-Chain destination addresses default to
the key's own addresses.

The transaction is printed as checksummed hex. It is not signed or issued.`,
		Args: cobra.NoArgs,
		RunE: exportCmd,
	}
	cmd.Flags().StringVar(&exportArgs.amount, amountFlag, "", "amount to export, in nLUX")
	cmd.Flags().StringVar(&exportArgs.from, fromFlag, "", "0x hex C-Chain account paying the export")
	cmd.Flags().StringVar(&exportArgs.fromBech32, fromBech32Flag, "", "C-Chain bech32 address of the paying account")
	cmd.Flags().StringVar(&exportArgs.to, toFlag, "", "P-Chain address receiving the funds")
	cmd.Flags().StringVar(&exportArgs.publicKey, "public-key", "", "public key used to fill in --from-bech32 and --to")
	cmd.Flags().Uint64Var(&exportArgs.nonce, nonceFlag, 0, "account nonce (default: looked up)")
	cmd.Flags().Uint64Var(&exportArgs.fee, feeFlag, 0, "export fee in nLUX (default: derived from the base fee)")
	cmd.Flags().StringVar(&exportArgs.outputFile, outputFileFlag, "", "also write the unsigned transaction to this JSON file")
	_ = cmd.MarkFlagRequired(amountFlag)
	_ = cmd.MarkFlagRequired(fromFlag)
	return cmd
}

func exportCmd(cmd *cobra.Command, _ []string) error {
	amount, ok := new(big.Int).SetString(exportArgs.amount, 10)
	if !ok || amount.Sign() <= 0 {
		return fmt.Errorf("%w: --%s must be a positive integer", constants.ErrInvalidArgument, amountFlag)
	}

	client, nc, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	req := exporttx.Request{
		Amount:              amount,
		SourceAddress:       exportArgs.from,
		SourceAddressBech32: exportArgs.fromBech32,
		DestinationAddress:  exportArgs.to,
	}
	if exportArgs.publicKey != "" {
		publicKey, err := parsePublicKey(exportArgs.publicKey)
		if err != nil {
			return err
		}
		addrs, err := client.AddressStrings(publicKey, nc)
		if err != nil {
			return err
		}
		if req.SourceAddressBech32 == "" {
			req.SourceAddressBech32 = addrs.C
		}
		if req.DestinationAddress == "" {
			req.DestinationAddress = addrs.P
		}
	}
	if cmd.Flags().Changed(nonceFlag) {
		nonce := exportArgs.nonce
		req.Nonce = &nonce
	}
	if cmd.Flags().Changed(feeFlag) {
		fee := exportArgs.fee
		req.Fee = &fee
	}

	intent, err := client.BuildExportIntent(cmd.Context(), nc, req)
	if err != nil {
		return err
	}
	// pin the looked-up values so the assembled tx matches what is printed
	req.Nonce = &intent.Nonce
	req.Fee = &intent.Fee
	tx, err := client.CreateExportTx(cmd.Context(), nc, req)
	if err != nil {
		return err
	}
	txHex, err := tx.Hex()
	if err != nil {
		return err
	}
	app.Log.Info("built export tx",
		zap.Uint32("network-id", intent.NetworkID),
		zap.Uint64("nonce", intent.Nonce),
		zap.Uint64("fee", intent.Fee),
	)

	ux.Logger.PrintTable([]string{"Field", "Value"}, [][]string{
		{"Network", nc.Kind().String()},
		{"Network ID", fmt.Sprint(intent.NetworkID)},
		{"From", intent.SourceAddress},
		{"To", intent.DestinationAddresses[0]},
		{"Amount (nLUX)", formatAmount(intent.Amount)},
		{"Fee (nLUX)", ux.ConvertToStringWithThousandSeparator(intent.Fee)},
		{"Nonce", fmt.Sprint(intent.Nonce)},
	})
	ux.Logger.PrintLineSeparator()
	ux.Logger.PrintToUser("Unsigned tx: %s", txHex)

	if exportArgs.outputFile != "" {
		record := exportRecord{
			NetworkID:   intent.NetworkID,
			Amount:      intent.Amount.String(),
			Fee:         intent.Fee,
			Nonce:       intent.Nonce,
			Destination: intent.DestinationAddresses[0],
			UnsignedTx:  txHex,
		}
		if err := utils.WriteJSON(exportArgs.outputFile, record); err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Unsigned tx written to %s", exportArgs.outputFile)
	}
	return nil
}

func formatAmount(amount *big.Int) string {
	if amount.IsUint64() {
		return ux.ConvertToStringWithThousandSeparator(amount.Uint64())
	}
	return amount.String()
}
