package cli

import (
	"github.com/NethermindEth/starkbind/core"
	"github.com/NethermindEth/starkbind/core/felt"
	"github.com/spf13/cobra"
)

var (
	senderFlag string
	maxFeeFlag string
	nonceFlag  string
)

// txhashCmd computes the hash of a v1 invoke transaction.
var txhashCmd = &cobra.Command{
	Use:   "txhash CALLDATA... [flags]",
	Short: "Compute the hash of a v1 invoke transaction.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sender, err := felt.FromString(senderFlag)
		if err != nil {
			return err
		}
		maxFee, err := felt.FromString(maxFeeFlag)
		if err != nil {
			return err
		}
		nonce, err := felt.FromString(nonceFlag)
		if err != nil {
			return err
		}
		callData, err := parseFelts(args)
		if err != nil {
			return err
		}

		tx := core.InvokeTransaction{
			Version:       felt.FromUint64(1),
			SenderAddress: sender,
			CallData:      callData,
			MaxFee:        maxFee,
			Nonce:         nonce,
		}
		hash, err := tx.Hash(selectedNetwork)
		if err != nil {
			return err
		}
		logger.Debugw("computed transaction hash", "network", selectedNetwork.String(), "hash", hash)
		return printResult(cmd, hash)
	},
}

func init() {
	rootCmd.AddCommand(txhashCmd)

	txhashCmd.Flags().StringVar(&senderFlag, "sender", "", "Sender account address.")
	txhashCmd.Flags().StringVar(&maxFeeFlag, "max-fee", "0x0", "Maximum fee.")
	txhashCmd.Flags().StringVar(&nonceFlag, "nonce", "0x0", "Sender account nonce.")

	if err := txhashCmd.MarkFlagRequired("sender"); err != nil {
		panic(err)
	}
}
