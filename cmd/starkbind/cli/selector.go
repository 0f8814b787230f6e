package cli

import (
	"github.com/NethermindEth/starkbind/core/crypto"
	"github.com/spf13/cobra"
)

// selectorCmd derives the entry point selector for a function name.
var selectorCmd = &cobra.Command{
	Use:   "selector FUNCTION_NAME [flags]",
	Short: "Derive the entry point selector for a function name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selector, err := crypto.Selector(args[0])
		if err != nil {
			return err
		}
		logger.Debugw("derived selector", "function", args[0], "selector", selector)
		return printResult(cmd, selector)
	},
}

func init() {
	rootCmd.AddCommand(selectorCmd)
}
