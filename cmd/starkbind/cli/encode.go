package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/NethermindEth/starkbind/abi"
	"github.com/spf13/cobra"
)

// encodeCmd flattens typed call arguments into calldata felts.
var encodeCmd = &cobra.Command{
	Use:   "encode FUNCTION_NAME ARGS_JSON [flags]",
	Short: "Encode call arguments into calldata felts.",
	Long: `Encode JSON call arguments against a function's ABI inputs into the
flat felt sequence the contract expects. ARGS_JSON is a JSON array with one
element per declared parameter; length arguments of arrays are implied.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		iface, err := loadInterface(cmd)
		if err != nil {
			return err
		}

		dec := json.NewDecoder(bytes.NewReader([]byte(args[1])))
		dec.UseNumber()
		var values []any
		if err := dec.Decode(&values); err != nil {
			return fmt.Errorf("parse arguments: %w", err)
		}

		calldata, err := iface.EncodeCall(args[0], values)
		if err != nil {
			return err
		}
		logger.Debugw("encoded calldata", "function", args[0], "felts", len(calldata))
		return printResult(cmd, calldata)
	},
}

// decodeCmd reconstructs typed values from return felts.
var decodeCmd = &cobra.Command{
	Use:   "decode FUNCTION_NAME FELT... [flags]",
	Short: "Decode return felts into typed values.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		iface, err := loadInterface(cmd)
		if err != nil {
			return err
		}

		felts, err := parseFelts(args[1:])
		if err != nil {
			return err
		}

		values, err := iface.DecodeResult(args[0], felts)
		if err != nil {
			return err
		}
		return printResult(cmd, values)
	},
}

func loadInterface(cmd *cobra.Command) (*abi.Interface, error) {
	path := cmd.Flag("abi").Value.String()
	if path == "" {
		return nil, fmt.Errorf("an ABI document is required, pass --abi")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return abi.FromJSON(data)
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)

	encodeCmd.Flags().StringP("abi", "a", "", "Path to the contract ABI JSON document.")
	decodeCmd.Flags().StringP("abi", "a", "", "Path to the contract ABI JSON document.")
}
