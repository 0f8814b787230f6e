package cli

import (
	"github.com/NethermindEth/starkbind/core"
	"github.com/NethermindEth/starkbind/core/felt"
	"github.com/spf13/cobra"
)

var (
	classHashFlag string
	saltFlag      string
	callerFlag    string
	deployerFlag  string
	uniqueFlag    bool
)

// addressCmd derives the address a contract will be deployed to.
var addressCmd = &cobra.Command{
	Use:   "address CONSTRUCTOR_CALLDATA... [flags]",
	Short: "Derive the address of a contract deployment.",
	Long: `Derive the deterministic address of a contract deployment from its
class hash, salt and constructor calldata. With --deployer the address is
computed the way the UniversalDeployer contract would deploy it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		classHash, err := felt.FromString(classHashFlag)
		if err != nil {
			return err
		}
		salt, err := felt.FromString(saltFlag)
		if err != nil {
			return err
		}
		callData, err := parseFelts(args)
		if err != nil {
			return err
		}

		var address *felt.Felt
		if deployerFlag != "" {
			deployer, err := felt.FromString(deployerFlag)
			if err != nil {
				return err
			}
			udc := core.NewUniversalDeployer(nil)
			address = udc.DeployedAddress(deployer, classHash, salt, uniqueFlag, callData)
		} else {
			caller, err := felt.FromString(callerFlag)
			if err != nil {
				return err
			}
			address = core.ContractAddress(caller, classHash, salt, callData)
		}
		return printResult(cmd, address)
	},
}

func parseFelts(raw []string) ([]*felt.Felt, error) {
	out := make([]*felt.Felt, len(raw))
	for i, s := range raw {
		f, err := felt.FromString(s)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(addressCmd)

	addressCmd.Flags().StringVar(&classHashFlag, "class-hash", "", "Class hash of the declared contract.")
	addressCmd.Flags().StringVar(&saltFlag, "salt", "0x0", "Contract address salt.")
	addressCmd.Flags().StringVar(&callerFlag, "caller", "0x0", "Caller (deployer) address.")
	addressCmd.Flags().StringVar(&deployerFlag, "deployer", "", "Derive through the UniversalDeployer for this account.")
	addressCmd.Flags().BoolVar(&uniqueFlag, "unique", false, "Scope the UniversalDeployer address to the deployer.")

	if err := addressCmd.MarkFlagRequired("class-hash"); err != nil {
		panic(err)
	}
}
