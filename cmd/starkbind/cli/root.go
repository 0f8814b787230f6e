package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NethermindEth/starkbind/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Cobra configuration.
var (
	// cfgFile is the path of the starkbind configuration file.
	cfgFile string
	// selectedNetwork is the network selected by the config or user.
	selectedNetwork = utils.Testnet
	// logLevel of the CLI logger.
	logLevel = utils.INFO
	// logger used by all subcommands.
	logger utils.SimpleLogger = utils.NewNopLogger()

	// rootCmd is the root command of the application.
	rootCmd = &cobra.Command{
		Use:   "starkbind [command] [flags]",
		Short: "Starknet calldata, selector and address tooling.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			zapLogger, err := utils.NewZapLogger(logLevel, true)
			if err != nil {
				return err
			}
			logger = zapLogger
			return nil
		},
		SilenceUsage: true,
	}
)

// Define flags and load config.
func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		fmt.Sprintf("config file (default is %s).", filepath.Join("$HOME", ".starkbind.yaml")))
	rootCmd.PersistentFlags().VarP(&selectedNetwork, "network", "n",
		"Network to use. Available: 'mainnet', 'testnet', 'local'.")
	rootCmd.PersistentFlags().Var(&logLevel, "log-level",
		"Log level. Available: 'debug', 'info', 'warn', 'error'.")
	rootCmd.PersistentFlags().BoolP("pretty", "p", false, "Pretty print the response.")
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".starkbind")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("STARKBIND")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}
	if viper.IsSet("network") {
		if err := selectedNetwork.Set(viper.GetString("network")); err != nil {
			return err
		}
	}
	if viper.IsSet("log-level") {
		if err := logLevel.Set(viper.GetString("log-level")); err != nil {
			return err
		}
	}
	return nil
}

// prettyPrint prints res as indented JSON.
func prettyPrint(res any) error {
	resJSON, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(resJSON))
	return nil
}

// printResult honours the pretty flag, otherwise emits compact JSON.
func printResult(cmd *cobra.Command, res any) error {
	if cmd.Flag("pretty").Value.String() == "true" {
		return prettyPrint(res)
	}
	resJSON, err := json.Marshal(res)
	if err != nil {
		return err
	}
	fmt.Println(string(resJSON))
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
