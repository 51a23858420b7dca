package main

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/spikeekips/nearanywhere/common"
	"github.com/spikeekips/nearanywhere/element"
	"github.com/spikeekips/nearanywhere/jsonrpc"
	"github.com/spikeekips/nearanywhere/keypair"
)

var config Config

var rootCmd = &cobra.Command{
	Use:           "nearkey",
	Short:         "nearkey handles the keys and signatures of NEAR accounts",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}

		// flags take precedence over the config file
		if cmd.Flags().Changed("log-level") {
			c.Log.Level = flagLogLevel.String()
		}
		if cmd.Flags().Changed("log-format") {
			c.Log.Format = flagLogFormat.String()
		}
		if cmd.Flags().Changed("log-out") {
			c.Log.Out = flagLogOut
		}

		if err := c.Log.IsValid(); err != nil {
			return err
		}

		lvl, _ := log15.LvlFromString(c.Log.Level)
		if err := setupLogging(lvl, c.Log.Format, c.Log.Out); err != nil {
			return err
		}

		config = c

		log.Debug("parsed flags", "flags", printFlags(cmd, c.Log.Format))
		log.Debug("config loaded", "config", config)

		return nil
	},
}

func loggers() []log15.Logger {
	return []log15.Logger{
		log,
		common.Log(),
		element.Log(),
		jsonrpc.Log(),
		keypair.Log(),
	}
}

func init() {
	rootCmd.PersistentFlags().Var(&flagLogLevel, "log-level", "log level: {debug error warn info crit}")
	rootCmd.PersistentFlags().Var(&flagLogFormat, "log-format", "log format: {json terminal}")
	rootCmd.PersistentFlags().StringVar(&flagLogOut, "log-out", flagLogOut, "log output file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", flagConfig, "config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}

	os.Exit(0)
}
