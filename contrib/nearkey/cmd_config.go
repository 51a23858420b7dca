package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/spikeekips/nearanywhere/common"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "print config in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := yaml.Marshal(config)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bytes.TrimSpace(b)))

		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), common.Current.String())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
