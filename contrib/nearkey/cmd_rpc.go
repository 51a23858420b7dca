package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

var rpcCmd = &cobra.Command{
	Use:   "rpc <method> [params]",
	Short: "send JSON-RPC request to the node; params is JSON",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var params interface{}
		if len(args) > 1 {
			var raw json.RawMessage
			if err := json.Unmarshal([]byte(args[1]), &raw); err != nil {
				return xerrors.Errorf("invalid params: %w", err)
			}
			params = raw
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var result json.RawMessage
		if err := config.newClient().Call(ctx, args[0], params, &result); err != nil {
			return err
		}

		return printJSON(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(rpcCmd)
}
