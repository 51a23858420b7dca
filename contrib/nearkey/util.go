package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func printFlags(cmd *cobra.Command, format string) interface{} {
	switch format {
	case "json":
		return printFlagsJSON(cmd)
	default:
		return printFlagsTerminal(cmd)
	}
}

func printFlagsJSON(cmd *cobra.Command) json.RawMessage {
	out := map[string]interface{}{}

	cmd.Flags().VisitAll(func(pf *pflag.Flag) {
		if pf.Name == "help" {
			return
		}

		out[fmt.Sprintf("--%s", pf.Name)] = map[string]interface{}{
			"default": pf.DefValue,
			"value":   pf.Value.String(),
		}
	})

	b, _ := json.Marshal(out)

	return b
}

func printFlagsTerminal(cmd *cobra.Command) string {
	var flags []string
	cmd.Flags().VisitAll(func(pf *pflag.Flag) {
		if pf.Name == "help" {
			return
		}

		flags = append(flags, fmt.Sprintf("--%s=%v (default: %v)", pf.Name, pf.Value, pf.DefValue))
	})

	return strings.Join(flags, ", ")
}
