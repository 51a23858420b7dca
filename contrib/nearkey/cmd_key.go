package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spikeekips/nearanywhere/keypair"
)

var flagKeygenKeyType FlagKeyType

type keyOutput struct {
	KeyType   keypair.KeyType    `json:"key_type"`
	PublicKey keypair.PublicKey  `json:"public_key"`
	SecretKey *keypair.SecretKey `json:"secret_key,omitempty"`
}

func printJSON(cmd *cobra.Command, i interface{}) error {
	b, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))

	return err
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "generate new keypair",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kt := config.KeyType
		if flagKeygenKeyType.set {
			kt = flagKeygenKeyType.kt
		}

		kp, err := keypair.NewKeyPair(kt)
		if err != nil {
			return err
		}

		log.Debug("keypair generated", "key_type", kt, "public_key", kp.PublicKey())

		sk := kp.SecretKey()

		return printJSON(cmd, keyOutput{KeyType: kt, PublicKey: kp.PublicKey(), SecretKey: &sk})
	},
}

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey <secret key>",
	Short: "print public key of secret key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := keypair.ParseKeyPair(args[0])
		if err != nil {
			return err
		}

		return printJSON(cmd, keyOutput{KeyType: kp.KeyType(), PublicKey: kp.PublicKey()})
	},
}

func init() {
	keygenCmd.Flags().Var(&flagKeygenKeyType, "key-type", "key type: {ed25519 secp256k1}")

	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(pubkeyCmd)
}
