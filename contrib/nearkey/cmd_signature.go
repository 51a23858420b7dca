package main

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/spikeekips/nearanywhere/keypair"
)

var (
	flagMessageHex    bool
	flagMessageSHA256 bool
	flagRejectUpperS  bool
	flagRecoveryID    int = -1
)

// parseMessage decodes the message argument by the --hex flag and hashes it
// by the --sha256 flag.
func parseMessage(s string) ([]byte, error) {
	m := []byte(s)
	if flagMessageHex {
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return nil, xerrors.Errorf("invalid hex message: %w", err)
		}
		m = b
	}

	if flagMessageSHA256 {
		h := sha256.Sum256(m)
		m = h[:]
	}

	return m, nil
}

var signCmd = &cobra.Command{
	Use:   "sign <secret key> <message>",
	Short: "sign message; secp256k1 signs 32 bytes digest only, use --sha256 for other messages",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := keypair.ParseKeyPair(args[0])
		if err != nil {
			return err
		}

		m, err := parseMessage(args[1])
		if err != nil {
			return err
		}

		sig, err := kp.Sign(m)
		if err != nil {
			return err
		}

		return printJSON(cmd, map[string]interface{}{
			"public_key": kp.PublicKey(),
			"signature":  sig,
		})
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <public key> <signature> <message>",
	Short: "verify signature",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := keypair.ParsePublicKey(args[0])
		if err != nil {
			return err
		}

		sig, err := keypair.ParseSignature(args[1])
		if err != nil {
			return err
		}

		m, err := parseMessage(args[2])
		if err != nil {
			return err
		}

		if !sig.Verify(m, pk) {
			return keypair.SignatureVerificationFailedError.Newf("public_key=%s", pk)
		}

		return printJSON(cmd, map[string]interface{}{"verified": true})
	},
}

var recoverCmd = &cobra.Command{
	Use:   "recover <secp256k1 signature> <digest>",
	Short: "recover secp256k1 public key from signature and hex digest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig, err := keypair.ParseSignature(args[0])
		if err != nil {
			return err
		} else if sig.KeyType() != keypair.SECP256K1 {
			return xerrors.Errorf("not secp256k1 signature; key_type=%s", sig.KeyType())
		}

		digest, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
		if err != nil {
			return xerrors.Errorf("invalid hex digest: %w", err)
		}

		s := sig.UnwrapSecp256K1()

		id := s.V()
		if flagRecoveryID >= 0 {
			id = uint8(flagRecoveryID)
		}

		pub, err := s.Recover(digest, id)
		if err != nil {
			return err
		}

		return printJSON(cmd, keyOutput{KeyType: keypair.SECP256K1, PublicKey: keypair.NewSecp256K1PublicKey(pub)})
	},
}

var checkSignatureCmd = &cobra.Command{
	Use:   "check-signature <secp256k1 signature>",
	Short: "check r and s values of secp256k1 signature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig, err := keypair.ParseSignature(args[0])
		if err != nil {
			return err
		} else if sig.KeyType() != keypair.SECP256K1 {
			return xerrors.Errorf("not secp256k1 signature; key_type=%s", sig.KeyType())
		}

		return printJSON(cmd, map[string]interface{}{
			"valid":          sig.UnwrapSecp256K1().CheckSignatureValues(flagRejectUpperS),
			"reject_upper_s": flagRejectUpperS,
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{signCmd, verifyCmd} {
		c.Flags().BoolVar(&flagMessageHex, "hex", flagMessageHex, "message is hex encoded")
		c.Flags().BoolVar(&flagMessageSHA256, "sha256", flagMessageSHA256, "sign or verify sha256 digest of message")
	}

	recoverCmd.Flags().IntVar(&flagRecoveryID, "recovery-id", flagRecoveryID, "recovery id; default is the v of signature")
	checkSignatureCmd.Flags().BoolVar(&flagRejectUpperS, "reject-upper-s", flagRejectUpperS, "reject s in upper half of curve order")

	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(checkSignatureCmd)
}
