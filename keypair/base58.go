package keypair

import (
	"github.com/btcsuite/btcutil/base58"
)

// decodeBase58 decodes s and checks the decoded length. base58.Decode reports
// a bad alphabet by returning nothing for a non-empty input.
func decodeBase58(kt KeyType, s string, expected int) ([]byte, error) {
	b := base58.Decode(s)
	if len(b) < 1 && len(s) > 0 {
		return nil, InvalidData{KeyType: kt, Message: "invalid base58 string"}
	}

	if len(b) != expected {
		return nil, InvalidLength{KeyType: kt, Expected: expected, Received: len(b)}
	}

	return b, nil
}

func encodeBase58(b []byte) string {
	return base58.Encode(b)
}
