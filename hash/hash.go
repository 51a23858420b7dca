package hash

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"

	"github.com/btcsuite/btcutil/base58"

	"github.com/spikeekips/nearanywhere/encode"
)

const CryptoHashLength = sha256.Size

// CryptoHash is the sha256 hash used for block, transaction and receipt
// ids.
type CryptoHash [CryptoHashLength]byte

var EmptyCryptoHash CryptoHash

func NewCryptoHash(b []byte) CryptoHash {
	return CryptoHash(sha256.Sum256(b))
}

func CryptoHashFromBytes(b []byte) (CryptoHash, error) {
	var h CryptoHash
	if len(b) != len(h) {
		return h, InvalidHashInputError.Newf("wrong length; expected=%d received=%d", len(h), len(b))
	}

	copy(h[:], b)

	return h, nil
}

func ParseCryptoHash(s string) (CryptoHash, error) {
	b := base58.Decode(s)
	if len(b) < 1 && len(s) > 0 {
		return CryptoHash{}, InvalidHashInputError.Newf("invalid base58 string; %q", s)
	}

	return CryptoHashFromBytes(b)
}

func (h CryptoHash) Bytes() []byte {
	return h[:]
}

func (h CryptoHash) IsEmpty() bool {
	return h == EmptyCryptoHash
}

func (h CryptoHash) Equal(b CryptoHash) bool {
	return h == b
}

func (h CryptoHash) Compare(b CryptoHash) int {
	return bytes.Compare(h[:], b[:])
}

func (h CryptoHash) String() string {
	return base58.Encode(h[:])
}

func (h CryptoHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *CryptoHash) UnmarshalText(b []byte) error {
	n, err := ParseCryptoHash(string(b))
	if err != nil {
		return err
	}

	*h = n

	return nil
}

func (h CryptoHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *CryptoHash) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return h.UnmarshalText([]byte(s))
}

func (h CryptoHash) MarshalBorsh(w *encode.Writer) error {
	w.WriteFixed(h[:])

	return nil
}

func (h *CryptoHash) UnmarshalBorsh(r *encode.Reader) error {
	b, err := r.ReadFixed(CryptoHashLength)
	if err != nil {
		return err
	}

	copy(h[:], b)

	return nil
}
