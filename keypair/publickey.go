package keypair

import (
	"encoding/json"
	"fmt"

	"github.com/spikeekips/nearanywhere/encode"
)

// PublicKey is either an ED25519 or a SECP256K1 public key. The payload of
// the inactive curve is always zero, so PublicKey can be compared with ==
// and used as a map key.
type PublicKey struct {
	keyType   KeyType
	ed25519   ED25519PublicKey
	secp256k1 Secp256K1PublicKey
}

func NewED25519PublicKey(k ED25519PublicKey) PublicKey {
	return PublicKey{keyType: ED25519, ed25519: k}
}

func NewSecp256K1PublicKey(k Secp256K1PublicKey) PublicKey {
	return PublicKey{keyType: SECP256K1, secp256k1: k}
}

// EmptyPublicKey returns the all-zero public key of the curve. It panics on
// an unknown KeyType.
func EmptyPublicKey(kt KeyType) PublicKey {
	if err := kt.IsValid(); err != nil {
		panic(err.Error())
	}

	return PublicKey{keyType: kt}
}

// PublicKeyFromBytes builds a public key from the raw payload of the curve.
func PublicKeyFromBytes(kt KeyType, b []byte) (PublicKey, error) {
	switch kt {
	case ED25519:
		k, err := ED25519PublicKeyFromBytes(b)
		if err != nil {
			return PublicKey{}, err
		}

		return NewED25519PublicKey(k), nil
	case SECP256K1:
		k, err := Secp256K1PublicKeyFromBytes(b)
		if err != nil {
			return PublicKey{}, err
		}

		return NewSecp256K1PublicKey(k), nil
	default:
		return PublicKey{}, kt.IsValid()
	}
}

func publicKeyLength(kt KeyType) int {
	if kt == SECP256K1 {
		return Secp256K1PublicKeyLength
	}

	return ED25519PublicKeyLength
}

func (k PublicKey) KeyType() KeyType {
	return k.keyType
}

// Len is the length of the binary form, tag byte included.
func (k PublicKey) Len() int {
	return 1 + publicKeyLength(k.keyType)
}

// Bytes returns the payload without the tag byte.
func (k PublicKey) Bytes() []byte {
	switch k.keyType {
	case SECP256K1:
		b := k.secp256k1
		return b[:]
	default:
		b := k.ed25519
		return b[:]
	}
}

func (k PublicKey) Equal(b PublicKey) bool {
	return k == b
}

// Compare orders by curve first, ED25519 before SECP256K1, then by payload.
func (k PublicKey) Compare(b PublicKey) int {
	switch {
	case k.keyType < b.keyType:
		return -1
	case k.keyType > b.keyType:
		return 1
	case k.keyType == SECP256K1:
		return k.secp256k1.Compare(b.secp256k1)
	default:
		return k.ed25519.Compare(b.ed25519)
	}
}

func (k PublicKey) UnwrapED25519() ED25519PublicKey {
	if k.keyType != ED25519 {
		panic(fmt.Sprintf("not ed25519 public key; key_type=%s", k.keyType))
	}

	return k.ed25519
}

func (k PublicKey) UnwrapSecp256K1() Secp256K1PublicKey {
	if k.keyType != SECP256K1 {
		panic(fmt.Sprintf("not secp256k1 public key; key_type=%s", k.keyType))
	}

	return k.secp256k1
}

func (k PublicKey) String() string {
	return k.keyType.String() + ":" + encodeBase58(k.Bytes())
}

func (k PublicKey) GoString() string {
	return fmt.Sprintf("PublicKey(%s)", k.String())
}

func ParsePublicKey(s string) (PublicKey, error) {
	kt, payload, err := SplitPrefixed(s)
	if err != nil {
		return PublicKey{}, err
	}

	b, err := decodeBase58(kt, payload, publicKeyLength(kt))
	if err != nil {
		return PublicKey{}, err
	}

	return PublicKeyFromBytes(kt, b)
}

func (k PublicKey) MarshalBorsh(w *encode.Writer) error {
	if err := k.keyType.IsValid(); err != nil {
		return err
	}

	w.WriteU8(uint8(k.keyType))
	w.WriteFixed(k.Bytes())

	return nil
}

func (k *PublicKey) UnmarshalBorsh(r *encode.Reader) error {
	t, err := r.ReadU8()
	if err != nil {
		return err
	}

	kt, err := KeyTypeFromByte(t)
	if err != nil {
		return encode.DecodeFailedError.New(err)
	}

	b, err := r.ReadFixed(publicKeyLength(kt))
	if err != nil {
		return err
	}

	n, err := PublicKeyFromBytes(kt, b)
	if err != nil {
		return err
	}

	*k = n

	return nil
}

// MarshalBinary returns the tag byte followed by the payload.
func (k PublicKey) MarshalBinary() ([]byte, error) {
	return encode.Marshal(k)
}

// UnmarshalBinary accepts exactly the tag byte and the payload of the curve.
func (k *PublicKey) UnmarshalBinary(b []byte) error {
	if len(b) < 1 {
		return InvalidLength{Expected: 1 + ED25519PublicKeyLength, Received: 0}
	}

	kt, err := KeyTypeFromByte(b[0])
	if err != nil {
		return err
	}

	if expected := 1 + publicKeyLength(kt); len(b) != expected {
		return InvalidLength{KeyType: kt, Expected: expected, Received: len(b)}
	}

	n, err := PublicKeyFromBytes(kt, b[1:])
	if err != nil {
		return err
	}

	*k = n

	return nil
}

func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PublicKey) UnmarshalText(b []byte) error {
	n, err := ParsePublicKey(string(b))
	if err != nil {
		return err
	}

	*k = n

	return nil
}

func (k PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *PublicKey) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return k.UnmarshalText([]byte(s))
}
