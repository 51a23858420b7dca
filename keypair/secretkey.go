package keypair

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/xerrors"
)

// SecretKey is either an ED25519 or a SECP256K1 secret key. It has only the
// string form; no binary form is provided.
type SecretKey struct {
	keyType   KeyType
	ed25519   ED25519SecretKey
	secp256k1 secp256k1SecretKey
}

// NewSecretKey generates a random secret key from crypto/rand.
func NewSecretKey(kt KeyType) (SecretKey, error) {
	return NewSecretKeyFromReader(kt, rand.Reader)
}

func NewSecretKeyFromReader(kt KeyType, r io.Reader) (SecretKey, error) {
	switch kt {
	case ED25519:
		_, priv, err := ed25519.GenerateKey(r)
		if err != nil {
			return SecretKey{}, xerrors.Errorf("failed to generate ed25519 key: %w", err)
		}

		k, err := ED25519SecretKeyFromBytes(priv)
		if err != nil {
			return SecretKey{}, err
		}

		return SecretKey{keyType: ED25519, ed25519: k}, nil
	case SECP256K1:
		k, err := generateSecp256k1SecretKey(r)
		if err != nil {
			return SecretKey{}, xerrors.Errorf("failed to generate secp256k1 key: %w", err)
		}

		return SecretKey{keyType: SECP256K1, secp256k1: k}, nil
	default:
		return SecretKey{}, kt.IsValid()
	}
}

// NewED25519SecretKeyFromSeed derives the secret key from 32 bytes seed.
func NewED25519SecretKeyFromSeed(seed []byte) (SecretKey, error) {
	if len(seed) != ed25519.SeedSize {
		return SecretKey{}, InvalidLength{KeyType: ED25519, Expected: ed25519.SeedSize, Received: len(seed)}
	}

	k, err := ED25519SecretKeyFromBytes(ed25519.NewKeyFromSeed(seed))
	if err != nil {
		return SecretKey{}, err
	}

	return SecretKey{keyType: ED25519, ed25519: k}, nil
}

func secretKeyLength(kt KeyType) int {
	if kt == SECP256K1 {
		return Secp256K1SecretKeyLength
	}

	return ED25519SecretKeyLength
}

// SecretKeyFromBytes builds a secret key from the 64 bytes ed25519 keypair
// encoding or the 32 bytes secp256k1 scalar.
func SecretKeyFromBytes(kt KeyType, b []byte) (SecretKey, error) {
	switch kt {
	case ED25519:
		k, err := ED25519SecretKeyFromBytes(b)
		if err != nil {
			return SecretKey{}, err
		}

		return SecretKey{keyType: ED25519, ed25519: k}, nil
	case SECP256K1:
		k, err := newSecp256k1SecretKey(b)
		if err != nil {
			return SecretKey{}, err
		}

		return SecretKey{keyType: SECP256K1, secp256k1: k}, nil
	default:
		return SecretKey{}, kt.IsValid()
	}
}

func (k SecretKey) KeyType() KeyType {
	return k.keyType
}

func (k SecretKey) PublicKey() PublicKey {
	switch k.keyType {
	case SECP256K1:
		return NewSecp256K1PublicKey(k.secp256k1.publicKey())
	default:
		return NewED25519PublicKey(k.ed25519.PublicKey())
	}
}

// Sign signs message. ED25519 signs the raw message. SECP256K1 signs a
// digest: message must be exactly 32 bytes, so callers hash variable length
// messages first.
func (k SecretKey) Sign(message []byte) (Signature, error) {
	switch k.keyType {
	case ED25519:
		return Signature{keyType: ED25519, ed25519: k.ed25519.sign(message)}, nil
	case SECP256K1:
		s, err := k.secp256k1.sign(message)
		if err != nil {
			return Signature{}, err
		}

		return Signature{keyType: SECP256K1, secp256k1: s}, nil
	default:
		return Signature{}, k.keyType.IsValid()
	}
}

// Equal compares only the seed for ED25519.
func (k SecretKey) Equal(b SecretKey) bool {
	if k.keyType != b.keyType {
		return false
	}

	switch k.keyType {
	case SECP256K1:
		return k.secp256k1 == b.secp256k1
	default:
		return k.ed25519.Equal(b.ed25519)
	}
}

func (k SecretKey) UnwrapED25519() ED25519SecretKey {
	if k.keyType != ED25519 {
		panic(fmt.Sprintf("not ed25519 secret key; key_type=%s", k.keyType))
	}

	return k.ed25519
}

// String returns "<curve>:<base58>" of the full 64 bytes ed25519 keypair or
// the 32 bytes secp256k1 scalar.
func (k SecretKey) String() string {
	switch k.keyType {
	case SECP256K1:
		return k.keyType.String() + ":" + encodeBase58(k.secp256k1[:])
	default:
		return k.keyType.String() + ":" + encodeBase58(k.ed25519[:])
	}
}

// GoString prints only the curve and the public key.
func (k SecretKey) GoString() string {
	return fmt.Sprintf("SecretKey(%s)", k.PublicKey().String())
}

func ParseSecretKey(s string) (SecretKey, error) {
	kt, payload, err := SplitPrefixed(s)
	if err != nil {
		return SecretKey{}, err
	}

	b, err := decodeBase58(kt, payload, secretKeyLength(kt))
	if err != nil {
		return SecretKey{}, err
	}

	return SecretKeyFromBytes(kt, b)
}

func (k SecretKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SecretKey) UnmarshalText(b []byte) error {
	n, err := ParseSecretKey(string(b))
	if err != nil {
		return err
	}

	*k = n

	return nil
}

func (k SecretKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *SecretKey) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return k.UnmarshalText([]byte(s))
}
